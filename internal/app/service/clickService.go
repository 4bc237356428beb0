package service

import (
	"context"

	"github.com/mssola/useragent"
	"go.uber.org/zap"

	"github.com/shortlink-app/shortlink/internal/models"
	"github.com/shortlink-app/shortlink/internal/storage"
	"github.com/shortlink-app/shortlink/internal/worker"
)

// ClickService records click events and computes per-mapping summaries.
type ClickService struct {
	repository Storage
	logger     *zap.Logger
	ch         chan<- storage.ClickRecord
}

// NewClick builds the service and starts the background worker that flushes
// captured clicks to the store in batches.
func NewClick(repo Storage, logger *zap.Logger) *ClickService {
	w := worker.NewClickWorker(logger, repo)
	in := w.GetInChannel()

	service := ClickService{
		repository: repo,
		logger:     logger,
		ch:         in,
	}

	go w.FlushClicks()

	return &service
}

// Record stores a click event submitted through the analytics endpoint.
// The mapping must exist and be active. When the payload carries no device
// information, it is derived from the User-Agent header.
func (s *ClickService) Record(ctx context.Context, short string, req models.CreateClickRequest, userAgent string) (*storage.ClickRecord, error) {
	mapping, err := s.repository.FindMappingByShort(ctx, short)
	if err != nil {
		return nil, err
	}

	record := storage.ClickRecord{
		MappingID:      mapping.ID,
		ReferrerSource: req.ReferrerSource,
	}

	if req.Geography != nil {
		record.Geography = &storage.Geography{
			Country:   req.Geography.Country,
			City:      req.Geography.City,
			Latitude:  req.Geography.Latitude,
			Longitude: req.Geography.Longitude,
		}
	}

	if req.DeviceType != nil {
		record.Device = &storage.DeviceInfo{
			Type:    req.DeviceType.Type,
			Name:    req.DeviceType.Name,
			Version: req.DeviceType.Version,
		}
	} else {
		record.Device = deviceFromUserAgent(userAgent)
	}

	return s.repository.CreateClick(ctx, record)
}

// Capture enqueues a click observed on the redirect path. Delivery is
// best-effort through the batch worker.
func (s *ClickService) Capture(_ context.Context, mappingID, referrer, userAgent string) {
	s.ch <- storage.ClickRecord{
		MappingID:      mappingID,
		ReferrerSource: referrer,
		Device:         deviceFromUserAgent(userAgent),
	}
}

// ListByShort returns the raw click events of an active mapping.
func (s *ClickService) ListByShort(ctx context.Context, short string) ([]storage.ClickRecord, error) {
	mapping, err := s.repository.FindMappingByShort(ctx, short)
	if err != nil {
		return nil, err
	}

	return s.repository.FindClicksByMapping(ctx, mapping.ID)
}

// Summarize tallies the mapping's click events into three frequency tables.
// Events missing a value for a dimension are skipped for that dimension, not
// counted under an "unknown" bucket.
func (s *ClickService) Summarize(ctx context.Context, short string) (*models.ClickSummary, error) {
	clicks, err := s.ListByShort(ctx, short)
	if err != nil {
		return nil, err
	}

	return &models.ClickSummary{
		TotalClicks: len(clicks),
		GeographicDistribution: countBy(clicks, func(c *storage.ClickRecord) string {
			if c.Geography == nil {
				return ""
			}
			return c.Geography.Country
		}),
		ReferrerSources: countBy(clicks, func(c *storage.ClickRecord) string {
			return c.ReferrerSource
		}),
		DeviceTypes: countBy(clicks, func(c *storage.ClickRecord) string {
			if c.Device == nil {
				return ""
			}
			return c.Device.Type
		}),
	}, nil
}

// countBy tallies occurrences of the extracted value, skipping empty ones.
func countBy(clicks []storage.ClickRecord, extract func(*storage.ClickRecord) string) map[string]int {
	counts := make(map[string]int)
	for i := range clicks {
		if v := extract(&clicks[i]); v != "" {
			counts[v]++
		}
	}
	return counts
}

// deviceFromUserAgent derives device metadata from a raw User-Agent header.
func deviceFromUserAgent(raw string) *storage.DeviceInfo {
	if raw == "" {
		return nil
	}

	ua := useragent.New(raw)
	name, version := ua.Browser()

	deviceType := "desktop"
	if ua.Mobile() {
		deviceType = "mobile"
	} else if ua.Bot() {
		deviceType = "bot"
	}

	return &storage.DeviceInfo{
		Type:    deviceType,
		Name:    name,
		Version: version,
	}
}
