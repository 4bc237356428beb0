package service

import (
	"context"
	"errors"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/shortlink-app/shortlink/internal/storage"
)

// maxCodeAttempts bounds the regenerate-on-collision loop. With a 6-character
// alphanumeric space, hitting the ceiling means something is badly wrong.
const maxCodeAttempts = 10

var (
	// ErrInvalidInput is returned for a malformed long URL or missing field.
	ErrInvalidInput = errors.New("invalid input")

	// ErrAllocationExhausted is returned when no unique short code was found
	// within maxCodeAttempts.
	ErrAllocationExhausted = errors.New("short code allocation exhausted")
)

// MappingService allocates short codes and manages the mapping lifecycle.
type MappingService struct {
	repository Storage
	codes      *CodeGenerator
	logger     *zap.Logger
	baseURL    string
}

func NewMapping(repo Storage, codes *CodeGenerator, logger *zap.Logger, baseURL string) *MappingService {
	return &MappingService{
		repository: repo,
		codes:      codes,
		logger:     logger,
		baseURL:    baseURL,
	}
}

func (s *MappingService) PingContext(ctx context.Context) error {
	return s.repository.PingContext(ctx)
}

// Create allocates a mapping for (longURL, ownerID). The call is idempotent:
// an existing active mapping for the same pair is returned unchanged. A fresh
// mapping gets a generated code; the store's uniqueness constraint is the
// collision arbiter and a constraint violation triggers regeneration.
func (s *MappingService) Create(ctx context.Context, longURL, ownerID string, expiresAt *time.Time) (*storage.MappingRecord, error) {
	if !isValidURL(longURL) || ownerID == "" {
		return nil, ErrInvalidInput
	}

	owner, err := s.repository.FindUserByID(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	existing, err := s.repository.FindMappingByOwnerAndLong(ctx, ownerID, longURL)
	if err == nil {
		existing.Owner = owner
		return existing, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}

	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code, err := s.codes.NewCode()
		if err != nil {
			return nil, err
		}

		record, err := s.repository.CreateMapping(ctx, storage.MappingRecord{
			LongURL:   longURL,
			ShortCode: code,
			OwnerID:   ownerID,
			ExpiresAt: expiresAt,
		})
		if errors.Is(err, storage.ErrCodeTaken) {
			s.logger.Info("short code collision, regenerating", zap.String("code", code))
			continue
		}
		if err != nil {
			return nil, err
		}

		record.Owner = owner
		return record, nil
	}

	return nil, ErrAllocationExhausted
}

// GetByShort returns the active mapping for a short code with its owner resolved.
func (s *MappingService) GetByShort(ctx context.Context, short string) (*storage.MappingRecord, error) {
	record, err := s.repository.FindMappingByShort(ctx, short)
	if err != nil {
		return nil, err
	}

	if owner, oErr := s.repository.FindUserByID(ctx, record.OwnerID); oErr == nil {
		record.Owner = owner
	}

	return record, nil
}

// GetByOwner lists the owner's active mappings. The owner must exist.
func (s *MappingService) GetByOwner(ctx context.Context, ownerID string) ([]storage.MappingRecord, error) {
	if _, err := s.repository.FindUserByID(ctx, ownerID); err != nil {
		return nil, err
	}

	return s.repository.FindMappingsByOwner(ctx, ownerID)
}

// RecordClick bumps the click counter of an active mapping. The increment is
// performed by the store in one statement, so concurrent clicks do not lose
// updates.
func (s *MappingService) RecordClick(ctx context.Context, short string) (*storage.MappingRecord, error) {
	return s.repository.IncrementClickCount(ctx, short)
}

// Delete soft-deletes the mapping identified by id when it belongs to
// ownerID. A missing id and a foreign owner both surface as
// storage.ErrNotFound, hiding existence from non-owners.
func (s *MappingService) Delete(ctx context.Context, id, ownerID string) (*storage.MappingRecord, error) {
	return s.repository.SoftDeleteMapping(ctx, id, ownerID)
}

func (s *MappingService) Stats(ctx context.Context) (*storage.Stats, error) {
	return s.repository.CountStats(ctx)
}

// isValidURL accepts absolute http(s) URLs only.
func isValidURL(raw string) bool {
	if raw == "" {
		return false
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}

	return (parsed.Scheme == "http" || parsed.Scheme == "https") && parsed.Host != ""
}
