package handler

import (
	"errors"
	"net/http"

	"github.com/shortlink-app/shortlink/internal/app/service"
	"github.com/shortlink-app/shortlink/internal/models"
	"github.com/shortlink-app/shortlink/internal/storage"
)

// writeServiceError maps service and storage errors onto HTTP status codes.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		http.Error(w, "not found", http.StatusNotFound)
	case errors.Is(err, service.ErrInvalidInput):
		http.Error(w, "invalid input", http.StatusBadRequest)
	case errors.Is(err, storage.ErrConflict):
		http.Error(w, "already exists", http.StatusConflict)
	default:
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

func toUserResponse(u *storage.UserRecord) *models.UserResponse {
	if u == nil {
		return nil
	}
	return &models.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

func toMappingResponse(baseURL string, m *storage.MappingRecord) models.MappingResponse {
	return models.MappingResponse{
		ID:         m.ID,
		LongURL:    m.LongURL,
		ShortCode:  m.ShortCode,
		ShortURL:   baseURL + "/" + m.ShortCode,
		ClickCount: m.ClickCount,
		ExpiresAt:  m.ExpiresAt,
		CreatedAt:  m.CreatedAt,
		Owner:      toUserResponse(m.Owner),
	}
}

func toClickResponse(c *storage.ClickRecord) models.ClickResponse {
	response := models.ClickResponse{
		ID:             c.ID,
		MappingID:      c.MappingID,
		ReferrerSource: c.ReferrerSource,
		CreatedAt:      c.CreatedAt,
	}

	if c.Geography != nil {
		response.Geography = &models.GeographyPayload{
			Country:   c.Geography.Country,
			City:      c.Geography.City,
			Latitude:  c.Geography.Latitude,
			Longitude: c.Geography.Longitude,
		}
	}
	if c.Device != nil {
		response.DeviceType = &models.DevicePayload{
			Type:    c.Device.Type,
			Name:    c.Device.Name,
			Version: c.Device.Version,
		}
	}

	return response
}
