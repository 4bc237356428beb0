package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/shortlink-app/shortlink/internal/mocks"
	"github.com/shortlink-app/shortlink/internal/models"
	"github.com/shortlink-app/shortlink/internal/storage"
)

func newClickMocks(t *testing.T) (*ClickHandler, *mocks.MockClickServiceIface) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockService := mocks.NewMockClickServiceIface(ctrl)
	return NewClick(mockService, zap.NewNop()), mockService
}

func TestClickHandler_Create(t *testing.T) {
	h, mockService := newClickMocks(t)

	t.Run("created", func(t *testing.T) {
		mockService.EXPECT().
			Record(gomock.Any(), "abc123", gomock.Any(), gomock.Any()).
			Return(&storage.ClickRecord{
				ID:             "click-1",
				MappingID:      "mapping-1",
				ReferrerSource: "twitter",
				Geography:      &storage.Geography{Country: "US"},
			}, nil)

		body := `{"shortCode":"abc123","referrerSource":"twitter","geography":{"country":"US"}}`
		req := httptest.NewRequest(http.MethodPost, "/api/analytics", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")

		rr := httptest.NewRecorder()
		h.Create(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)

		var response models.ClickResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
		assert.Equal(t, "mapping-1", response.MappingID)
		require.NotNil(t, response.Geography)
		assert.Equal(t, "US", response.Geography.Country)
	})

	t.Run("missing short code", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/analytics", bytes.NewBufferString(`{"referrerSource":"twitter"}`))
		req.Header.Set("Content-Type", "application/json")

		rr := httptest.NewRecorder()
		h.Create(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("unknown mapping", func(t *testing.T) {
		mockService.EXPECT().
			Record(gomock.Any(), "missing", gomock.Any(), gomock.Any()).
			Return(nil, storage.ErrNotFound)

		req := httptest.NewRequest(http.MethodPost, "/api/analytics", bytes.NewBufferString(`{"shortCode":"missing"}`))
		req.Header.Set("Content-Type", "application/json")

		rr := httptest.NewRecorder()
		h.Create(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestClickHandler_ByShortCode(t *testing.T) {
	h, mockService := newClickMocks(t)

	r := chi.NewRouter()
	r.Get("/api/analytics/{shortCode}", h.ByShortCode)

	mockService.EXPECT().
		ListByShort(gomock.Any(), "abc123").
		Return([]storage.ClickRecord{
			{ID: "c1", MappingID: "m1", ReferrerSource: "google"},
			{ID: "c2", MappingID: "m1", Device: &storage.DeviceInfo{Type: "mobile"}},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/analytics/abc123", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var response []models.ClickResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	require.Len(t, response, 2)
	assert.Equal(t, "google", response[0].ReferrerSource)
	require.NotNil(t, response[1].DeviceType)
	assert.Equal(t, "mobile", response[1].DeviceType.Type)
}

func TestClickHandler_Summary(t *testing.T) {
	h, mockService := newClickMocks(t)

	r := chi.NewRouter()
	r.Get("/api/analytics/summary/{shortCode}", h.Summary)

	t.Run("aggregated", func(t *testing.T) {
		mockService.EXPECT().
			Summarize(gomock.Any(), "abc123").
			Return(&models.ClickSummary{
				TotalClicks:            3,
				GeographicDistribution: map[string]int{"US": 2, "DE": 1},
				ReferrerSources:        map[string]int{"twitter": 2},
				DeviceTypes:            map[string]int{"mobile": 1},
			}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/analytics/summary/abc123", nil)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var response models.ClickSummary
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
		assert.Equal(t, 3, response.TotalClicks)
		assert.Equal(t, map[string]int{"US": 2, "DE": 1}, response.GeographicDistribution)
	})

	t.Run("empty summary marshals as objects", func(t *testing.T) {
		mockService.EXPECT().
			Summarize(gomock.Any(), "empty1").
			Return(&models.ClickSummary{
				GeographicDistribution: map[string]int{},
				ReferrerSources:        map[string]int{},
				DeviceTypes:            map[string]int{},
			}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/analytics/summary/empty1", nil)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"totalClicks":0,"geographicDistribution":{},"referrerSources":{},"deviceTypes":{}}`, rr.Body.String())
	})

	t.Run("unknown mapping", func(t *testing.T) {
		mockService.EXPECT().
			Summarize(gomock.Any(), "missing").
			Return(nil, storage.ErrNotFound)

		req := httptest.NewRequest(http.MethodGet, "/api/analytics/summary/missing", nil)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
