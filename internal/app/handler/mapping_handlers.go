package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/shortlink-app/shortlink/internal/app/service"
	"github.com/shortlink-app/shortlink/internal/middleware"
	"github.com/shortlink-app/shortlink/internal/models"
)

type MappingHandler struct {
	baseURL  string
	mappings service.MappingServiceIface
	clicks   service.ClickServiceIface
	logger   *zap.Logger
}

func NewMapping(baseURL string, mappings service.MappingServiceIface, clicks service.ClickServiceIface, l *zap.Logger) *MappingHandler {
	return &MappingHandler{
		baseURL:  baseURL,
		mappings: mappings,
		clicks:   clicks,
		logger:   l,
	}
}

// Create handles POST requests for URL shortening. The call is idempotent:
// repeating it for the same (longUrl, userId) pair returns the mapping that
// already exists.
func (h *MappingHandler) Create(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), 3*time.Second)
	defer cancel()

	var request models.CreateMappingRequest

	err := decodeJSONBody(res, req, &request)
	if err != nil {
		var mr *malformedRequest
		if errors.As(err, &mr) {
			http.Error(res, mr.msg, mr.status)
			return
		}
		h.logger.Error(err.Error())
		http.Error(res, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	record, err := h.mappings.Create(ctx, request.LongURL, request.UserID, request.ExpiresAt)
	if err != nil {
		if errors.Is(err, service.ErrAllocationExhausted) {
			h.logger.Error("short code space exhausted", zap.String("longUrl", request.LongURL))
		}
		writeServiceError(res, err)
		return
	}

	writeJSON(res, http.StatusCreated, toMappingResponse(h.baseURL, record))
}

// ByOwner handles GET requests listing a user's active mappings.
func (h *MappingHandler) ByOwner(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), 3*time.Second)
	defer cancel()

	userID := chi.URLParam(req, "userID")

	records, err := h.mappings.GetByOwner(ctx, userID)
	if err != nil {
		writeServiceError(res, err)
		return
	}

	response := make([]models.MappingResponse, 0, len(records))
	for i := range records {
		response = append(response, toMappingResponse(h.baseURL, &records[i]))
	}

	writeJSON(res, http.StatusOK, response)
}

// Delete handles DELETE requests by soft-deleting the mapping. A mapping that
// does not exist and a mapping owned by someone else yield the same 404, so
// non-owners learn nothing.
func (h *MappingHandler) Delete(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), 3*time.Second)
	defer cancel()

	id := chi.URLParam(req, "id")
	userID := req.URL.Query().Get("userId")

	if userID == "" {
		// Fall back to the session identity.
		if visitorID, ok := req.Context().Value(middleware.VisitorIDKey).(string); ok {
			userID = visitorID
		}
	}
	if userID == "" {
		http.Error(res, "userId is required", http.StatusBadRequest)
		return
	}

	record, err := h.mappings.Delete(ctx, id, userID)
	if err != nil {
		writeServiceError(res, err)
		return
	}

	writeJSON(res, http.StatusOK, toMappingResponse(h.baseURL, record))
}

// Redirect handles GET requests on a short code: the click counter is bumped
// in the same lookup and the click event is captured asynchronously.
func (h *MappingHandler) Redirect(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), 3*time.Second)
	defer cancel()

	short := chi.URLParam(req, "code")

	record, err := h.mappings.RecordClick(ctx, short)
	if err != nil {
		http.Error(res, "URL not found", http.StatusNotFound)
		return
	}

	h.clicks.Capture(ctx, record.ID, req.Referer(), req.UserAgent())

	res.Header().Set("Location", record.LongURL)
	res.WriteHeader(http.StatusTemporaryRedirect)
}

// PingDB handles GET requests checking store connectivity.
func (h *MappingHandler) PingDB(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), 3*time.Second)
	defer cancel()

	if err := h.mappings.PingContext(ctx); err != nil {
		http.Error(res, err.Error(), http.StatusInternalServerError)
		return
	}

	res.WriteHeader(http.StatusOK)
}

// Stats handles GET requests on the subnet-guarded internal stats endpoint.
func (h *MappingHandler) Stats(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), 3*time.Second)
	defer cancel()

	stats, err := h.mappings.Stats(ctx)
	if err != nil {
		writeServiceError(res, err)
		return
	}

	writeJSON(res, http.StatusOK, models.StatsResponse{URLs: stats.URLs, Users: stats.Users})
}
