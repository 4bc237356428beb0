package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/shortlink-app/shortlink/internal/app/service"
	"github.com/shortlink-app/shortlink/internal/models"
)

type ClickHandler struct {
	clicks service.ClickServiceIface
	logger *zap.Logger
}

func NewClick(s service.ClickServiceIface, l *zap.Logger) *ClickHandler {
	return &ClickHandler{
		clicks: s,
		logger: l,
	}
}

// Create handles POST requests submitting a click event for a short code.
// Device metadata missing from the payload is derived from the User-Agent.
func (h *ClickHandler) Create(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), 3*time.Second)
	defer cancel()

	var request models.CreateClickRequest

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

	if request.ShortCode == "" {
		http.Error(res, "shortCode is required", http.StatusBadRequest)
		return
	}

	record, err := h.clicks.Record(ctx, request.ShortCode, request, req.UserAgent())
	if err != nil {
		writeServiceError(res, err)
		return
	}

	writeJSON(res, http.StatusCreated, toClickResponse(record))
}

// ByShortCode handles GET requests listing the raw click events of a mapping.
func (h *ClickHandler) ByShortCode(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), 3*time.Second)
	defer cancel()

	short := chi.URLParam(req, "shortCode")

	records, err := h.clicks.ListByShort(ctx, short)
	if err != nil {
		writeServiceError(res, err)
		return
	}

	response := make([]models.ClickResponse, 0, len(records))
	for i := range records {
		response = append(response, toClickResponse(&records[i]))
	}

	writeJSON(res, http.StatusOK, response)
}

// Summary handles GET requests for the aggregated analytics of a mapping.
func (h *ClickHandler) Summary(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), 3*time.Second)
	defer cancel()

	short := chi.URLParam(req, "shortCode")

	summary, err := h.clicks.Summarize(ctx, short)
	if err != nil {
		writeServiceError(res, err)
		return
	}

	writeJSON(res, http.StatusOK, summary)
}
