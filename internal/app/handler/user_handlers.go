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

type UserHandler struct {
	users  service.UserServiceIface
	logger *zap.Logger
}

func NewUser(s service.UserServiceIface, l *zap.Logger) *UserHandler {
	return &UserHandler{
		users:  s,
		logger: l,
	}
}

// Create handles POST requests for user registration.
func (h *UserHandler) Create(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), 3*time.Second)
	defer cancel()

	var request models.CreateUserRequest

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

	user, err := h.users.Create(ctx, request.Name, request.Email)
	if err != nil {
		writeServiceError(res, err)
		return
	}

	writeJSON(res, http.StatusCreated, toUserResponse(user))
}

// ByID handles GET requests for a single user.
func (h *UserHandler) ByID(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), 3*time.Second)
	defer cancel()

	id := chi.URLParam(req, "id")

	user, err := h.users.GetByID(ctx, id)
	if err != nil {
		writeServiceError(res, err)
		return
	}

	writeJSON(res, http.StatusOK, toUserResponse(user))
}
