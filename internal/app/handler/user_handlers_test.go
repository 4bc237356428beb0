package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/shortlink-app/shortlink/internal/mocks"
	"github.com/shortlink-app/shortlink/internal/models"
	"github.com/shortlink-app/shortlink/internal/storage"
)

func TestUserHandler_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockUserServiceIface(ctrl)
	h := NewUser(mockService, zap.NewNop())

	created := &storage.UserRecord{
		ID:        "user-1",
		Name:      "Ada",
		Email:     "ada@example.com",
		CreatedAt: time.Now(),
	}

	tests := []struct {
		name         string
		body         string
		mockResult   *storage.UserRecord
		mockErr      error
		expectedCode int
	}{
		{
			name:         "valid user",
			body:         `{"name":"Ada","email":"ada@example.com"}`,
			mockResult:   created,
			mockErr:      nil,
			expectedCode: http.StatusCreated,
		},
		{
			name:         "duplicate email",
			body:         `{"name":"Ada","email":"ada@example.com"}`,
			mockResult:   nil,
			mockErr:      storage.ErrConflict,
			expectedCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService.EXPECT().
				Create(gomock.Any(), "Ada", "ada@example.com").
				Return(tt.mockResult, tt.mockErr).
				Times(1)

			req := httptest.NewRequest(http.MethodPost, "/api/users", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")

			rr := httptest.NewRecorder()
			h.Create(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedCode == http.StatusCreated {
				var response models.UserResponse
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
				assert.Equal(t, "user-1", response.ID)
				assert.Equal(t, "ada@example.com", response.Email)
			}
		})
	}
}

func TestUserHandler_Create_BadJSON(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockUserServiceIface(ctrl)
	h := NewUser(mockService, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/api/users", bytes.NewBufferString(`{"name":`))
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	h.Create(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestUserHandler_ByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockUserServiceIface(ctrl)
	h := NewUser(mockService, zap.NewNop())

	r := chi.NewRouter()
	r.Get("/api/users/{id}", h.ByID)

	t.Run("found", func(t *testing.T) {
		mockService.EXPECT().
			GetByID(gomock.Any(), "user-1").
			Return(&storage.UserRecord{ID: "user-1", Name: "Ada", Email: "ada@example.com"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/users/user-1", nil)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var response models.UserResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
		assert.Equal(t, "Ada", response.Name)
	})

	t.Run("not found", func(t *testing.T) {
		mockService.EXPECT().
			GetByID(gomock.Any(), "missing").
			Return(nil, storage.ErrNotFound)

		req := httptest.NewRequest(http.MethodGet, "/api/users/missing", nil)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
