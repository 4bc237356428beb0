package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/shortlink-app/shortlink/internal/storage"
)

// UserService is the user directory backing ownership checks.
type UserService struct {
	repository Storage
	logger     *zap.Logger
}

func NewUser(repo Storage, logger *zap.Logger) *UserService {
	return &UserService{
		repository: repo,
		logger:     logger,
	}
}

// Create registers a user. Emails are lowercased before storage; a duplicate
// email surfaces as storage.ErrConflict.
func (s *UserService) Create(ctx context.Context, name, email string) (*storage.UserRecord, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))

	if name == "" || email == "" || !strings.Contains(email, "@") {
		return nil, ErrInvalidInput
	}

	return s.repository.CreateUser(ctx, storage.UserRecord{Name: name, Email: email})
}

func (s *UserService) GetByID(ctx context.Context, id string) (*storage.UserRecord, error) {
	return s.repository.FindUserByID(ctx, id)
}
