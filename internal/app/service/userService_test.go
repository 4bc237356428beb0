package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/shortlink-app/shortlink/internal/storage"
)

func newUserFixture(t *testing.T) *UserService {
	t.Helper()

	store, err := storage.CreateMemoryStorage()
	require.NoError(t, err)

	return NewUser(store, zap.NewNop())
}

func TestUserService_Create(t *testing.T) {
	service := newUserFixture(t)

	result, err := service.Create(context.Background(), "  Ada Lovelace ", " Ada@Example.COM ")

	require.NoError(t, err)
	assert.NotEmpty(t, result.ID)
	assert.Equal(t, "Ada Lovelace", result.Name)
	assert.Equal(t, "ada@example.com", result.Email)
	assert.False(t, result.CreatedAt.IsZero())
}

func TestUserService_Create_Invalid(t *testing.T) {
	service := newUserFixture(t)

	cases := []struct {
		name  string
		email string
	}{
		{"", "ada@example.com"},
		{"Ada", ""},
		{"Ada", "not-an-email"},
	}
	for _, c := range cases {
		_, err := service.Create(context.Background(), c.name, c.email)
		assert.ErrorIsf(t, err, ErrInvalidInput, "name %q email %q", c.name, c.email)
	}
}

func TestUserService_Create_DuplicateEmail(t *testing.T) {
	service := newUserFixture(t)
	ctx := context.Background()

	_, err := service.Create(ctx, "Ada", "ada@example.com")
	require.NoError(t, err)

	// Case only differs, still the same address.
	_, err = service.Create(ctx, "Other Ada", "ADA@example.com")
	assert.ErrorIs(t, err, storage.ErrConflict)
}

func TestUserService_GetByID(t *testing.T) {
	service := newUserFixture(t)
	ctx := context.Background()

	created, err := service.Create(ctx, "Ada", "ada@example.com")
	require.NoError(t, err)

	found, err := service.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Email, found.Email)

	_, err = service.GetByID(ctx, "no-such-id")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}
