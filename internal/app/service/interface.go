package service

import (
	"context"
	"time"

	"github.com/shortlink-app/shortlink/internal/models"
	"github.com/shortlink-app/shortlink/internal/storage"
)

//go:generate mockgen -source=interface.go -destination=../../mocks/service_mocks.go -package=mocks

// Storage is the store contract shared by the Postgres repository and the
// in-memory fallback.
type Storage interface {
	CreateUser(context.Context, storage.UserRecord) (*storage.UserRecord, error)
	FindUserByID(context.Context, string) (*storage.UserRecord, error)

	// CreateMapping returns storage.ErrCodeTaken when the short code is
	// already held by any record, soft-deleted ones included.
	CreateMapping(context.Context, storage.MappingRecord) (*storage.MappingRecord, error)
	FindMappingByShort(context.Context, string) (*storage.MappingRecord, error)
	FindMappingByOwnerAndLong(ctx context.Context, ownerID, long string) (*storage.MappingRecord, error)
	FindMappingsByOwner(context.Context, string) ([]storage.MappingRecord, error)
	IncrementClickCount(context.Context, string) (*storage.MappingRecord, error)
	SoftDeleteMapping(ctx context.Context, id, ownerID string) (*storage.MappingRecord, error)

	CreateClick(context.Context, storage.ClickRecord) (*storage.ClickRecord, error)
	CreateClicks(context.Context, []storage.ClickRecord) error
	FindClicksByMapping(context.Context, string) ([]storage.ClickRecord, error)

	CountStats(context.Context) (*storage.Stats, error)
	PingContext(context.Context) error
}

// MappingServiceIface is the code-allocator surface consumed by handlers.
type MappingServiceIface interface {
	Create(ctx context.Context, longURL, ownerID string, expiresAt *time.Time) (*storage.MappingRecord, error)
	GetByShort(ctx context.Context, short string) (*storage.MappingRecord, error)
	GetByOwner(ctx context.Context, ownerID string) ([]storage.MappingRecord, error)
	RecordClick(ctx context.Context, short string) (*storage.MappingRecord, error)
	Delete(ctx context.Context, id, ownerID string) (*storage.MappingRecord, error)
	PingContext(ctx context.Context) error
	Stats(ctx context.Context) (*storage.Stats, error)
}

// ClickServiceIface is the analytics surface consumed by handlers.
type ClickServiceIface interface {
	Record(ctx context.Context, short string, req models.CreateClickRequest, userAgent string) (*storage.ClickRecord, error)
	Capture(ctx context.Context, mappingID, referrer, userAgent string)
	ListByShort(ctx context.Context, short string) ([]storage.ClickRecord, error)
	Summarize(ctx context.Context, short string) (*models.ClickSummary, error)
}

// UserServiceIface is the user-directory surface consumed by handlers.
type UserServiceIface interface {
	Create(ctx context.Context, name, email string) (*storage.UserRecord, error)
	GetByID(ctx context.Context, id string) (*storage.UserRecord, error)
}
