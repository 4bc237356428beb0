package storage

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStorage is a map-backed store used when no database DSN is configured
// and in tests. A single mutex guards all collections; every lookup returns
// copies so callers cannot mutate stored records.
type MemoryStorage struct {
	mu       sync.RWMutex
	users    map[string]UserRecord
	emails   map[string]string
	mappings map[string]MappingRecord
	byCode   map[string]string
	clicks   []ClickRecord
}

func CreateMemoryStorage() (*MemoryStorage, error) {
	return &MemoryStorage{
		users:    make(map[string]UserRecord),
		emails:   make(map[string]string),
		mappings: make(map[string]MappingRecord),
		byCode:   make(map[string]string),
	}, nil
}

func (m *MemoryStorage) CreateUser(_ context.Context, u UserRecord) (*UserRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	email := strings.ToLower(u.Email)
	if _, exists := m.emails[email]; exists {
		return nil, ErrConflict
	}

	u.ID = uuid.New().String()
	u.Email = email
	u.CreatedAt = time.Now()
	m.users[u.ID] = u
	m.emails[email] = u.ID

	return &u, nil
}

func (m *MemoryStorage) FindUserByID(_ context.Context, id string) (*UserRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	u, exists := m.users[id]
	if !exists {
		return nil, ErrNotFound
	}
	return &u, nil
}

func (m *MemoryStorage) CreateMapping(_ context.Context, r MappingRecord) (*MappingRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	// byCode also holds soft-deleted codes, so retired codes stay occupied.
	if _, exists := m.byCode[r.ShortCode]; exists {
		return nil, ErrCodeTaken
	}

	r.ID = uuid.New().String()
	r.ClickCount = 0
	r.IsDeleted = false
	r.CreatedAt = time.Now()
	m.mappings[r.ID] = r
	m.byCode[r.ShortCode] = r.ID

	return &r, nil
}

func (m *MemoryStorage) FindMappingByShort(_ context.Context, short string) (*MappingRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	id, exists := m.byCode[short]
	if !exists {
		return nil, ErrNotFound
	}

	r := m.mappings[id]
	if r.IsDeleted {
		return nil, ErrNotFound
	}
	return &r, nil
}

func (m *MemoryStorage) FindMappingByOwnerAndLong(_ context.Context, ownerID, long string) (*MappingRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, r := range m.mappings {
		if !r.IsDeleted && r.OwnerID == ownerID && r.LongURL == long {
			return &r, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MemoryStorage) FindMappingsByOwner(_ context.Context, ownerID string) ([]MappingRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	records := make([]MappingRecord, 0)
	for _, r := range m.mappings {
		if !r.IsDeleted && r.OwnerID == ownerID {
			records = append(records, r)
		}
	}
	return records, nil
}

func (m *MemoryStorage) IncrementClickCount(_ context.Context, short string) (*MappingRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id, exists := m.byCode[short]
	if !exists {
		return nil, ErrNotFound
	}

	r := m.mappings[id]
	if r.IsDeleted {
		return nil, ErrNotFound
	}

	r.ClickCount++
	m.mappings[id] = r
	return &r, nil
}

func (m *MemoryStorage) SoftDeleteMapping(_ context.Context, id, ownerID string) (*MappingRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	r, exists := m.mappings[id]
	// A foreign owner gets the same answer as a missing id.
	if !exists || r.OwnerID != ownerID {
		return nil, ErrNotFound
	}

	r.IsDeleted = true
	m.mappings[id] = r
	return &r, nil
}

func (m *MemoryStorage) CreateClick(_ context.Context, c ClickRecord) (*ClickRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	c.ID = uuid.New().String()
	c.CreatedAt = time.Now()
	m.clicks = append(m.clicks, c)

	return &c, nil
}

func (m *MemoryStorage) CreateClicks(ctx context.Context, cs []ClickRecord) error {
	for _, c := range cs {
		if _, err := m.CreateClick(ctx, c); err != nil {
			return err
		}
	}
	return nil
}

func (m *MemoryStorage) FindClicksByMapping(_ context.Context, mappingID string) ([]ClickRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	records := make([]ClickRecord, 0)
	for _, c := range m.clicks {
		if c.MappingID == mappingID {
			records = append(records, c)
		}
	}
	return records, nil
}

func (m *MemoryStorage) CountStats(_ context.Context) (*Stats, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return &Stats{URLs: len(m.mappings), Users: len(m.users)}, nil
}

func (m *MemoryStorage) PingContext(_ context.Context) error {
	return errors.ErrUnsupported
}
