package storage

import "time"

// UserRecord is a registered owner of shortened links.
type UserRecord struct {
	ID        string    `json:"uuid"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// MappingRecord is a persisted association between a short code and a long URL.
// Soft-deleted records stay in the store so their codes are never reissued.
type MappingRecord struct {
	ID         string     `json:"uuid"`
	LongURL    string     `json:"long_url"`
	ShortCode  string     `json:"short_code"`
	OwnerID    string     `json:"owner_id"`
	ClickCount int64      `json:"click_count"`
	ExpiresAt  *time.Time `json:"expires_at,omitempty"`
	IsDeleted  bool       `json:"is_deleted"`
	CreatedAt  time.Time  `json:"created_at"`

	// Owner is resolved by the service layer, never persisted on the record.
	Owner *UserRecord `json:"-"`
}

// Geography is optional client location metadata attached to a click.
type Geography struct {
	Country   string  `json:"country"`
	City      string  `json:"city"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// DeviceInfo describes the client device of a click.
type DeviceInfo struct {
	Type    string `json:"type"`
	Name    string `json:"name"`
	Version string `json:"version"`
}

// ClickRecord is one visit against a mapping. Immutable once written.
type ClickRecord struct {
	ID             string      `json:"uuid"`
	MappingID      string      `json:"mapping_id"`
	Geography      *Geography  `json:"geography,omitempty"`
	ReferrerSource string      `json:"referrer_source,omitempty"`
	Device         *DeviceInfo `json:"device_type,omitempty"`
	CreatedAt      time.Time   `json:"created_at"`
}

// Stats holds store-wide counters for the internal stats endpoint.
type Stats struct {
	URLs  int `json:"urls"`
	Users int `json:"users"`
}
