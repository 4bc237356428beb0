// Package models holds the JSON request and response shapes of the HTTP API.
package models

import "time"

type CreateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

type CreateMappingRequest struct {
	LongURL   string     `json:"longUrl"`
	UserID    string     `json:"userId"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
}

type MappingResponse struct {
	ID         string        `json:"id"`
	LongURL    string        `json:"longUrl"`
	ShortCode  string        `json:"shortCode"`
	ShortURL   string        `json:"shortUrl"`
	ClickCount int64         `json:"clickCount"`
	ExpiresAt  *time.Time    `json:"expiresAt,omitempty"`
	CreatedAt  time.Time     `json:"createdAt"`
	Owner      *UserResponse `json:"owner,omitempty"`
}

type GeographyPayload struct {
	Country   string  `json:"country,omitempty"`
	City      string  `json:"city,omitempty"`
	Latitude  float64 `json:"latitude,omitempty"`
	Longitude float64 `json:"longitude,omitempty"`
}

type DevicePayload struct {
	Type    string `json:"type,omitempty"`
	Name    string `json:"name,omitempty"`
	Version string `json:"version,omitempty"`
}

type CreateClickRequest struct {
	ShortCode      string            `json:"shortCode"`
	Geography      *GeographyPayload `json:"geography,omitempty"`
	ReferrerSource string            `json:"referrerSource,omitempty"`
	DeviceType     *DevicePayload    `json:"deviceType,omitempty"`
}

type ClickResponse struct {
	ID             string            `json:"id"`
	MappingID      string            `json:"mappingId"`
	Geography      *GeographyPayload `json:"geography,omitempty"`
	ReferrerSource string            `json:"referrerSource,omitempty"`
	DeviceType     *DevicePayload    `json:"deviceType,omitempty"`
	CreatedAt      time.Time         `json:"createdAt"`
}

// ClickSummary is the aggregated analytics view of one mapping.
// Maps are always non-nil so empty input marshals as {} and not null.
type ClickSummary struct {
	TotalClicks            int            `json:"totalClicks"`
	GeographicDistribution map[string]int `json:"geographicDistribution"`
	ReferrerSources        map[string]int `json:"referrerSources"`
	DeviceTypes            map[string]int `json:"deviceTypes"`
}

type StatsResponse struct {
	URLs  int `json:"urls"`
	Users int `json:"users"`
}
