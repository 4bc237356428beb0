package storage

import "errors"

var (
	// ErrNotFound is returned when a user, mapping or click lookup matches nothing,
	// including lookups that hit a soft-deleted mapping.
	ErrNotFound = errors.New("not found")

	// ErrConflict is returned when an insert violates a uniqueness constraint
	// other than the short code, e.g. a duplicate user email.
	ErrConflict = errors.New("data conflict")

	// ErrCodeTaken is returned when a mapping insert loses the short-code
	// uniqueness constraint. Callers regenerate and retry.
	ErrCodeTaken = errors.New("short code already taken")
)
