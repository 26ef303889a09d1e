// Package common defines shared constants and sentinel errors used across
// the CloudKeeper server layers. Callers should use errors.Is to match
// these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// ErrEmailExists is returned when a signup collides with an existing
	// account, either via the pre-insert lookup or the unique index.
	ErrEmailExists = errors.New("email already registered")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Validation errors for missing or malformed request input.
	ErrorValidation = errors.New("validation error")
)
