// Package common defines shared sentinel errors used across the service
// layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorValidation   = errors.New("validation error")

	// Auth errors. Invalid covers malformed, tampered and expired tokens
	// alike so callers cannot tell the cases apart.
	ErrInvalidToken = errors.New("invalid token")
)
