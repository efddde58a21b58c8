// Package common defines shared constants and sentinel errors used across
// the ContactKeeper server layers. Callers should use errors.Is to match
// these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")
	ErrorConflict = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Registration validation errors.
	ErrNameRequired     = errors.New("name is required")
	ErrInvalidEmail     = errors.New("invalid email")
	ErrPasswordTooShort = errors.New("password too short")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")
	ErrMissingToken = errors.New("missing token")

	// Token lifecycle errors.
	ErrTokenExpired = errors.New("token expired")

	// Configuration errors. The server must refuse to start without a signing
	// secret rather than mint unverifiable tokens.
	ErrNoSecretKey = errors.New("no secret key configured")

	// Upload validation errors.
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file too large")
)
