// Package common defines shared constants and sentinel errors used across
// notekeeper components. Callers should use errors.Is to match these values;
// services wrap them with fmt.Errorf("%w: ...") so detail such as the
// offending record id travels with the error class.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound    = errors.New("not found")
	ErrorConflict    = errors.New("already exists")
	ErrorCorrupt     = errors.New("corrupt record")
	ErrorUnavailable = errors.New("storage unavailable")

	// Service-level errors.
	ErrorInvalidInput = errors.New("invalid input")
	ErrorUnauthorized = errors.New("unauthorized")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")
)
