package services

import "errors"

// Sentinel errors handlers map onto the HTTP taxonomy.
var (
	ErrNotFound       = errors.New("resource not found")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrConflict       = errors.New("resource already exists")
	ErrInvalidRequest = errors.New("invalid request")
	ErrContentBlocked = errors.New("content blocked by moderation")
)
