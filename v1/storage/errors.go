package storage

import "errors"

// Common storage errors
var (
	// ErrInvalidKey is returned when an object key is empty or malformed.
	ErrInvalidKey = errors.New("storage: invalid object key")

	// ErrNotFound is returned when an object exists neither on the gateway
	// nor in the local fallback mirror.
	ErrNotFound = errors.New("storage: object not found")
)

// IsInvalidKeyError checks if the error is an invalid-key error.
func IsInvalidKeyError(err error) bool {
	return errors.Is(err, ErrInvalidKey)
}

// IsNotFoundError checks if the error is an object-not-found error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}
