package tinify

import (
	"errors"
	"fmt"
)

var (
	// ErrClientNotInitialized is returned when the client is nil.
	ErrClientNotInitialized = errors.New("optimization service client not initialized")

	// ErrEmptyInput is returned when no image bytes were given.
	ErrEmptyInput = errors.New("no image data to compress")

	// ErrNoOutput is returned when the service reply carries no usable output.
	ErrNoOutput = errors.New("optimization service returned no output")
)

// Error is an error reply from the optimization service.
type Error struct {
	Status  int    // HTTP status code
	Code    string // service error code, e.g. "Unauthorized" or "BadSignature"
	Message string // human readable description
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("optimization service error (status %d)", e.Status)
	}

	return fmt.Sprintf("optimization service error %s (status %d): %s", e.Code, e.Status, e.Message)
}
