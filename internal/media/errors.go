package media

import (
	"errors"
)

var (
	// ErrEmptyUpload is returned when no file was submitted.
	ErrEmptyUpload = errors.New("no file uploaded")

	// ErrInvalidName is returned for stored names with path components.
	ErrInvalidName = errors.New("invalid stored file name")

	// ErrServiceDisabled marks fallbacks taken because no optimization
	// service is configured.
	ErrServiceDisabled = errors.New("image optimization service disabled")
)
