package content

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

var (
	// ErrUnknownContentType is returned for identifiers without a registered type.
	ErrUnknownContentType = errors.New("unknown content type")

	// ErrNotFound is returned when the requested item does not exist.
	ErrNotFound = errors.New("content item not found")

	// ErrMissingRequiredImage is returned when a create lacks a required upload.
	ErrMissingRequiredImage = errors.New("a required image upload is missing")

	// ErrImageProcessingFailed is returned when an upload could not be stored.
	ErrImageProcessingFailed = errors.New("image processing failed")

	// ErrInvalidNumericField is returned when a numeric field does not parse.
	ErrInvalidNumericField = errors.New("invalid numeric field value")

	// ErrDuplicateSlug is returned when a derived slug is already taken.
	ErrDuplicateSlug = errors.New("an item with this name already exists")
)

// UserMessage maps an operation error to the message shown to the admin.
func UserMessage(err error) string {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		return "Please fill in all required fields correctly."
	}

	switch {
	case errors.Is(err, ErrMissingRequiredImage):
		return "An image upload is required for this entry."
	case errors.Is(err, ErrImageProcessingFailed):
		return "The uploaded image could not be processed."
	case errors.Is(err, ErrInvalidNumericField):
		return "Numeric fields must contain whole numbers."
	case errors.Is(err, ErrDuplicateSlug):
		return "An entry with this name already exists. Pick a different name."
	case errors.Is(err, ErrNotFound):
		return "The requested entry no longer exists."
	default:
		return "Something went wrong while saving. Check the logs for details."
	}
}
