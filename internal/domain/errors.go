// Package domain defines the core business entities and errors.
package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when an inbound request does not match the
	// expected shape. It is always a client error.
	ErrValidation = errors.New("validation failed")
)

// ValidationError describes a single invalid field of an inbound request.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError creates a ValidationError for the given field.
func NewValidationError(field, message string, err error) *ValidationError {
	return &ValidationError{Field: field, Message: message, Err: err}
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

// Unwrap returns the wrapped error so errors.Is can match ErrValidation.
func (e *ValidationError) Unwrap() error {
	return e.Err
}
