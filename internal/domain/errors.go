package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")

	// ErrConflict signals a failed compare-and-swap: the entity was not in
	// the lifecycle state the caller expected, usually because a concurrent
	// operation got there first.
	ErrConflict = errors.New("state conflict")

	// ErrMergeConflict signals that the live contact value diverged from the
	// snapshot taken at suggestion time. Reported per field; never aborts
	// sibling fields.
	ErrMergeConflict = errors.New("merge conflict")

	// ErrPathNotFound signals an update/remove instruction addressing a
	// field path that does not exist in the contact profile.
	ErrPathNotFound = errors.New("path not found")

	// ErrUpstream marks a transcription or intelligence-capability failure.
	// It is recorded on the affected row, not raised across pipeline stages.
	ErrUpstream = errors.New("upstream failure")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s — %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}
