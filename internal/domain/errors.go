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
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")

	// ErrInvalidKey is returned for an empty or malformed undo key.
	ErrInvalidKey = errors.New("invalid undo key")
	// ErrDurableWriteFailed marks a failed delete or recreate against the backing store.
	ErrDurableWriteFailed = errors.New("durable write failed")
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
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
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

// WriteError reports a failed durable write for an entity kind.
// errors.Is matches both ErrDurableWriteFailed and the underlying cause.
type WriteError struct {
	Op   string
	Kind EntityKind
	Err  error
}

// NewWriteError wraps err as a durable write failure of op on kind.
func NewWriteError(op string, kind EntityKind, err error) *WriteError {
	return &WriteError{Op: op, Kind: kind, Err: err}
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Kind, e.Err)
}

func (e *WriteError) Unwrap() []error { return []error{ErrDurableWriteFailed, e.Err} }
