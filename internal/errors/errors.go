// Package errors provides custom error types for domain-specific errors.
package errors

import (
	"errors"
	"fmt"
)

// Standard sentinel errors
var (
	ErrTimeout          = errors.New("operation timed out")
	ErrConnectionFailed = errors.New("connection failed")
	ErrNotAuthorized    = errors.New("not authorized")
	ErrDataNotFound     = errors.New("data not found")
	ErrDatabaseError    = errors.New("database error")
	ErrConfigInvalid    = errors.New("invalid configuration")
	ErrInputValidation  = errors.New("input validation failed")
	ErrServiceMissing   = errors.New("required service not supplied")
)

// EntityError represents an error from an operation on a journal entity.
type EntityError struct {
	Entity string
	ID     string
	Action string
	Err    error
}

func (e *EntityError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s %s [%s]: %v", e.Action, e.Entity, e.ID, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Action, e.Entity, e.Err)
}

func (e *EntityError) Unwrap() error {
	return e.Err
}

// NewEntityError creates a new EntityError.
func NewEntityError(entity, id, action string, err error) *EntityError {
	return &EntityError{
		Entity: entity,
		ID:     id,
		Action: action,
		Err:    err,
	}
}

// ValidationError represents a local validation failure with the
// offending field path.
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s (%v): %s", e.Field, e.Value, e.Message)
}

// NewValidationError creates a new ValidationError.
func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Message: message,
	}
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with formatted context.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
