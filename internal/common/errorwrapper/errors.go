package errorwrapper

import (
	"errors"
	"fmt"
)

// Common error types used across the application
var (
	// ErrInvalidInput indicates user input that cannot be parsed
	ErrInvalidInput = errors.New("invalid input")
	// ErrInputTooLarge indicates input exceeding the maximum accepted length
	ErrInputTooLarge = errors.New("input too large")
	// ErrInvalidConfiguration indicates configuration issues
	ErrInvalidConfiguration = errors.New("invalid configuration")
	// ErrUnknownEngine indicates a diff engine kind with no registered implementation
	ErrUnknownEngine = errors.New("unknown diff engine")
)

// WrapError wraps an error with additional context information
func WrapError(err error, message string) error {
	if err == nil {
		return fmt.Errorf("%s: <nil>", message)
	}
	return fmt.Errorf("%s: %w", message, err)
}

// NewError creates a new error with a formatted message
func NewError(format string, args ...interface{}) error {
	return fmt.Errorf(format, args...)
}

// ValidationError represents validation errors with field-specific information
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: field '%s' with value '%v': %s", e.Field, e.Value, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field string, value any, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Message: message,
	}
}

// ComputationError represents an unexpected failure inside a diff engine.
// The benchmark harness converts these into failed results; outside the
// harness they propagate to the caller as-is.
type ComputationError struct {
	Engine  string
	Stage   string
	Wrapped error
}

func (e *ComputationError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("computation error in engine '%s' during %s: %v", e.Engine, e.Stage, e.Wrapped)
	}
	return fmt.Sprintf("computation error in engine '%s' during %s", e.Engine, e.Stage)
}

func (e *ComputationError) Unwrap() error {
	return e.Wrapped
}

// NewComputationError creates a new computation error
func NewComputationError(engine, stage string, wrapped error) *ComputationError {
	return &ComputationError{
		Engine:  engine,
		Stage:   stage,
		Wrapped: wrapped,
	}
}
