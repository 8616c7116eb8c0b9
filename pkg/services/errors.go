package services

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when an entity is not found.
	ErrNotFound = errors.New("entity not found")

	// ErrTaskGone is returned when a task vanished between lookup and act
	// (deleted by a concurrent session). Recoverable by the caller.
	ErrTaskGone = errors.New("task gone")

	// ErrTaskCompleted is returned when a transition is attempted on an
	// already-completed task.
	ErrTaskCompleted = errors.New("task already completed")

	// ErrTaskNotActive is returned when stop/complete is attempted on a
	// task that has not been started.
	ErrTaskNotActive = errors.New("task not active")

	// ErrAnotherTaskActive is returned when starting a task while a
	// different task is active. The wrapping message names the active task.
	ErrAnotherTaskActive = errors.New("another task is active")

	// ErrInvalidInput is returned when input validation fails.
	ErrInvalidInput = errors.New("invalid input")
)

// ValidationError wraps field-specific validation errors.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// Unwrap lets errors.Is(err, ErrInvalidInput) match validation errors.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// NewValidationError creates a new validation error.
func NewValidationError(field, message string) error {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// IsValidationError checks if an error is a validation error.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
