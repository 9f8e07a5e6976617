package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the store.
	// This is a generic version of the entity-specific not found errors.
	ErrNotFound = errors.New("entity not found")

	// ErrTodoNotFound indicates that the requested todo does not exist in the store.
	ErrTodoNotFound = fmt.Errorf("%w: todo", ErrNotFound)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// TodoNotFoundError is returned by Toggle, Edit, Delete and Get when no todo
// carries the requested ID. Its message is safe to show to clients.
type TodoNotFoundError struct {
	ID string
}

// Error implements the error interface for TodoNotFoundError.
func (e *TodoNotFoundError) Error() string {
	return fmt.Sprintf("Todo with id %q not found!", e.ID)
}

// Unwrap returns ErrTodoNotFound so callers can match with errors.Is.
func (e *TodoNotFoundError) Unwrap() error {
	return ErrTodoNotFound
}

// NewTodoNotFoundError creates a TodoNotFoundError for the given ID.
func NewTodoNotFoundError(id string) *TodoNotFoundError {
	return &TodoNotFoundError{ID: id}
}
