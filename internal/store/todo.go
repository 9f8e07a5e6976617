package store

import (
	"context"

	"github.com/phrazzld/todo-api/internal/domain"
)

// TodoStore defines the interface for the todo collection.
// Implementations must serialize every operation, reads included, so that
// each call observes the effects of all calls that completed before it.
type TodoStore interface {
	// List returns a snapshot of all todos in insertion order.
	// The returned slice is owned by the caller.
	List(ctx context.Context) []domain.Todo

	// Get returns a copy of the first todo whose ID matches.
	// Returns a *TodoNotFoundError if no todo matches.
	Get(ctx context.Context, id string) (domain.Todo, error)

	// Create appends a new open todo with the given text and returns it.
	Create(ctx context.Context, text string) domain.Todo

	// Toggle flips the done flag of the first todo whose ID matches.
	// Returns a *TodoNotFoundError if no todo matches.
	Toggle(ctx context.Context, id string) error

	// Edit replaces the text of the first todo whose ID matches, leaving its
	// done flag untouched, and returns the updated todo.
	// Returns a *TodoNotFoundError if no todo matches.
	Edit(ctx context.Context, id string, text string) (domain.Todo, error)

	// Delete removes the todo whose ID matches.
	// Returns a *TodoNotFoundError if the collection did not shrink.
	Delete(ctx context.Context, id string) error
}
