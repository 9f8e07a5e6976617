package domain

import (
	"github.com/google/uuid"
)

// Todo is a single task record. ID is assigned once at creation and never
// changes; Text and Done are mutable.
type Todo struct {
	ID   string `json:"id"`
	Text string `json:"text"`
	Done bool   `json:"done"`
}

// NewTodo creates an open Todo with a freshly generated UUID.
// Any text is accepted, including the empty string.
func NewTodo(text string) Todo {
	return Todo{
		ID:   uuid.NewString(),
		Text: text,
		Done: false,
	}
}

// Validate checks that the Todo carries an identifier.
func (t Todo) Validate() error {
	if t.ID == "" {
		return ErrEmptyTodoID
	}
	return nil
}

// SeedTodos returns the todos a fresh store starts with.
func SeedTodos() []Todo {
	learnReact := NewTodo("Learn React")
	learnVim := NewTodo("Learn Vim")
	learnVim.Done = true

	return []Todo{learnReact, learnVim}
}
