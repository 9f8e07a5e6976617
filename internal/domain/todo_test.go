package domain

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTodo(t *testing.T) {
	t.Parallel()

	todo := NewTodo("Learn Go")

	_, err := uuid.Parse(todo.ID)
	require.NoError(t, err, "ID should be a valid UUID")
	assert.Equal(t, "Learn Go", todo.Text)
	assert.False(t, todo.Done, "new todos start open")
	assert.NoError(t, todo.Validate())
}

func TestNewTodoAcceptsEmptyText(t *testing.T) {
	t.Parallel()

	todo := NewTodo("")
	assert.Empty(t, todo.Text)
	assert.NotEmpty(t, todo.ID)
}

func TestTodoValidate(t *testing.T) {
	t.Parallel()

	err := Todo{Text: "no id"}.Validate()
	assert.True(t, errors.Is(err, ErrEmptyTodoID))
}

func TestSeedTodos(t *testing.T) {
	t.Parallel()

	seeds := SeedTodos()
	require.Len(t, seeds, 2)

	assert.Equal(t, "Learn React", seeds[0].Text)
	assert.False(t, seeds[0].Done)
	assert.Equal(t, "Learn Vim", seeds[1].Text)
	assert.True(t, seeds[1].Done)
	assert.NotEqual(t, seeds[0].ID, seeds[1].ID)

	// Each call yields fresh identifiers.
	again := SeedTodos()
	assert.NotEqual(t, seeds[0].ID, again[0].ID)
}

func TestValidationError(t *testing.T) {
	t.Parallel()

	err := NewValidationError("store", "cannot be nil", ErrValidation)
	assert.Equal(t, "invalid store: cannot be nil: validation failed", err.Error())
	assert.True(t, errors.Is(err, ErrValidation))

	bare := NewValidationError("text", "too long", nil)
	assert.Equal(t, "invalid text: too long", bare.Error())
}
