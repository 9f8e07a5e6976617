package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/phrazzld/todo-api/internal/api/shared"
	"github.com/phrazzld/todo-api/internal/domain"
	"github.com/phrazzld/todo-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapErrorToStatusCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"todo not found", store.NewTodoNotFoundError("abc"), http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("toggle: %w", store.NewTodoNotFoundError("abc")), http.StatusNotFound},
		{"generic not found", store.ErrNotFound, http.StatusNotFound},
		{"validation", domain.NewValidationError("text", "required", domain.ErrValidation), http.StatusBadRequest},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
		{"nil", nil, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MapErrorToStatusCode(tt.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"todo not found", store.NewTodoNotFoundError("abc"), `Todo with id "abc" not found!`},
		{"wrapped not found", fmt.Errorf("edit: %w", store.NewTodoNotFoundError("x")), `Todo with id "x" not found!`},
		{"generic not found", store.ErrNotFound, "Not found"},
		{"validation", domain.ErrValidation, "Validation error"},
		{"internal details hidden", errors.New("postgres://admin:secret@db:5432 failed"), "Something went wrong!"},
		{"nil", nil, "Something went wrong!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetSafeErrorMessage(tt.err))
		})
	}
}

func TestSanitizeValidationError(t *testing.T) {
	t.Run("missing text", func(t *testing.T) {
		err := shared.ValidateRequest(TodoTextRequest{})
		require.Error(t, err)
		assert.Equal(t, "Invalid text: required field", SanitizeValidationError(err))
	})

	t.Run("non validator error", func(t *testing.T) {
		assert.Equal(t, "Validation error", SanitizeValidationError(errors.New("other")))
	})

	t.Run("empty text is present", func(t *testing.T) {
		empty := ""
		assert.NoError(t, shared.ValidateRequest(TodoTextRequest{Text: &empty}))
	})
}
