package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/todo-api/internal/domain"
	"github.com/phrazzld/todo-api/internal/store"
)

// Messages returned to clients for errors that carry no safe text of their own.
const (
	msgInternal         = "Something went wrong!"
	msgNotFound         = "Not found"
	msgInvalidRequest   = "Invalid request format"
	msgValidationFailed = "Validation error"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	case store.IsNotFoundError(err):
		return http.StatusNotFound

	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return msgInternal
	}

	var todoNotFound *store.TodoNotFoundError
	switch {
	case errors.As(err, &todoNotFound):
		return todoNotFound.Error()

	case store.IsNotFoundError(err):
		return msgNotFound

	case errors.Is(err, domain.ErrValidation):
		return msgValidationFailed

	default:
		return msgInternal
	}
}

// SanitizeValidationError turns validator errors into a short message that
// names the first offending JSON field.
func SanitizeValidationError(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		first := verrs[0]
		return fmt.Sprintf("Invalid %s: %s", first.Field(), getValidationTagMessage(first.Tag()))
	}

	return msgValidationFailed
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "min":
		return "too short"
	case "max":
		return "too long"
	default:
		return "validation failed"
	}
}
