package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/phrazzld/todo-api/internal/api/shared"
	"github.com/phrazzld/todo-api/internal/platform/logger"
)

// InternalErrorMessage is the body text of every 500 response.
const InternalErrorMessage = "Something went wrong!"

// NewRecoverMiddleware returns middleware that turns a panic in a later
// handler into a 500 JSON error response and logs the panic with its stack.
// http.ErrAbortHandler is re-raised so net/http can abort the connection.
func NewRecoverMiddleware(base *slog.Logger) func(http.Handler) http.Handler {
	if base == nil {
		base = slog.Default()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler { //nolint:errorlint
					panic(rec)
				}

				logger.FromContextOrDefault(r.Context(), base).Error("panic recovered",
					slog.String("panic", fmt.Sprint(rec)),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("stack", string(debug.Stack())))

				shared.RespondWithError(w, r, http.StatusInternalServerError, InternalErrorMessage)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
