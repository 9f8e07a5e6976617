package api

import (
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/todo-api/internal/api/shared"
	"github.com/phrazzld/todo-api/internal/platform/logger"
	"github.com/phrazzld/todo-api/internal/redact"
	"github.com/phrazzld/todo-api/internal/service"
)

// Greeting is the plain-text body of GET /.
const Greeting = "Hello Go!"

// TodoIDParam is the chi URL parameter holding the todo ID.
const TodoIDParam = "id"

// TodoHandler handles todo-related HTTP requests
type TodoHandler struct {
	todoService service.TodoService
	logger      *slog.Logger
}

// NewTodoHandler creates a new TodoHandler
func NewTodoHandler(todoService service.TodoService, logger *slog.Logger) *TodoHandler {
	if todoService == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("todoService cannot be nil for TodoHandler")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &TodoHandler{
		todoService: todoService,
		logger:      logger.With(slog.String("component", "todo_handler")),
	}
}

// Hello handles GET / requests
func (h *TodoHandler) Hello(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(Greeting)); err != nil {
		logger.FromContextOrDefault(r.Context(), h.logger).
			Error("failed to write greeting", slog.String("error", err.Error()))
	}
}

// ListTodos handles GET /todos/ requests
func (h *TodoHandler) ListTodos(w http.ResponseWriter, r *http.Request) {
	todos := h.todoService.ListTodos(r.Context())
	shared.RespondWithJSON(w, r, http.StatusOK, todosToResponse(todos))
}

// CreateTodo handles POST /todos/ requests
func (h *TodoHandler) CreateTodo(w http.ResponseWriter, r *http.Request) {
	text, ok := h.decodeText(w, r)
	if !ok {
		return
	}

	todo := h.todoService.CreateTodo(r.Context(), text)
	shared.RespondWithJSON(w, r, http.StatusOK, todoToResponse(todo))
}

// GetTodo handles GET /todos/{id} requests
func (h *TodoHandler) GetTodo(w http.ResponseWriter, r *http.Request) {
	id, ok := h.todoID(w, r)
	if !ok {
		return
	}

	todo, err := h.todoService.GetTodo(r.Context(), id)
	if err != nil {
		h.respondWithServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, todoToResponse(todo))
}

// ToggleTodo handles PUT /todos/{id} requests
func (h *TodoHandler) ToggleTodo(w http.ResponseWriter, r *http.Request) {
	id, ok := h.todoID(w, r)
	if !ok {
		return
	}

	if err := h.todoService.ToggleTodo(r.Context(), id); err != nil {
		h.respondWithServiceError(w, r, err)
		return
	}

	shared.RespondOK(w)
}

// EditTodo handles POST /todos/{id} requests
func (h *TodoHandler) EditTodo(w http.ResponseWriter, r *http.Request) {
	id, ok := h.todoID(w, r)
	if !ok {
		return
	}

	text, ok := h.decodeText(w, r)
	if !ok {
		return
	}

	todo, err := h.todoService.EditTodo(r.Context(), id, text)
	if err != nil {
		h.respondWithServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, todoToResponse(todo))
}

// DeleteTodo handles DELETE /todos/{id} requests
func (h *TodoHandler) DeleteTodo(w http.ResponseWriter, r *http.Request) {
	id, ok := h.todoID(w, r)
	if !ok {
		return
	}

	if err := h.todoService.DeleteTodo(r.Context(), id); err != nil {
		h.respondWithServiceError(w, r, err)
		return
	}

	shared.RespondOK(w)
}

// todoID extracts the todo ID from the URL path. It writes a 400 response
// and returns false when the ID is missing.
func (h *TodoHandler) todoID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := chi.URLParam(r, TodoIDParam)
	// chi routes on RawPath when the path holds escaped bytes such as %2F,
	// leaving the parameter encoded.
	if r.URL.RawPath != "" {
		if decoded, err := url.PathUnescape(id); err == nil {
			id = decoded
		}
	}
	if id == "" {
		logger.FromContextOrDefault(r.Context(), h.logger).Warn("todo ID not found in URL path")
		shared.RespondWithError(w, r, http.StatusBadRequest, "Todo ID is required")
		return "", false
	}
	return id, true
}

// decodeText reads and validates a TodoTextRequest body. On failure it has
// already written a 400 response and returns false.
func (h *TodoHandler) decodeText(w http.ResponseWriter, r *http.Request) (string, bool) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req TodoTextRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		log.Warn("invalid request format", slog.String("error", redact.Error(err)))
		shared.RespondWithError(w, r, http.StatusBadRequest, msgInvalidRequest)
		return "", false
	}

	if err := shared.ValidateRequest(req); err != nil {
		log.Warn("validation error", slog.String("error", redact.Error(err)))
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return "", false
	}

	return *req.Text, true
}

// respondWithServiceError maps err to a status code and sanitized message.
func (h *TodoHandler) respondWithServiceError(w http.ResponseWriter, r *http.Request, err error) {
	shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
}
