package service

import (
	"context"
	"log/slog"

	"github.com/phrazzld/todo-api/internal/domain"
	"github.com/phrazzld/todo-api/internal/events"
	"github.com/phrazzld/todo-api/internal/platform/logger"
	"github.com/phrazzld/todo-api/internal/store"
)

// TodoService provides todo-related operations
type TodoService interface {
	// ListTodos returns every todo in insertion order.
	ListTodos(ctx context.Context) []domain.Todo

	// GetTodo returns the todo with the given ID.
	GetTodo(ctx context.Context, id string) (domain.Todo, error)

	// CreateTodo appends a new open todo and returns it.
	CreateTodo(ctx context.Context, text string) domain.Todo

	// ToggleTodo flips the done flag of the todo with the given ID.
	ToggleTodo(ctx context.Context, id string) error

	// EditTodo replaces the text of the todo with the given ID.
	EditTodo(ctx context.Context, id string, text string) (domain.Todo, error)

	// DeleteTodo removes the todo with the given ID.
	DeleteTodo(ctx context.Context, id string) error
}

// todoServiceImpl implements the TodoService interface
type todoServiceImpl struct {
	store   store.TodoStore
	emitter events.EventEmitter
	logger  *slog.Logger
}

// NewTodoService creates a new TodoService
// It returns an error if any of the required dependencies are nil.
func NewTodoService(
	todoStore store.TodoStore,
	emitter events.EventEmitter,
	logger *slog.Logger,
) (TodoService, error) {
	if todoStore == nil {
		return nil, domain.NewValidationError("todoStore", "cannot be nil", domain.ErrValidation)
	}
	if emitter == nil {
		return nil, domain.NewValidationError("emitter", "cannot be nil", domain.ErrValidation)
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &todoServiceImpl{
		store:   todoStore,
		emitter: emitter,
		logger:  logger.With(slog.String("component", "todo_service")),
	}, nil
}

// ListTodos implements TodoService.ListTodos
func (s *todoServiceImpl) ListTodos(ctx context.Context) []domain.Todo {
	return s.store.List(ctx)
}

// GetTodo implements TodoService.GetTodo
func (s *todoServiceImpl) GetTodo(ctx context.Context, id string) (domain.Todo, error) {
	return s.store.Get(ctx, id)
}

// CreateTodo implements TodoService.CreateTodo
func (s *todoServiceImpl) CreateTodo(ctx context.Context, text string) domain.Todo {
	todo := s.store.Create(ctx, text)
	s.emit(ctx, events.TodoCreated, todo.ID, todo)
	return todo
}

// ToggleTodo implements TodoService.ToggleTodo
// The event payload is read back after the toggle; a concurrent request may
// already have changed the todo again by then.
func (s *todoServiceImpl) ToggleTodo(ctx context.Context, id string) error {
	if err := s.store.Toggle(ctx, id); err != nil {
		return err
	}

	var payload interface{}
	if todo, err := s.store.Get(ctx, id); err == nil {
		payload = todo
	}
	s.emit(ctx, events.TodoToggled, id, payload)
	return nil
}

// EditTodo implements TodoService.EditTodo
func (s *todoServiceImpl) EditTodo(ctx context.Context, id string, text string) (domain.Todo, error) {
	todo, err := s.store.Edit(ctx, id, text)
	if err != nil {
		return domain.Todo{}, err
	}

	s.emit(ctx, events.TodoEdited, todo.ID, todo)
	return todo, nil
}

// DeleteTodo implements TodoService.DeleteTodo
func (s *todoServiceImpl) DeleteTodo(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}

	s.emit(ctx, events.TodoDeleted, id, nil)
	return nil
}

// emit publishes a change that has already been applied. Failures are
// logged only: the mutation stands regardless.
func (s *todoServiceImpl) emit(ctx context.Context, eventType, todoID string, payload interface{}) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	event, err := events.NewTodoEvent(eventType, todoID, payload)
	if err != nil {
		log.Error("failed to build todo event",
			slog.String("error", err.Error()),
			slog.String("event_type", eventType),
			slog.String("todo_id", todoID))
		return
	}

	if err := s.emitter.EmitEvent(ctx, event); err != nil {
		log.Error("failed to emit todo event",
			slog.String("error", err.Error()),
			slog.String("event_id", event.ID.String()),
			slog.String("event_type", eventType),
			slog.String("todo_id", todoID))
	}
}
