package memory

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/phrazzld/todo-api/internal/domain"
	"github.com/phrazzld/todo-api/internal/platform/logger"
	"github.com/phrazzld/todo-api/internal/store"
)

// TodoStore keeps todos in insertion order in process memory.
// Nothing is persisted; the contents die with the process.
type TodoStore struct {
	mu     sync.Mutex
	todos  []domain.Todo
	logger *slog.Logger
}

// Ensure TodoStore implements store.TodoStore interface
var _ store.TodoStore = (*TodoStore)(nil)

// NewTodoStore creates a store holding the given seed todos in order.
// If logger is nil, a default logger will be used. A seed todo without an
// ID is rejected.
func NewTodoStore(logger *slog.Logger, seed ...domain.Todo) (*TodoStore, error) {
	for i, todo := range seed {
		if err := todo.Validate(); err != nil {
			return nil, fmt.Errorf("invalid seed todo at index %d: %w", i, err)
		}
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &TodoStore{
		todos:  slices.Clone(seed),
		logger: logger.With(slog.String("component", "todo_store")),
	}, nil
}

// indexOf returns the position of the first todo whose ID equals id, or -1.
// Callers must hold s.mu.
func (s *TodoStore) indexOf(id string) int {
	return slices.IndexFunc(s.todos, func(t domain.Todo) bool {
		return t.ID == id
	})
}

// List implements store.TodoStore.List
func (s *TodoStore) List(ctx context.Context) []domain.Todo {
	log := logger.FromContextOrDefault(ctx, s.logger)

	log.Info("fetching todos from in-memory store")

	s.mu.Lock()
	defer s.mu.Unlock()

	// Never nil, so an empty store still encodes as [].
	out := make([]domain.Todo, len(s.todos))
	copy(out, s.todos)
	return out
}

// Get implements store.TodoStore.Get
func (s *TodoStore) Get(ctx context.Context, id string) (domain.Todo, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	log.Debug("retrieving todo by ID", slog.String("todo_id", id))

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return domain.Todo{}, store.NewTodoNotFoundError(id)
	}
	return s.todos[i], nil
}

// Create implements store.TodoStore.Create
func (s *TodoStore) Create(ctx context.Context, text string) domain.Todo {
	log := logger.FromContextOrDefault(ctx, s.logger)

	todo := domain.NewTodo(text)
	log.Info("creating todo",
		slog.String("todo_id", todo.ID),
		slog.Int("text_length", len(text)))

	s.mu.Lock()
	defer s.mu.Unlock()

	s.todos = append(s.todos, todo)
	return todo
}

// Toggle implements store.TodoStore.Toggle
func (s *TodoStore) Toggle(ctx context.Context, id string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	log.Info("trying to toggle todo", slog.String("todo_id", id))

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return store.NewTodoNotFoundError(id)
	}
	s.todos[i].Done = !s.todos[i].Done
	return nil
}

// Edit implements store.TodoStore.Edit
func (s *TodoStore) Edit(ctx context.Context, id string, text string) (domain.Todo, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	log.Info("trying to edit todo", slog.String("todo_id", id))

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return domain.Todo{}, store.NewTodoNotFoundError(id)
	}
	s.todos[i].Text = text
	return s.todos[i], nil
}

// Delete implements store.TodoStore.Delete
// It removes every todo carrying id and succeeds only if the collection shrank.
func (s *TodoStore) Delete(ctx context.Context, id string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	log.Info("trying to delete todo", slog.String("todo_id", id))

	s.mu.Lock()
	defer s.mu.Unlock()

	before := len(s.todos)
	s.todos = slices.DeleteFunc(s.todos, func(t domain.Todo) bool {
		return t.ID == id
	})
	if len(s.todos) == before {
		return store.NewTodoNotFoundError(id)
	}
	return nil
}
