package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"

	"github.com/phrazzld/todo-api/internal/config"
	"github.com/phrazzld/todo-api/internal/domain"
	"github.com/phrazzld/todo-api/internal/events"
	"github.com/phrazzld/todo-api/internal/platform/logger"
	"github.com/phrazzld/todo-api/internal/platform/memory"
	"github.com/phrazzld/todo-api/internal/service"
	"github.com/phrazzld/todo-api/internal/store"
)

// application holds all the shared application dependencies.
type application struct {
	config *config.Config
	logger *slog.Logger

	todoStore   store.TodoStore
	emitter     *events.InMemoryEventEmitter
	todoService service.TodoService
}

// newApplication creates a new application instance with all dependencies
// initialized. The store starts with the seed todos.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	app := &application{
		config: cfg,
		logger: logger,
	}

	var err error
	app.todoStore, err = memory.NewTodoStore(logger, domain.SeedTodos()...)
	if err != nil {
		return nil, fmt.Errorf("failed to create todo store: %w", err)
	}

	app.emitter = events.NewInMemoryEventEmitter(logger)
	app.emitter.RegisterHandler(events.NewLogEventHandler(logger))

	app.todoService, err = service.NewTodoService(app.todoStore, app.emitter, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create todo service: %w", err)
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run listens on the configured address and serves until ctx is canceled.
func (app *application) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", app.config.Server.Addr())
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", app.config.Server.Addr(), err)
	}

	if err := app.serve(ctx, ln, app.setupRouter()); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// applyConfig is called when the watched config file changes. Only the log
// level is applied live.
func (app *application) applyConfig(cfg *config.Config) {
	if cfg.Server.LogLevel == app.config.Server.LogLevel {
		return
	}

	if err := logger.SetLevel(cfg.Server.LogLevel); err != nil {
		app.logger.Warn("ignoring invalid log level from config file",
			"log_level", cfg.Server.LogLevel,
			"error", err)
		return
	}

	app.logger.Info("log level changed",
		"from", app.config.Server.LogLevel,
		"to", cfg.Server.LogLevel)
	app.config.Server.LogLevel = cfg.Server.LogLevel
}
