// Package main implements the entry point for the todo API server,
// an in-memory todo list exposed over a small REST API.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/phrazzld/todo-api/internal/config"
	"github.com/phrazzld/todo-api/internal/platform/logger"
)

// main is the entry point for the todo-api server.
// It loads configuration, sets up logging, wires the application and serves
// until SIGINT or SIGTERM.
func main() {
	if err := run(); err != nil {
		log.Fatalf("todo-api: %v", err)
	}
}

func run() error {
	loader := config.NewEnvLoader()
	cfg, err := loader.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	l, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	l.Info("Server configuration loaded",
		"addr", cfg.Server.Addr(),
		"log_level", cfg.Server.LogLevel,
		"config_file", loader.ConfigFileUsed())

	app, err := newApplication(cfg, l)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	if loader.Watch(app.applyConfig) {
		l.Info("watching configuration file", "config_file", loader.ConfigFileUsed())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return app.Run(ctx)
}
