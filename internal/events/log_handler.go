package events

import (
	"context"
	"log/slog"

	"github.com/phrazzld/todo-api/internal/platform/logger"
)

// LogEventHandler writes every event it receives to the structured log.
type LogEventHandler struct {
	logger *slog.Logger
}

// NewLogEventHandler creates a LogEventHandler. A nil logger uses slog.Default().
func NewLogEventHandler(l *slog.Logger) *LogEventHandler {
	if l == nil {
		l = slog.Default()
	}
	return &LogEventHandler{logger: l.With(slog.String("component", "todo_events"))}
}

// HandleEvent implements EventHandler.
func (h *LogEventHandler) HandleEvent(ctx context.Context, event *TodoEvent) error {
	log := logger.FromContextOrDefault(ctx, h.logger)
	log.Info("todo changed",
		slog.String("event_id", event.ID.String()),
		slog.String("event_type", event.Type),
		slog.String("todo_id", event.TodoID))
	return nil
}
