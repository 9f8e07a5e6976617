package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Event types emitted by the todo service.
const (
	TodoCreated = "todo.created"
	TodoToggled = "todo.toggled"
	TodoEdited  = "todo.edited"
	TodoDeleted = "todo.deleted"
)

// TodoEvent describes one mutation that has already been applied to the store.
type TodoEvent struct {
	// ID is a unique identifier for this event
	ID uuid.UUID `json:"id"`

	// Type is one of the Todo* constants
	Type string `json:"type"`

	// TodoID identifies the todo that changed
	TodoID string `json:"todo_id"`

	// Payload holds the JSON state of the todo after the change.
	// It is empty for deletions.
	Payload json.RawMessage `json:"payload,omitempty"`

	// CreatedAt is the timestamp when the event was created
	CreatedAt time.Time `json:"created_at"`
}

// UnmarshalPayload decodes the event payload into the provided structure.
func (e *TodoEvent) UnmarshalPayload(v interface{}) error {
	return json.Unmarshal(e.Payload, v)
}

// NewTodoEvent creates a TodoEvent. A nil payload leaves Payload empty.
func NewTodoEvent(eventType, todoID string, payload interface{}) (*TodoEvent, error) {
	event := &TodoEvent{
		ID:        uuid.New(),
		Type:      eventType,
		TodoID:    todoID,
		CreatedAt: time.Now().UTC(),
	}

	if payload != nil {
		payloadBytes, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		event.Payload = payloadBytes
	}

	return event, nil
}

// EventHandler defines an interface for components that can handle events.
type EventHandler interface {
	// HandleEvent processes the given event within the provided context.
	// Returns an error if the event cannot be handled successfully.
	HandleEvent(ctx context.Context, event *TodoEvent) error
}

// EventEmitter defines an interface for components that can emit events.
// This allows services to publish events without direct knowledge of handlers.
type EventEmitter interface {
	// EmitEvent publishes the given event to all registered handlers.
	// Returns an error if the event cannot be emitted.
	EmitEvent(ctx context.Context, event *TodoEvent) error
}
