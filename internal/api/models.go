package api

import (
	"github.com/phrazzld/todo-api/internal/domain"
)

// TodoTextRequest is the body of POST /todos/ and POST /todos/{id}.
// Text is a pointer so a missing field can be told apart from "".
type TodoTextRequest struct {
	Text *string `json:"text" validate:"required"`
}

// TodoResponse represents the response data for a todo
type TodoResponse struct {
	ID   string `json:"id"`
	Text string `json:"text"`
	Done bool   `json:"done"`
}

// todoToResponse converts a domain.Todo to a TodoResponse
func todoToResponse(todo domain.Todo) TodoResponse {
	return TodoResponse{
		ID:   todo.ID,
		Text: todo.Text,
		Done: todo.Done,
	}
}

// todosToResponse converts todos to responses, preserving order.
// The result is never nil so it always encodes as a JSON array.
func todosToResponse(todos []domain.Todo) []TodoResponse {
	out := make([]TodoResponse, 0, len(todos))
	for _, todo := range todos {
		out = append(out, todoToResponse(todo))
	}
	return out
}
