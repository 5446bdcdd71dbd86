package http

import (
	"context"

	"github.com/voicedesk/core/internal/adapters/toolcall"
	"github.com/voicedesk/core/internal/infrastructure/logger"
	"github.com/voicedesk/core/internal/ports"
)

// TodoHandler binds the todo voice commands to the todo service.
type TodoHandler struct {
	todoService ports.TodoService
	logger      *logger.Logger
}

// NewTodoHandler creates a new todo handler and registers its operations.
func NewTodoHandler(todoService ports.TodoService, dispatcher *toolcall.Dispatcher, logger *logger.Logger) *TodoHandler {
	h := &TodoHandler{
		todoService: todoService,
		logger:      logger,
	}

	dispatcher.Register("create_todo", h.createTodo)
	dispatcher.Register("get_todos", h.listTodos)
	dispatcher.Register("complete_todo", h.completeTodo)
	dispatcher.Register("delete_todo", h.deleteTodo)

	return h
}

func (h *TodoHandler) createTodo(ctx context.Context, args toolcall.Args) (interface{}, error) {
	title, err := args.String("title")
	if err != nil {
		return nil, err
	}

	return h.todoService.CreateTodo(ctx, ports.CreateTodoRequest{
		Title:       title,
		Description: args.OptionalString("description"),
	})
}

func (h *TodoHandler) listTodos(ctx context.Context, args toolcall.Args) (interface{}, error) {
	return h.todoService.ListTodos(ctx)
}

func (h *TodoHandler) completeTodo(ctx context.Context, args toolcall.Args) (interface{}, error) {
	id, err := args.ID("id")
	if err != nil {
		return nil, err
	}

	return h.todoService.CompleteTodo(ctx, id)
}

func (h *TodoHandler) deleteTodo(ctx context.Context, args toolcall.Args) (interface{}, error) {
	id, err := args.ID("id")
	if err != nil {
		return nil, err
	}

	if err := h.todoService.DeleteTodo(ctx, id); err != nil {
		return nil, err
	}

	return statusDeleted, nil
}
