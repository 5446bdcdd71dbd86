package services

import (
	"context"
	"fmt"
	"time"

	"github.com/voicedesk/core/internal/domain/entities"
	"github.com/voicedesk/core/internal/infrastructure/logger"
	"github.com/voicedesk/core/internal/ports"
)

// TodoServiceImpl handles todo operations.
type TodoServiceImpl struct {
	todoRepo ports.TodoRepository
	logger   *logger.Logger
}

// NewTodoService creates a new todo service.
func NewTodoService(todoRepo ports.TodoRepository, logger *logger.Logger) ports.TodoService {
	return &TodoServiceImpl{
		todoRepo: todoRepo,
		logger:   logger,
	}
}

// CreateTodo creates a new todo.
func (s *TodoServiceImpl) CreateTodo(ctx context.Context, req ports.CreateTodoRequest) (*entities.Todo, error) {
	todo := &entities.Todo{
		Title:       req.Title,
		Description: req.Description,
		Completed:   false,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.todoRepo.Create(ctx, todo); err != nil {
		return nil, fmt.Errorf("failed to create todo: %w", err)
	}

	s.logger.Infow("Todo created", "todo_id", todo.ID, "title", todo.Title)

	return todo, nil
}

// ListTodos returns all todos in insertion order.
func (s *TodoServiceImpl) ListTodos(ctx context.Context) ([]*entities.Todo, error) {
	todos, err := s.todoRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list todos: %w", err)
	}

	return todos, nil
}

// CompleteTodo marks a todo completed. Completing twice is idempotent.
func (s *TodoServiceImpl) CompleteTodo(ctx context.Context, id int64) (*entities.Todo, error) {
	todo, err := s.todoRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	todo.Complete()
	if err := s.todoRepo.Update(ctx, todo); err != nil {
		return nil, fmt.Errorf("failed to update todo: %w", err)
	}

	s.logger.Infow("Todo completed", "todo_id", todo.ID)

	return todo, nil
}

// DeleteTodo removes a todo by id.
func (s *TodoServiceImpl) DeleteTodo(ctx context.Context, id int64) error {
	if err := s.todoRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Infow("Todo deleted", "todo_id", id)

	return nil
}
