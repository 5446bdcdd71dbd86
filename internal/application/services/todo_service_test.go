package services

import (
	"context"
	"testing"

	"github.com/voicedesk/core/internal/adapters/repository"
	"github.com/voicedesk/core/internal/domain/entities"
	"github.com/voicedesk/core/internal/infrastructure/logger"
	"github.com/voicedesk/core/internal/ports"
)

func TestCreateTodoSetsDefaults(t *testing.T) {
	svc := NewTodoService(repository.NewMemoryStore(), logger.NewNop())

	desc := "semi-skimmed"
	todo, err := svc.CreateTodo(context.Background(), ports.CreateTodoRequest{
		Title:       "Buy milk",
		Description: &desc,
	})
	if err != nil {
		t.Fatalf("CreateTodo: %v", err)
	}

	if todo.ID == 0 {
		t.Error("expected an assigned id")
	}
	if todo.Completed {
		t.Error("new todo must not be completed")
	}
	if todo.CreatedAt.IsZero() {
		t.Error("expected created_at to be set")
	}
}

func TestCompleteTodoTwice(t *testing.T) {
	svc := NewTodoService(repository.NewMemoryStore(), logger.NewNop())

	created, err := svc.CreateTodo(context.Background(), ports.CreateTodoRequest{Title: "Water plants"})
	if err != nil {
		t.Fatalf("CreateTodo: %v", err)
	}

	for i := 0; i < 2; i++ {
		todo, err := svc.CompleteTodo(context.Background(), created.ID)
		if err != nil {
			t.Fatalf("CompleteTodo attempt %d: %v", i+1, err)
		}
		if !todo.Completed {
			t.Errorf("attempt %d: completed = false", i+1)
		}
	}
}

func TestCompleteTodoNotFound(t *testing.T) {
	svc := NewTodoService(repository.NewMemoryStore(), logger.NewNop())

	_, err := svc.CompleteTodo(context.Background(), 404)
	if !entities.IsNotFound(err) {
		t.Errorf("err = %v, want a not-found error", err)
	}
}

func TestDeleteTodoNotFoundPassthrough(t *testing.T) {
	svc := NewTodoService(repository.NewMemoryStore(), logger.NewNop())

	if err := svc.DeleteTodo(context.Background(), 7); !entities.IsNotFound(err) {
		t.Errorf("err = %v, want a not-found error", err)
	}
}

func TestListTodosKeepsInsertionOrder(t *testing.T) {
	svc := NewTodoService(repository.NewMemoryStore(), logger.NewNop())

	for _, title := range []string{"first", "second", "third"} {
		if _, err := svc.CreateTodo(context.Background(), ports.CreateTodoRequest{Title: title}); err != nil {
			t.Fatalf("CreateTodo(%s): %v", title, err)
		}
	}

	todos, err := svc.ListTodos(context.Background())
	if err != nil {
		t.Fatalf("ListTodos: %v", err)
	}
	if len(todos) != 3 {
		t.Fatalf("got %d todos, want 3", len(todos))
	}
	for i, want := range []string{"first", "second", "third"} {
		if todos[i].Title != want {
			t.Errorf("todos[%d].Title = %s, want %s", i, todos[i].Title, want)
		}
	}
}
