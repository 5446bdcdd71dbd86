package ports

import (
	"context"
	"time"

	"github.com/voicedesk/core/internal/domain/entities"
)

// TodoService defines todo operations exposed to the transport layer.
type TodoService interface {
	CreateTodo(ctx context.Context, req CreateTodoRequest) (*entities.Todo, error)
	ListTodos(ctx context.Context) ([]*entities.Todo, error)
	CompleteTodo(ctx context.Context, id int64) (*entities.Todo, error)
	DeleteTodo(ctx context.Context, id int64) error
}

// ReminderService defines reminder operations exposed to the transport layer.
type ReminderService interface {
	CreateReminder(ctx context.Context, req CreateReminderRequest) (*entities.Reminder, error)
	ListReminders(ctx context.Context) ([]*entities.Reminder, error)
	DeleteReminder(ctx context.Context, id int64) error
}

// CalendarService defines calendar operations exposed to the transport layer.
type CalendarService interface {
	CreateEvent(ctx context.Context, req CreateEventRequest) (*entities.CalendarEvent, error)
	ListEvents(ctx context.Context) ([]*entities.CalendarEvent, error)
	DeleteEvent(ctx context.Context, id int64) error
}

// CreateTodoRequest carries the fields for creating a todo.
type CreateTodoRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
}

// CreateReminderRequest carries the fields for creating a reminder.
type CreateReminderRequest struct {
	ReminderText string `json:"reminder_text"`
	Importance   string `json:"importance"`
}

// CreateEventRequest carries the fields for creating a calendar event.
type CreateEventRequest struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	EventFrom   time.Time `json:"event_from"`
	EventTo     time.Time `json:"event_to"`
}
