package ports

import (
	"context"

	"github.com/voicedesk/core/internal/domain/entities"
)

// TodoRepository defines the interface for todo data operations.
type TodoRepository interface {
	Create(ctx context.Context, todo *entities.Todo) error
	GetByID(ctx context.Context, id int64) (*entities.Todo, error)
	List(ctx context.Context) ([]*entities.Todo, error)
	Update(ctx context.Context, todo *entities.Todo) error
	Delete(ctx context.Context, id int64) error
}

// ReminderRepository defines the interface for reminder data operations.
type ReminderRepository interface {
	Create(ctx context.Context, reminder *entities.Reminder) error
	List(ctx context.Context) ([]*entities.Reminder, error)
	Delete(ctx context.Context, id int64) error
}

// CalendarRepository defines the interface for calendar event data operations.
type CalendarRepository interface {
	Create(ctx context.Context, event *entities.CalendarEvent) error
	List(ctx context.Context) ([]*entities.CalendarEvent, error)
	Delete(ctx context.Context, id int64) error
}
