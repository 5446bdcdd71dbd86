package entities

import (
	"errors"
	"time"
)

// Common errors
var (
	ErrTodoNotFound     = errors.New("todo not found")
	ErrReminderNotFound = errors.New("reminder not found")
	ErrEventNotFound    = errors.New("calendar event not found")
)

// Todo represents a single todo item.
type Todo struct {
	ID          int64     `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description *string   `json:"description" db:"description"`
	Completed   bool      `json:"completed" db:"completed"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// Reminder represents a reminder note with a free-text importance label.
// Importance is whatever the voice platform sends (high/medium/low are
// common but nothing is enforced).
type Reminder struct {
	ID           int64     `json:"id" db:"id"`
	ReminderText string    `json:"reminder_text" db:"reminder_text"`
	Importance   string    `json:"importance" db:"importance"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// CalendarEvent represents a calendar entry. EventFrom and EventTo are not
// required to be ordered; the platform may send them either way around.
type CalendarEvent struct {
	ID          int64     `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	EventFrom   time.Time `json:"event_from" db:"event_from"`
	EventTo     time.Time `json:"event_to" db:"event_to"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// Complete marks the todo done. Completing an already completed todo is a
// no-op, so the operation stays idempotent.
func (t *Todo) Complete() {
	t.Completed = true
}

// IsNotFound reports whether err is one of the entity not-found errors.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrTodoNotFound) ||
		errors.Is(err, ErrReminderNotFound) ||
		errors.Is(err, ErrEventNotFound)
}
