package repository

import (
	"context"
	"sync"

	"github.com/voicedesk/core/internal/domain/entities"
)

// MemoryStore is an in-memory implementation of all three repositories,
// used by tests and local experiments. Records keep insertion order.
type MemoryStore struct {
	mu       sync.Mutex
	nextID   int64
	todos    []*entities.Todo
	reminder []*entities.Reminder
	events   []*entities.CalendarEvent
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{nextID: 1}
}

func (s *MemoryStore) allocID() int64 {
	id := s.nextID
	s.nextID++
	return id
}

// Todo operations

func (s *MemoryStore) Create(ctx context.Context, todo *entities.Todo) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	todo.ID = s.allocID()
	copied := *todo
	s.todos = append(s.todos, &copied)
	return nil
}

func (s *MemoryStore) GetByID(ctx context.Context, id int64) (*entities.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range s.todos {
		if t.ID == id {
			copied := *t
			return &copied, nil
		}
	}
	return nil, entities.ErrTodoNotFound
}

func (s *MemoryStore) List(ctx context.Context) ([]*entities.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*entities.Todo, 0, len(s.todos))
	for _, t := range s.todos {
		copied := *t
		out = append(out, &copied)
	}
	return out, nil
}

func (s *MemoryStore) Update(ctx context.Context, todo *entities.Todo) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, t := range s.todos {
		if t.ID == todo.ID {
			copied := *todo
			s.todos[i] = &copied
			return nil
		}
	}
	return entities.ErrTodoNotFound
}

func (s *MemoryStore) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, t := range s.todos {
		if t.ID == id {
			s.todos = append(s.todos[:i], s.todos[i+1:]...)
			return nil
		}
	}
	return entities.ErrTodoNotFound
}

// Reminders returns a view of the store implementing ReminderRepository.
func (s *MemoryStore) Reminders() *MemoryReminders { return &MemoryReminders{s} }

// Calendar returns a view of the store implementing CalendarRepository.
func (s *MemoryStore) Calendar() *MemoryCalendar { return &MemoryCalendar{s} }

// MemoryReminders is the reminder view over a MemoryStore.
type MemoryReminders struct {
	s *MemoryStore
}

func (r *MemoryReminders) Create(ctx context.Context, reminder *entities.Reminder) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	reminder.ID = r.s.allocID()
	copied := *reminder
	r.s.reminder = append(r.s.reminder, &copied)
	return nil
}

func (r *MemoryReminders) List(ctx context.Context) ([]*entities.Reminder, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := make([]*entities.Reminder, 0, len(r.s.reminder))
	for _, rem := range r.s.reminder {
		copied := *rem
		out = append(out, &copied)
	}
	return out, nil
}

func (r *MemoryReminders) Delete(ctx context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i, rem := range r.s.reminder {
		if rem.ID == id {
			r.s.reminder = append(r.s.reminder[:i], r.s.reminder[i+1:]...)
			return nil
		}
	}
	return entities.ErrReminderNotFound
}

// MemoryCalendar is the calendar view over a MemoryStore.
type MemoryCalendar struct {
	s *MemoryStore
}

func (c *MemoryCalendar) Create(ctx context.Context, event *entities.CalendarEvent) error {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()

	event.ID = c.s.allocID()
	copied := *event
	c.s.events = append(c.s.events, &copied)
	return nil
}

func (c *MemoryCalendar) List(ctx context.Context) ([]*entities.CalendarEvent, error) {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()

	out := make([]*entities.CalendarEvent, 0, len(c.s.events))
	for _, ev := range c.s.events {
		copied := *ev
		out = append(out, &copied)
	}
	return out, nil
}

func (c *MemoryCalendar) Delete(ctx context.Context, id int64) error {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()

	for i, ev := range c.s.events {
		if ev.ID == id {
			c.s.events = append(c.s.events[:i], c.s.events[i+1:]...)
			return nil
		}
	}
	return entities.ErrEventNotFound
}
