package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/voicedesk/core/internal/domain/entities"
	"github.com/voicedesk/core/internal/ports"
)

// CalendarRepositoryImpl implements the CalendarRepository interface.
type CalendarRepositoryImpl struct {
	db *sqlx.DB
}

// NewCalendarRepository creates a new calendar event repository.
func NewCalendarRepository(db *sqlx.DB) ports.CalendarRepository {
	return &CalendarRepositoryImpl{db: db}
}

func (r *CalendarRepositoryImpl) Create(ctx context.Context, event *entities.CalendarEvent) error {
	query := r.db.Rebind(`
		INSERT INTO calendar_events (title, description, event_from, event_to, created_at)
		VALUES (?, ?, ?, ?, ?)
		RETURNING id`)

	err := r.db.QueryRowContext(ctx, query,
		event.Title, event.Description, event.EventFrom, event.EventTo, event.CreatedAt,
	).Scan(&event.ID)
	if err != nil {
		return fmt.Errorf("create calendar event: %w", err)
	}

	return nil
}

func (r *CalendarRepositoryImpl) List(ctx context.Context) ([]*entities.CalendarEvent, error) {
	query := `
		SELECT id, title, description, event_from, event_to, created_at
		FROM calendar_events
		ORDER BY id`

	events := []*entities.CalendarEvent{}
	err := r.db.SelectContext(ctx, &events, query)
	if err != nil {
		return nil, fmt.Errorf("list calendar events: %w", err)
	}

	return events, nil
}

func (r *CalendarRepositoryImpl) Delete(ctx context.Context, id int64) error {
	query := r.db.Rebind(`DELETE FROM calendar_events WHERE id = ?`)

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete calendar event: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return entities.ErrEventNotFound
	}

	return nil
}
