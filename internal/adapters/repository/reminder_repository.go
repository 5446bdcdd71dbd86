package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/voicedesk/core/internal/domain/entities"
	"github.com/voicedesk/core/internal/ports"
)

// ReminderRepositoryImpl implements the ReminderRepository interface.
type ReminderRepositoryImpl struct {
	db *sqlx.DB
}

// NewReminderRepository creates a new reminder repository.
func NewReminderRepository(db *sqlx.DB) ports.ReminderRepository {
	return &ReminderRepositoryImpl{db: db}
}

func (r *ReminderRepositoryImpl) Create(ctx context.Context, reminder *entities.Reminder) error {
	query := r.db.Rebind(`
		INSERT INTO reminders (reminder_text, importance, created_at)
		VALUES (?, ?, ?)
		RETURNING id`)

	err := r.db.QueryRowContext(ctx, query,
		reminder.ReminderText, reminder.Importance, reminder.CreatedAt,
	).Scan(&reminder.ID)
	if err != nil {
		return fmt.Errorf("create reminder: %w", err)
	}

	return nil
}

func (r *ReminderRepositoryImpl) List(ctx context.Context) ([]*entities.Reminder, error) {
	query := `
		SELECT id, reminder_text, importance, created_at
		FROM reminders
		ORDER BY id`

	reminders := []*entities.Reminder{}
	err := r.db.SelectContext(ctx, &reminders, query)
	if err != nil {
		return nil, fmt.Errorf("list reminders: %w", err)
	}

	return reminders, nil
}

func (r *ReminderRepositoryImpl) Delete(ctx context.Context, id int64) error {
	query := r.db.Rebind(`DELETE FROM reminders WHERE id = ?`)

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete reminder: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return entities.ErrReminderNotFound
	}

	return nil
}
