package services

import (
	"context"
	"fmt"
	"time"

	"github.com/voicedesk/core/internal/domain/entities"
	"github.com/voicedesk/core/internal/infrastructure/logger"
	"github.com/voicedesk/core/internal/ports"
)

// ReminderServiceImpl handles reminder operations.
type ReminderServiceImpl struct {
	reminderRepo ports.ReminderRepository
	logger       *logger.Logger
}

// NewReminderService creates a new reminder service.
func NewReminderService(reminderRepo ports.ReminderRepository, logger *logger.Logger) ports.ReminderService {
	return &ReminderServiceImpl{
		reminderRepo: reminderRepo,
		logger:       logger,
	}
}

// CreateReminder creates a new reminder. Importance is stored as sent; the
// voice platform's labels are not constrained to an enumeration.
func (s *ReminderServiceImpl) CreateReminder(ctx context.Context, req ports.CreateReminderRequest) (*entities.Reminder, error) {
	reminder := &entities.Reminder{
		ReminderText: req.ReminderText,
		Importance:   req.Importance,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.reminderRepo.Create(ctx, reminder); err != nil {
		return nil, fmt.Errorf("failed to create reminder: %w", err)
	}

	s.logger.Infow("Reminder created", "reminder_id", reminder.ID, "importance", reminder.Importance)

	return reminder, nil
}

// ListReminders returns all reminders in insertion order.
func (s *ReminderServiceImpl) ListReminders(ctx context.Context) ([]*entities.Reminder, error) {
	reminders, err := s.reminderRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list reminders: %w", err)
	}

	return reminders, nil
}

// DeleteReminder removes a reminder by id.
func (s *ReminderServiceImpl) DeleteReminder(ctx context.Context, id int64) error {
	if err := s.reminderRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Infow("Reminder deleted", "reminder_id", id)

	return nil
}
