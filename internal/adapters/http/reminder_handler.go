package http

import (
	"context"

	"github.com/voicedesk/core/internal/adapters/toolcall"
	"github.com/voicedesk/core/internal/infrastructure/logger"
	"github.com/voicedesk/core/internal/ports"
)

// ReminderHandler binds the reminder voice commands to the reminder service.
type ReminderHandler struct {
	reminderService ports.ReminderService
	logger          *logger.Logger
}

// NewReminderHandler creates a new reminder handler and registers its operations.
func NewReminderHandler(reminderService ports.ReminderService, dispatcher *toolcall.Dispatcher, logger *logger.Logger) *ReminderHandler {
	h := &ReminderHandler{
		reminderService: reminderService,
		logger:          logger,
	}

	dispatcher.Register("add_reminder", h.addReminder)
	dispatcher.Register("get_reminders", h.listReminders)
	dispatcher.Register("delete_reminder", h.deleteReminder)

	return h
}

func (h *ReminderHandler) addReminder(ctx context.Context, args toolcall.Args) (interface{}, error) {
	text, err := args.String("reminder_text")
	if err != nil {
		return nil, err
	}

	importance, err := args.String("importance")
	if err != nil {
		return nil, err
	}

	return h.reminderService.CreateReminder(ctx, ports.CreateReminderRequest{
		ReminderText: text,
		Importance:   importance,
	})
}

func (h *ReminderHandler) listReminders(ctx context.Context, args toolcall.Args) (interface{}, error) {
	return h.reminderService.ListReminders(ctx)
}

func (h *ReminderHandler) deleteReminder(ctx context.Context, args toolcall.Args) (interface{}, error) {
	id, err := args.ID("id")
	if err != nil {
		return nil, err
	}

	if err := h.reminderService.DeleteReminder(ctx, id); err != nil {
		return nil, err
	}

	return statusDeleted, nil
}
