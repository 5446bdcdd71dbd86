package http

import (
	"context"

	"github.com/voicedesk/core/internal/adapters/toolcall"
	"github.com/voicedesk/core/internal/infrastructure/logger"
	"github.com/voicedesk/core/internal/ports"
)

// CalendarHandler binds the calendar voice commands to the calendar service.
type CalendarHandler struct {
	calendarService ports.CalendarService
	logger          *logger.Logger
}

// NewCalendarHandler creates a new calendar handler and registers its operations.
func NewCalendarHandler(calendarService ports.CalendarService, dispatcher *toolcall.Dispatcher, logger *logger.Logger) *CalendarHandler {
	h := &CalendarHandler{
		calendarService: calendarService,
		logger:          logger,
	}

	dispatcher.Register("add_calendar_entry", h.addEntry)
	dispatcher.Register("get_calendar_entries", h.listEntries)
	dispatcher.Register("delete_calendar_entry", h.deleteEntry)

	return h
}

func (h *CalendarHandler) addEntry(ctx context.Context, args toolcall.Args) (interface{}, error) {
	title, err := args.String("title")
	if err != nil {
		return nil, err
	}

	description, err := args.String("description")
	if err != nil {
		return nil, err
	}

	eventFrom, err := args.Timestamp("event_from")
	if err != nil {
		return nil, err
	}

	eventTo, err := args.Timestamp("event_to")
	if err != nil {
		return nil, err
	}

	// event_from/event_to ordering is deliberately not checked.
	return h.calendarService.CreateEvent(ctx, ports.CreateEventRequest{
		Title:       title,
		Description: description,
		EventFrom:   eventFrom,
		EventTo:     eventTo,
	})
}

func (h *CalendarHandler) listEntries(ctx context.Context, args toolcall.Args) (interface{}, error) {
	return h.calendarService.ListEvents(ctx)
}

func (h *CalendarHandler) deleteEntry(ctx context.Context, args toolcall.Args) (interface{}, error) {
	id, err := args.ID("id")
	if err != nil {
		return nil, err
	}

	if err := h.calendarService.DeleteEvent(ctx, id); err != nil {
		return nil, err
	}

	return statusDeleted, nil
}
