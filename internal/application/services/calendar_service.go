package services

import (
	"context"
	"fmt"
	"time"

	"github.com/voicedesk/core/internal/domain/entities"
	"github.com/voicedesk/core/internal/infrastructure/logger"
	"github.com/voicedesk/core/internal/ports"
)

// CalendarServiceImpl handles calendar event operations.
type CalendarServiceImpl struct {
	calendarRepo ports.CalendarRepository
	logger       *logger.Logger
}

// NewCalendarService creates a new calendar service.
func NewCalendarService(calendarRepo ports.CalendarRepository, logger *logger.Logger) ports.CalendarService {
	return &CalendarServiceImpl{
		calendarRepo: calendarRepo,
		logger:       logger,
	}
}

// CreateEvent creates a new calendar event. No ordering is enforced between
// EventFrom and EventTo.
func (s *CalendarServiceImpl) CreateEvent(ctx context.Context, req ports.CreateEventRequest) (*entities.CalendarEvent, error) {
	event := &entities.CalendarEvent{
		Title:       req.Title,
		Description: req.Description,
		EventFrom:   req.EventFrom,
		EventTo:     req.EventTo,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.calendarRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to create calendar event: %w", err)
	}

	s.logger.Infow("Calendar event created", "event_id", event.ID, "title", event.Title)

	return event, nil
}

// ListEvents returns all calendar events in insertion order.
func (s *CalendarServiceImpl) ListEvents(ctx context.Context) ([]*entities.CalendarEvent, error) {
	events, err := s.calendarRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list calendar events: %w", err)
	}

	return events, nil
}

// DeleteEvent removes a calendar event by id.
func (s *CalendarServiceImpl) DeleteEvent(ctx context.Context, id int64) error {
	if err := s.calendarRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Infow("Calendar event deleted", "event_id", id)

	return nil
}
