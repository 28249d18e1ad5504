package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/eohue/ibookee-web-sub001/internal/app/models"
	"github.com/eohue/ibookee-web-sub001/internal/app/repositories"
	"github.com/eohue/ibookee-web-sub001/internal/pkg/apperrors"
)

// EventService defines the interface for event operations
type EventService interface {
	GetEvents(ctx context.Context, status models.EventStatus, page, size int) ([]*models.Event, int64, error)
	GetEventByID(ctx context.Context, id int64) (*models.Event, error)
	CreateEvent(ctx context.Context, event *models.Event) (*models.Event, error)
	UpdateEvent(ctx context.Context, event *models.Event) (*models.Event, error)
	DeleteEvent(ctx context.Context, id int64) error
}

type eventServiceImpl struct {
	eventRepo *repositories.EventRepository
}

// NewEventService creates a new event service instance
func NewEventService(eventRepo *repositories.EventRepository) EventService {
	return &eventServiceImpl{eventRepo: eventRepo}
}

func validateEventStatus(status models.EventStatus) error {
	switch status {
	case models.EventUpcoming, models.EventOngoing, models.EventCompleted:
		return nil
	default:
		return fmt.Errorf("%w: unknown event status %q", apperrors.ErrValidationFailed, status)
	}
}

func (s *eventServiceImpl) validateEvent(event *models.Event) error {
	if strings.TrimSpace(event.Title) == "" {
		return fmt.Errorf("%w: title cannot be empty", apperrors.ErrValidationFailed)
	}
	return validateEventStatus(event.Status)
}

// GetEvents lists events, optionally narrowed to a status. An empty status
// returns all events.
func (s *eventServiceImpl) GetEvents(ctx context.Context, status models.EventStatus, page, size int) ([]*models.Event, int64, error) {
	if status != "" {
		if err := validateEventStatus(status); err != nil {
			return nil, 0, err
		}
	}

	offset, limit := calculateOffsetLimit(page, size)

	events, err := s.eventRepo.GetEvents(ctx, status, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing events: %w", err)
	}

	total, err := s.eventRepo.CountEvents(ctx, status)
	if err != nil {
		return nil, 0, fmt.Errorf("error counting events: %w", err)
	}

	return events, total, nil
}

// GetEventByID retrieves one event
func (s *eventServiceImpl) GetEventByID(ctx context.Context, id int64) (*models.Event, error) {
	event, err := s.eventRepo.GetEventByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrEventNotFound) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, fmt.Errorf("error getting event: %w", err)
	}
	return event, nil
}

// CreateEvent stores a new event
func (s *eventServiceImpl) CreateEvent(ctx context.Context, event *models.Event) (*models.Event, error) {
	if err := s.validateEvent(event); err != nil {
		return nil, err
	}

	id, err := s.eventRepo.CreateEvent(ctx, event)
	if err != nil {
		return nil, fmt.Errorf("error creating event: %w", err)
	}

	return s.GetEventByID(ctx, id)
}

// UpdateEvent replaces an existing event
func (s *eventServiceImpl) UpdateEvent(ctx context.Context, event *models.Event) (*models.Event, error) {
	if err := s.validateEvent(event); err != nil {
		return nil, err
	}

	if err := s.eventRepo.UpdateEvent(ctx, event); err != nil {
		if errors.Is(err, repositories.ErrEventNotFound) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, fmt.Errorf("error updating event: %w", err)
	}

	return s.GetEventByID(ctx, event.ID)
}

// DeleteEvent removes an event
func (s *eventServiceImpl) DeleteEvent(ctx context.Context, id int64) error {
	if err := s.eventRepo.DeleteEvent(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrEventNotFound) {
			return apperrors.ErrEventNotFound
		}
		return fmt.Errorf("error deleting event: %w", err)
	}
	return nil
}
