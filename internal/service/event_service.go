package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/campusmesh/portal-api/internal/models"
	"github.com/campusmesh/portal-api/internal/repository"
)

// EventService manages the campus event schedule.
type EventService interface {
	Events(ctx context.Context) ([]models.Event, error)
	AddEvent(ctx context.Context, event models.Event) (models.Event, error)
	DeleteEvent(ctx context.Context, id int) error
}

type eventService struct {
	catalogRepo repository.CatalogRepository
	logger      zerolog.Logger
}

// NewEventService constructs the event service.
func NewEventService(catalogRepo repository.CatalogRepository, logger zerolog.Logger) EventService {
	return &eventService{
		catalogRepo: catalogRepo,
		logger:      logger.With().Str("component", "event_service").Logger(),
	}
}

func (s *eventService) Events(ctx context.Context) ([]models.Event, error) {
	events, _, err := s.catalogRepo.Events(ctx)
	return events, err
}

func (s *eventService) AddEvent(ctx context.Context, event models.Event) (models.Event, error) {
	event.Title = strings.TrimSpace(event.Title)
	event.Description = strings.TrimSpace(event.Description)
	event.Type = strings.TrimSpace(event.Type)
	if event.Title == "" || event.Date == "" {
		return models.Event{}, ErrMissingFields
	}
	if event.Type == "" {
		event.Type = "Event"
	}

	events, _, err := s.catalogRepo.Events(ctx)
	if err != nil {
		return models.Event{}, err
	}

	event.ID = nextEventID(events)

	if err := s.catalogRepo.SaveEvents(ctx, append(events, event)); err != nil {
		return models.Event{}, err
	}

	s.logger.Info().Int("id", event.ID).Str("title", event.Title).Msg("event added")

	return event, nil
}

func (s *eventService) DeleteEvent(ctx context.Context, id int) error {
	events, _, err := s.catalogRepo.Events(ctx)
	if err != nil {
		return err
	}

	kept := events[:0]
	for _, event := range events {
		if event.ID != id {
			kept = append(kept, event)
		}
	}

	return s.catalogRepo.SaveEvents(ctx, kept)
}

// nextEventID allocates max(existing ids)+1, or 1 for an empty schedule.
func nextEventID(events []models.Event) int {
	next := 1
	for _, event := range events {
		if event.ID >= next {
			next = event.ID + 1
		}
	}
	return next
}
