package application

import (
	"context"
	"fmt"
	"slices"
	"time"

	"projecthub/internal/domain"
	"projecthub/internal/domain/entities"
	"projecthub/internal/ports/input"
	"projecthub/internal/ports/output"
)

var _ input.EventUseCase = (*EventService)(nil)

type EventService struct {
	eventRepo output.EventRepository
	now       func() time.Time
}

// NewEventService builds an EventService; now is the clock used to split
// upcoming events from past ones (time.Now when nil).
func NewEventService(eventRepo output.EventRepository, now func() time.Time) *EventService {
	if now == nil {
		now = time.Now
	}
	return &EventService{eventRepo: eventRepo, now: now}
}

func (s *EventService) CreateEvent(ctx context.Context, in input.NewEvent) (*entities.Event, error) {
	e := &entities.Event{
		Title:       in.Title,
		Description: in.Description,
		Date:        in.Date,
		StartTime:   in.StartTime,
		EndTime:     in.EndTime,
		Location:    in.Location,
		Status:      domain.EventStatusUpcoming,
	}
	if err := s.eventRepo.Create(ctx, e); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}
	return e, nil
}

func (s *EventService) GetEvent(ctx context.Context, id string) (*entities.Event, error) {
	return s.eventRepo.FindByID(ctx, id)
}

// ListEvents returns every event, latest date first.
func (s *EventService) ListEvents(ctx context.Context) ([]entities.Event, error) {
	events, err := s.eventRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("find events: %w", err)
	}
	slices.SortStableFunc(events, func(a, b entities.Event) int {
		return b.Date.Compare(a.Date)
	})
	return events, nil
}

// ListUpcomingEvents returns events dated strictly after now, earliest first.
func (s *EventService) ListUpcomingEvents(ctx context.Context) ([]entities.Event, error) {
	events, err := s.eventRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("find events: %w", err)
	}
	now := s.now()
	upcoming := make([]entities.Event, 0, len(events))
	for i := range events {
		if events[i].IsUpcoming(now) {
			upcoming = append(upcoming, events[i])
		}
	}
	slices.SortStableFunc(upcoming, func(a, b entities.Event) int {
		return a.Date.Compare(b.Date)
	})
	return upcoming, nil
}

func (s *EventService) CompletePastEvents(ctx context.Context) (int, error) {
	events, err := s.eventRepo.FindAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("find events: %w", err)
	}
	now := s.now()
	n := 0
	for _, e := range events {
		if e.Status != domain.EventStatusUpcoming || e.IsUpcoming(now) {
			continue
		}
		if _, err := s.eventRepo.UpdateStatus(ctx, e.ID, domain.EventStatusCompleted); err != nil {
			return n, fmt.Errorf("complete event %s: %w", e.ID, err)
		}
		n++
	}
	return n, nil
}
