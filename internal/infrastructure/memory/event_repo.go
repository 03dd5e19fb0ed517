package memory

import (
	"context"

	"projecthub/internal/domain"
	"projecthub/internal/domain/entities"
	"projecthub/internal/ports/output"
)

var _ output.EventRepository = (*EventRepository)(nil)

type EventRepository struct {
	s *Store
}

func NewEventRepository(s *Store) *EventRepository {
	return &EventRepository{s: s}
}

func (r *EventRepository) Create(_ context.Context, event *entities.Event) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	event.ID = s.nextID()
	event.CreatedAt = s.now()
	if event.Status == "" {
		event.Status = domain.EventStatusUpcoming
	}
	s.events[event.ID] = *event
	s.eventOrder = append(s.eventOrder, event.ID)
	return nil
}

func (r *EventRepository) FindByID(_ context.Context, id string) (*entities.Event, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	e, ok := r.s.events[id]
	if !ok {
		return nil, domain.ErrEventNotFound
	}
	return &e, nil
}

func (r *EventRepository) FindAll(_ context.Context) ([]entities.Event, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]entities.Event, 0, len(r.s.eventOrder))
	for _, id := range r.s.eventOrder {
		out = append(out, r.s.events[id])
	}
	return out, nil
}

func (r *EventRepository) UpdateStatus(_ context.Context, id, status string) (*entities.Event, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	e, ok := r.s.events[id]
	if !ok {
		return nil, domain.ErrEventNotFound
	}
	e.Status = status
	r.s.events[id] = e
	return &e, nil
}
