package output

import (
	"context"

	"projecthub/internal/domain/entities"
)

type EventRepository interface {
	Create(ctx context.Context, event *entities.Event) error
	FindByID(ctx context.Context, id string) (*entities.Event, error)
	// FindAll returns every event in insertion order.
	FindAll(ctx context.Context) ([]entities.Event, error)
	UpdateStatus(ctx context.Context, id, status string) (*entities.Event, error)
}
