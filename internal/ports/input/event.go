package input

import (
	"context"
	"time"

	"projecthub/internal/domain/entities"
)

type NewEvent struct {
	Title       string
	Description string
	Date        time.Time
	StartTime   string
	EndTime     string
	Location    string
}

type EventUseCase interface {
	CreateEvent(ctx context.Context, in NewEvent) (*entities.Event, error)
	GetEvent(ctx context.Context, id string) (*entities.Event, error)
	ListEvents(ctx context.Context) ([]entities.Event, error)
	ListUpcomingEvents(ctx context.Context) ([]entities.Event, error)
	// CompletePastEvents marks every upcoming event whose date has passed as
	// completed and returns how many changed.
	CompletePastEvents(ctx context.Context) (int, error)
}
