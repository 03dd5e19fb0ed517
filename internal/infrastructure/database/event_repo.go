package database

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"projecthub/internal/domain"
	"projecthub/internal/domain/entities"
	"projecthub/internal/ports/output"
)

var _ output.EventRepository = (*EventRepository)(nil)

type EventRepository struct {
	db DBTX
}

func NewEventRepository(db DBTX) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) Create(ctx context.Context, e *entities.Event) error {
	e.ID = uuid.NewString()
	if e.Status == "" {
		e.Status = domain.EventStatusUpcoming
	}
	err := r.db.QueryRow(ctx,
		`INSERT INTO events (id, title, description, date, start_time, end_time, location, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING created_at`,
		e.ID, e.Title, e.Description, e.Date, e.StartTime, e.EndTime, e.Location, e.Status,
	).Scan(&e.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}
	return nil
}

func (r *EventRepository) FindByID(ctx context.Context, id string) (*entities.Event, error) {
	e, err := scanEvent(r.db.QueryRow(ctx, `SELECT `+eventColumns+` FROM events WHERE id = $1`, id))
	if err != nil {
		return nil, notFound(err, domain.ErrEventNotFound)
	}
	return &e, nil
}

func (r *EventRepository) FindAll(ctx context.Context) ([]entities.Event, error) {
	rows, err := r.db.Query(ctx, `SELECT `+eventColumns+` FROM events ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	return collect(rows, scanEvent)
}

func (r *EventRepository) UpdateStatus(ctx context.Context, id, status string) (*entities.Event, error) {
	e, err := scanEvent(r.db.QueryRow(ctx,
		`UPDATE events SET status = $2 WHERE id = $1 RETURNING `+eventColumns, id, status))
	if err != nil {
		return nil, notFound(err, domain.ErrEventNotFound)
	}
	return &e, nil
}
