package database

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"projecthub/internal/domain"
	"projecthub/internal/domain/entities"
	"projecthub/internal/ports/output"
)

var _ output.ProjectRepository = (*ProjectRepository)(nil)

type ProjectRepository struct {
	db DBTX
}

func NewProjectRepository(db DBTX) *ProjectRepository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) Create(ctx context.Context, p *entities.Project) error {
	p.ID = uuid.NewString()
	if p.Status == "" {
		p.Status = domain.ProjectStatusAvailable
	}
	err := r.db.QueryRow(ctx,
		`INSERT INTO projects (id, entrepreneur_id, title, description, project_type, business_area, deadline, complexity, technologies, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING created_at`,
		p.ID, p.EntrepreneurID, p.Title, p.Description, p.ProjectType, p.BusinessArea,
		p.Deadline, p.Complexity, nonNil(p.Technologies), p.Status,
	).Scan(&p.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert project: %w", err)
	}
	return nil
}

func (r *ProjectRepository) FindByID(ctx context.Context, id string) (*entities.Project, error) {
	p, err := scanProject(r.db.QueryRow(ctx, `SELECT `+projectColumns+` FROM projects WHERE id = $1`, id))
	if err != nil {
		return nil, notFound(err, domain.ErrProjectNotFound)
	}
	return &p, nil
}

func (r *ProjectRepository) FindAll(ctx context.Context) ([]entities.Project, error) {
	rows, err := r.db.Query(ctx, `SELECT `+projectColumns+` FROM projects ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("query projects: %w", err)
	}
	return collect(rows, scanProject)
}

func (r *ProjectRepository) UpdateStatus(ctx context.Context, id, status string) (*entities.Project, error) {
	p, err := scanProject(r.db.QueryRow(ctx,
		`UPDATE projects SET status = $2 WHERE id = $1 RETURNING `+projectColumns, id, status))
	if err != nil {
		return nil, notFound(err, domain.ErrProjectNotFound)
	}
	return &p, nil
}
