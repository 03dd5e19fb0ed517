package database

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"projecthub/internal/domain"
	"projecthub/internal/domain/entities"
	"projecthub/internal/ports/output"
)

var _ output.ProjectInterestRepository = (*ProjectInterestRepository)(nil)

type ProjectInterestRepository struct {
	db DBTX
}

func NewProjectInterestRepository(db DBTX) *ProjectInterestRepository {
	return &ProjectInterestRepository{db: db}
}

func (r *ProjectInterestRepository) Create(ctx context.Context, i *entities.ProjectInterest) error {
	i.ID = uuid.NewString()
	if i.Status == "" {
		i.Status = domain.InterestStatusPending
	}
	err := r.db.QueryRow(ctx,
		`INSERT INTO project_interests (id, project_id, student_group_id, message, status)
		 VALUES ($1, $2, $3, $4, $5) RETURNING created_at`,
		i.ID, i.ProjectID, i.StudentGroupID, i.Message, i.Status,
	).Scan(&i.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert project interest: %w", err)
	}
	return nil
}

func (r *ProjectInterestRepository) FindByID(ctx context.Context, id string) (*entities.ProjectInterest, error) {
	i, err := scanInterest(r.db.QueryRow(ctx, `SELECT `+interestColumns+` FROM project_interests WHERE id = $1`, id))
	if err != nil {
		return nil, notFound(err, domain.ErrProjectInterestNotFound)
	}
	return &i, nil
}

func (r *ProjectInterestRepository) FindByProjectID(ctx context.Context, projectID string) ([]entities.ProjectInterest, error) {
	rows, err := r.db.Query(ctx, `SELECT `+interestColumns+` FROM project_interests WHERE project_id = $1 ORDER BY seq`, projectID)
	if err != nil {
		return nil, fmt.Errorf("query interests by project: %w", err)
	}
	return collect(rows, scanInterest)
}

func (r *ProjectInterestRepository) FindByStudentGroupID(ctx context.Context, studentGroupID string) ([]entities.ProjectInterest, error) {
	rows, err := r.db.Query(ctx, `SELECT `+interestColumns+` FROM project_interests WHERE student_group_id = $1 ORDER BY seq`, studentGroupID)
	if err != nil {
		return nil, fmt.Errorf("query interests by student group: %w", err)
	}
	return collect(rows, scanInterest)
}

func (r *ProjectInterestRepository) CountByProjectID(ctx context.Context, projectID string) (int, error) {
	var n int
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM project_interests WHERE project_id = $1`, projectID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count interests: %w", err)
	}
	return n, nil
}

func (r *ProjectInterestRepository) UpdateStatus(ctx context.Context, id, status string) (*entities.ProjectInterest, error) {
	i, err := scanInterest(r.db.QueryRow(ctx,
		`UPDATE project_interests SET status = $2 WHERE id = $1 RETURNING `+interestColumns, id, status))
	if err != nil {
		return nil, notFound(err, domain.ErrProjectInterestNotFound)
	}
	return &i, nil
}
