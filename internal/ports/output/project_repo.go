package output

import (
	"context"

	"projecthub/internal/domain/entities"
)

type ProjectRepository interface {
	Create(ctx context.Context, project *entities.Project) error
	FindByID(ctx context.Context, id string) (*entities.Project, error)
	// FindAll returns every project in insertion order.
	FindAll(ctx context.Context) ([]entities.Project, error)
	UpdateStatus(ctx context.Context, id, status string) (*entities.Project, error)
}

type ProjectInterestRepository interface {
	Create(ctx context.Context, interest *entities.ProjectInterest) error
	FindByID(ctx context.Context, id string) (*entities.ProjectInterest, error)
	FindByProjectID(ctx context.Context, projectID string) ([]entities.ProjectInterest, error)
	FindByStudentGroupID(ctx context.Context, studentGroupID string) ([]entities.ProjectInterest, error)
	CountByProjectID(ctx context.Context, projectID string) (int, error)
	UpdateStatus(ctx context.Context, id, status string) (*entities.ProjectInterest, error)
}
