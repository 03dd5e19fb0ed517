package input

import (
	"context"

	"projecthub/internal/domain/entities"
)

type NewProjectInterest struct {
	ProjectID      string
	StudentGroupID string
	Message        *string
}

type ProjectInterestUseCase interface {
	ExpressInterest(ctx context.Context, in NewProjectInterest) (*entities.ProjectInterest, error)
	GetInterest(ctx context.Context, id string) (*entities.ProjectInterest, error)
	GetInterestsByStudentGroup(ctx context.Context, studentGroupID string) ([]entities.ProjectInterestWithDetails, error)
	UpdateInterestStatus(ctx context.Context, id, status string) (*entities.ProjectInterest, error)
}
