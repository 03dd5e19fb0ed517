package input

import (
	"context"

	"projecthub/internal/domain"
	"projecthub/internal/domain/entities"
)

type NewProject struct {
	EntrepreneurID string
	Title          string
	Description    string
	ProjectType    string
	BusinessArea   string
	Deadline       string
	Complexity     string
	Technologies   []string
}

type ProjectUseCase interface {
	ListProjects(ctx context.Context, filter domain.ProjectFilter, sortKey string) ([]entities.ProjectWithEntrepreneur, error)
	GetProjectDetails(ctx context.Context, id string) (*entities.ProjectDetails, error)
	CreateProject(ctx context.Context, in NewProject) (*entities.Project, error)
	UpdateProjectStatus(ctx context.Context, id, status string) (*entities.Project, error)
}
