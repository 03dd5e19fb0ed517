package application

import (
	"context"
	"fmt"
	"slices"

	"projecthub/internal/domain"
	"projecthub/internal/domain/entities"
	"projecthub/internal/ports/input"
	"projecthub/internal/ports/output"
)

var _ input.ProjectUseCase = (*ProjectService)(nil)

type ProjectService struct {
	projectRepo      output.ProjectRepository
	entrepreneurRepo output.EntrepreneurRepository
	resolver         *Resolver
}

func NewProjectService(
	projectRepo output.ProjectRepository,
	entrepreneurRepo output.EntrepreneurRepository,
	resolver *Resolver,
) *ProjectService {
	return &ProjectService{
		projectRepo:      projectRepo,
		entrepreneurRepo: entrepreneurRepo,
		resolver:         resolver,
	}
}

// ListProjects filters every project, joins each with its entrepreneur and
// interest count, then orders the result by sortKey ("" means recent).
func (s *ProjectService) ListProjects(ctx context.Context, filter domain.ProjectFilter, sortKey string) ([]entities.ProjectWithEntrepreneur, error) {
	key, err := domain.ParseSort(sortKey)
	if err != nil {
		return nil, err
	}
	all, err := s.projectRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("find projects: %w", err)
	}
	matched := domain.FilterProjects(all, filter)
	joined := make([]entities.ProjectWithEntrepreneur, 0, len(matched))
	for _, p := range matched {
		pw, err := s.resolver.WithEntrepreneur(ctx, p)
		if err != nil {
			return nil, err
		}
		joined = append(joined, pw)
	}
	return domain.SortProjects(joined, key), nil
}

func (s *ProjectService) GetProjectDetails(ctx context.Context, id string) (*entities.ProjectDetails, error) {
	p, err := s.projectRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.resolver.Details(ctx, *p)
}

func (s *ProjectService) CreateProject(ctx context.Context, in input.NewProject) (*entities.Project, error) {
	if _, err := s.entrepreneurRepo.FindByID(ctx, in.EntrepreneurID); err != nil {
		if domain.IsNotFound(err) {
			return nil, &domain.ReferenceError{Field: "entrepreneurId", ID: in.EntrepreneurID, Err: err}
		}
		return nil, fmt.Errorf("find entrepreneur: %w", err)
	}
	p := &entities.Project{
		EntrepreneurID: in.EntrepreneurID,
		Title:          in.Title,
		Description:    in.Description,
		ProjectType:    in.ProjectType,
		BusinessArea:   in.BusinessArea,
		Deadline:       in.Deadline,
		Complexity:     in.Complexity,
		Technologies:   slices.Clone(in.Technologies),
		Status:         domain.ProjectStatusAvailable,
	}
	if err := s.projectRepo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}
	return p, nil
}

func (s *ProjectService) UpdateProjectStatus(ctx context.Context, id, status string) (*entities.Project, error) {
	if !domain.ValidProjectStatus(status) {
		return nil, domain.ErrInvalidStatus
	}
	return s.projectRepo.UpdateStatus(ctx, id, status)
}
