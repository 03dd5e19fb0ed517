package application

import (
	"context"
	"fmt"

	"projecthub/internal/domain"
	"projecthub/internal/domain/entities"
	"projecthub/internal/ports/input"
	"projecthub/internal/ports/output"
)

var _ input.ProjectInterestUseCase = (*ProjectInterestService)(nil)

type ProjectInterestService struct {
	interestRepo output.ProjectInterestRepository
	projectRepo  output.ProjectRepository
	groupRepo    output.StudentGroupRepository
	resolver     *Resolver
}

func NewProjectInterestService(
	interestRepo output.ProjectInterestRepository,
	projectRepo output.ProjectRepository,
	groupRepo output.StudentGroupRepository,
	resolver *Resolver,
) *ProjectInterestService {
	return &ProjectInterestService{
		interestRepo: interestRepo,
		projectRepo:  projectRepo,
		groupRepo:    groupRepo,
		resolver:     resolver,
	}
}

func (s *ProjectInterestService) ExpressInterest(ctx context.Context, in input.NewProjectInterest) (*entities.ProjectInterest, error) {
	if _, err := s.projectRepo.FindByID(ctx, in.ProjectID); err != nil {
		if domain.IsNotFound(err) {
			return nil, &domain.ReferenceError{Field: "projectId", ID: in.ProjectID, Err: err}
		}
		return nil, fmt.Errorf("find project: %w", err)
	}
	if _, err := s.groupRepo.FindByID(ctx, in.StudentGroupID); err != nil {
		if domain.IsNotFound(err) {
			return nil, &domain.ReferenceError{Field: "studentGroupId", ID: in.StudentGroupID, Err: err}
		}
		return nil, fmt.Errorf("find student group: %w", err)
	}
	interest := &entities.ProjectInterest{
		ProjectID:      in.ProjectID,
		StudentGroupID: in.StudentGroupID,
		Message:        in.Message,
		Status:         domain.InterestStatusPending,
	}
	if err := s.interestRepo.Create(ctx, interest); err != nil {
		return nil, fmt.Errorf("create project interest: %w", err)
	}
	return interest, nil
}

func (s *ProjectInterestService) GetInterest(ctx context.Context, id string) (*entities.ProjectInterest, error) {
	return s.interestRepo.FindByID(ctx, id)
}

// GetInterestsByStudentGroup lists a group's interests with their project and
// group attached. An unknown group is reported as not found.
func (s *ProjectInterestService) GetInterestsByStudentGroup(ctx context.Context, studentGroupID string) ([]entities.ProjectInterestWithDetails, error) {
	if _, err := s.groupRepo.FindByID(ctx, studentGroupID); err != nil {
		return nil, err
	}
	interests, err := s.interestRepo.FindByStudentGroupID(ctx, studentGroupID)
	if err != nil {
		return nil, fmt.Errorf("find interests: %w", err)
	}
	return s.resolver.InterestsWithDetails(ctx, interests)
}

func (s *ProjectInterestService) UpdateInterestStatus(ctx context.Context, id, status string) (*entities.ProjectInterest, error) {
	if !domain.ValidInterestStatus(status) {
		return nil, domain.ErrInvalidStatus
	}
	return s.interestRepo.UpdateStatus(ctx, id, status)
}
