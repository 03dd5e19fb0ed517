package application

import (
	"context"
	"fmt"

	"projecthub/internal/domain"
	"projecthub/internal/domain/entities"
	"projecthub/internal/ports/output"
)

// Resolver assembles composite views by following foreign keys. A key that
// points at nothing is reported as domain.ErrDanglingReference; records are
// never dropped from a result.
type Resolver struct {
	entrepreneurRepo output.EntrepreneurRepository
	groupRepo        output.StudentGroupRepository
	projectRepo      output.ProjectRepository
	interestRepo     output.ProjectInterestRepository
}

func NewResolver(
	entrepreneurRepo output.EntrepreneurRepository,
	groupRepo output.StudentGroupRepository,
	projectRepo output.ProjectRepository,
	interestRepo output.ProjectInterestRepository,
) *Resolver {
	return &Resolver{
		entrepreneurRepo: entrepreneurRepo,
		groupRepo:        groupRepo,
		projectRepo:      projectRepo,
		interestRepo:     interestRepo,
	}
}

func (r *Resolver) entrepreneur(ctx context.Context, id string) (*entities.Entrepreneur, error) {
	e, err := r.entrepreneurRepo.FindByID(ctx, id)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, domain.Dangling("entrepreneur", id)
		}
		return nil, fmt.Errorf("resolve entrepreneur: %w", err)
	}
	return e, nil
}

// WithEntrepreneur joins p with its owner and interest count.
func (r *Resolver) WithEntrepreneur(ctx context.Context, p entities.Project) (entities.ProjectWithEntrepreneur, error) {
	e, err := r.entrepreneur(ctx, p.EntrepreneurID)
	if err != nil {
		return entities.ProjectWithEntrepreneur{}, err
	}
	count, err := r.interestRepo.CountByProjectID(ctx, p.ID)
	if err != nil {
		return entities.ProjectWithEntrepreneur{}, fmt.Errorf("count interests: %w", err)
	}
	return entities.ProjectWithEntrepreneur{Project: p, Entrepreneur: *e, InterestCount: count}, nil
}

// Details joins p with its owner and every interest registered against it.
func (r *Resolver) Details(ctx context.Context, p entities.Project) (*entities.ProjectDetails, error) {
	e, err := r.entrepreneur(ctx, p.EntrepreneurID)
	if err != nil {
		return nil, err
	}
	interests, err := r.interestRepo.FindByProjectID(ctx, p.ID)
	if err != nil {
		return nil, fmt.Errorf("find interests: %w", err)
	}
	detailed, err := r.InterestsWithDetails(ctx, interests)
	if err != nil {
		return nil, err
	}
	return &entities.ProjectDetails{Project: p, Entrepreneur: *e, Interests: detailed}, nil
}

// InterestWithDetails joins i with its project and student group.
func (r *Resolver) InterestWithDetails(ctx context.Context, i entities.ProjectInterest) (entities.ProjectInterestWithDetails, error) {
	p, err := r.projectRepo.FindByID(ctx, i.ProjectID)
	if err != nil {
		if domain.IsNotFound(err) {
			return entities.ProjectInterestWithDetails{}, domain.Dangling("project", i.ProjectID)
		}
		return entities.ProjectInterestWithDetails{}, fmt.Errorf("resolve project: %w", err)
	}
	g, err := r.groupRepo.FindByID(ctx, i.StudentGroupID)
	if err != nil {
		if domain.IsNotFound(err) {
			return entities.ProjectInterestWithDetails{}, domain.Dangling("student group", i.StudentGroupID)
		}
		return entities.ProjectInterestWithDetails{}, fmt.Errorf("resolve student group: %w", err)
	}
	return entities.ProjectInterestWithDetails{ProjectInterest: i, Project: *p, StudentGroup: *g}, nil
}

func (r *Resolver) InterestsWithDetails(ctx context.Context, interests []entities.ProjectInterest) ([]entities.ProjectInterestWithDetails, error) {
	out := make([]entities.ProjectInterestWithDetails, 0, len(interests))
	for _, i := range interests {
		d, err := r.InterestWithDetails(ctx, i)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}
