package memory

import (
	"context"

	"projecthub/internal/domain"
	"projecthub/internal/domain/entities"
	"projecthub/internal/ports/output"
)

var _ output.ProjectRepository = (*ProjectRepository)(nil)

type ProjectRepository struct {
	s *Store
}

func NewProjectRepository(s *Store) *ProjectRepository {
	return &ProjectRepository{s: s}
}

// Create stores project with a fresh id and timestamp. An empty status
// defaults to available.
func (r *ProjectRepository) Create(_ context.Context, project *entities.Project) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	project.ID = s.nextID()
	project.CreatedAt = s.now()
	if project.Status == "" {
		project.Status = domain.ProjectStatusAvailable
	}
	s.projects[project.ID] = cloneProject(*project)
	s.projectOrder = append(s.projectOrder, project.ID)
	return nil
}

func (r *ProjectRepository) FindByID(_ context.Context, id string) (*entities.Project, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	p, ok := r.s.projects[id]
	if !ok {
		return nil, domain.ErrProjectNotFound
	}
	p = cloneProject(p)
	return &p, nil
}

func (r *ProjectRepository) FindAll(_ context.Context) ([]entities.Project, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]entities.Project, 0, len(r.s.projectOrder))
	for _, id := range r.s.projectOrder {
		out = append(out, cloneProject(r.s.projects[id]))
	}
	return out, nil
}

func (r *ProjectRepository) UpdateStatus(_ context.Context, id, status string) (*entities.Project, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.projects[id]
	if !ok {
		return nil, domain.ErrProjectNotFound
	}
	p.Status = status
	s.projects[id] = p
	p = cloneProject(p)
	return &p, nil
}
