package memory

import (
	"context"

	"projecthub/internal/domain"
	"projecthub/internal/domain/entities"
	"projecthub/internal/ports/output"
)

var _ output.ProjectInterestRepository = (*ProjectInterestRepository)(nil)

type ProjectInterestRepository struct {
	s *Store
}

func NewProjectInterestRepository(s *Store) *ProjectInterestRepository {
	return &ProjectInterestRepository{s: s}
}

// Create stores interest with a fresh id and timestamp. An empty status
// defaults to pending. Referenced ids are not checked here.
func (r *ProjectInterestRepository) Create(_ context.Context, interest *entities.ProjectInterest) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	interest.ID = s.nextID()
	interest.CreatedAt = s.now()
	if interest.Status == "" {
		interest.Status = domain.InterestStatusPending
	}
	s.interests[interest.ID] = cloneInterest(*interest)
	s.interestsByProject[interest.ProjectID] = append(s.interestsByProject[interest.ProjectID], interest.ID)
	s.interestsByGroup[interest.StudentGroupID] = append(s.interestsByGroup[interest.StudentGroupID], interest.ID)
	return nil
}

func (r *ProjectInterestRepository) FindByID(_ context.Context, id string) (*entities.ProjectInterest, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	i, ok := r.s.interests[id]
	if !ok {
		return nil, domain.ErrProjectInterestNotFound
	}
	i = cloneInterest(i)
	return &i, nil
}

func (r *ProjectInterestRepository) FindByProjectID(_ context.Context, projectID string) ([]entities.ProjectInterest, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.collectInterests(r.s.interestsByProject[projectID]), nil
}

func (r *ProjectInterestRepository) FindByStudentGroupID(_ context.Context, studentGroupID string) ([]entities.ProjectInterest, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.collectInterests(r.s.interestsByGroup[studentGroupID]), nil
}

func (r *ProjectInterestRepository) CountByProjectID(_ context.Context, projectID string) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return len(r.s.interestsByProject[projectID]), nil
}

func (r *ProjectInterestRepository) UpdateStatus(_ context.Context, id, status string) (*entities.ProjectInterest, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.interests[id]
	if !ok {
		return nil, domain.ErrProjectInterestNotFound
	}
	i.Status = status
	s.interests[id] = i
	i = cloneInterest(i)
	return &i, nil
}

func (s *Store) collectInterests(ids []string) []entities.ProjectInterest {
	out := make([]entities.ProjectInterest, 0, len(ids))
	for _, id := range ids {
		out = append(out, cloneInterest(s.interests[id]))
	}
	return out
}
