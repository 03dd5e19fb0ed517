package memory

import (
	"context"

	"projecthub/internal/domain"
	"projecthub/internal/domain/entities"
	"projecthub/internal/ports/output"
)

var (
	_ output.AccountRepository      = (*AccountRepository)(nil)
	_ output.UserRepository         = (*UserRepository)(nil)
	_ output.EntrepreneurRepository = (*EntrepreneurRepository)(nil)
	_ output.StudentGroupRepository = (*StudentGroupRepository)(nil)
)

type AccountRepository struct {
	s *Store
}

func NewAccountRepository(s *Store) *AccountRepository {
	return &AccountRepository{s: s}
}

// insertUser stamps and stores user. Callers hold s.mu for writing.
func (s *Store) insertUser(user *entities.User) error {
	if _, taken := s.userByName[user.Username]; taken {
		return domain.ErrUsernameTaken
	}
	user.ID = s.nextID()
	user.CreatedAt = s.now()
	s.users[user.ID] = *user
	s.userByName[user.Username] = user.ID
	return nil
}

func (r *AccountRepository) CreateEntrepreneurAccount(_ context.Context, user *entities.User, entrepreneur *entities.Entrepreneur) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.insertUser(user); err != nil {
		return err
	}
	entrepreneur.ID = s.nextID()
	entrepreneur.UserID = user.ID
	entrepreneur.CreatedAt = user.CreatedAt
	s.entrepreneurs[entrepreneur.ID] = *entrepreneur
	s.entrepreneurByUser[user.ID] = entrepreneur.ID
	return nil
}

func (r *AccountRepository) CreateStudentGroupAccount(_ context.Context, user *entities.User, group *entities.StudentGroup) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.insertUser(user); err != nil {
		return err
	}
	group.ID = s.nextID()
	group.UserID = user.ID
	group.CreatedAt = user.CreatedAt
	s.groups[group.ID] = cloneGroup(*group)
	s.groupByUser[user.ID] = group.ID
	return nil
}

type UserRepository struct {
	s *Store
}

func NewUserRepository(s *Store) *UserRepository {
	return &UserRepository{s: s}
}

func (r *UserRepository) FindByID(_ context.Context, id string) (*entities.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &u, nil
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*entities.User, error) {
	r.s.mu.RLock()
	id, ok := r.s.userByName[username]
	r.s.mu.RUnlock()
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return r.FindByID(ctx, id)
}

type EntrepreneurRepository struct {
	s *Store
}

func NewEntrepreneurRepository(s *Store) *EntrepreneurRepository {
	return &EntrepreneurRepository{s: s}
}

func (r *EntrepreneurRepository) FindByID(_ context.Context, id string) (*entities.Entrepreneur, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	e, ok := r.s.entrepreneurs[id]
	if !ok {
		return nil, domain.ErrEntrepreneurNotFound
	}
	return &e, nil
}

func (r *EntrepreneurRepository) FindByUserID(_ context.Context, userID string) (*entities.Entrepreneur, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	e, ok := r.s.entrepreneurs[r.s.entrepreneurByUser[userID]]
	if !ok {
		return nil, domain.ErrEntrepreneurNotFound
	}
	return &e, nil
}

type StudentGroupRepository struct {
	s *Store
}

func NewStudentGroupRepository(s *Store) *StudentGroupRepository {
	return &StudentGroupRepository{s: s}
}

func (r *StudentGroupRepository) FindByID(_ context.Context, id string) (*entities.StudentGroup, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	g, ok := r.s.groups[id]
	if !ok {
		return nil, domain.ErrStudentGroupNotFound
	}
	g = cloneGroup(g)
	return &g, nil
}

func (r *StudentGroupRepository) FindByUserID(_ context.Context, userID string) (*entities.StudentGroup, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	g, ok := r.s.groups[r.s.groupByUser[userID]]
	if !ok {
		return nil, domain.ErrStudentGroupNotFound
	}
	g = cloneGroup(g)
	return &g, nil
}
