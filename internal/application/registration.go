package application

import (
	"context"
	"fmt"
	"slices"

	"github.com/google/uuid"

	"projecthub/internal/domain"
	"projecthub/internal/domain/entities"
	"projecthub/internal/ports/input"
	"projecthub/internal/ports/output"
)

var _ input.RegistrationUseCase = (*RegistrationService)(nil)

type RegistrationService struct {
	accountRepo      output.AccountRepository
	entrepreneurRepo output.EntrepreneurRepository
	groupRepo        output.StudentGroupRepository
	hasher           output.PasswordHasher
}

func NewRegistrationService(
	accountRepo output.AccountRepository,
	entrepreneurRepo output.EntrepreneurRepository,
	groupRepo output.StudentGroupRepository,
	hasher output.PasswordHasher,
) *RegistrationService {
	return &RegistrationService{
		accountRepo:      accountRepo,
		entrepreneurRepo: entrepreneurRepo,
		groupRepo:        groupRepo,
		hasher:           hasher,
	}
}

// newUser builds the account behind a profile. The email doubles as username.
// Without a password the account gets a random one nobody knows.
func (s *RegistrationService) newUser(email, password, userType string) (*entities.User, error) {
	if password == "" {
		password = uuid.NewString()
	}
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	return &entities.User{Username: email, PasswordHash: hash, UserType: userType}, nil
}

func (s *RegistrationService) RegisterEntrepreneur(ctx context.Context, in input.NewEntrepreneur) (*entities.Entrepreneur, error) {
	user, err := s.newUser(in.Email, in.Password, domain.UserTypeEntrepreneur)
	if err != nil {
		return nil, err
	}
	e := &entities.Entrepreneur{
		FullName: in.FullName,
		Email:    in.Email,
		Phone:    in.Phone,
		Company:  in.Company,
	}
	if err := s.accountRepo.CreateEntrepreneurAccount(ctx, user, e); err != nil {
		return nil, fmt.Errorf("create entrepreneur: %w", err)
	}
	return e, nil
}

func (s *RegistrationService) RegisterStudentGroup(ctx context.Context, in input.NewStudentGroup) (*entities.StudentGroup, error) {
	user, err := s.newUser(in.Email, in.Password, domain.UserTypeStudent)
	if err != nil {
		return nil, err
	}
	g := &entities.StudentGroup{
		RepresentativeName: in.RepresentativeName,
		Email:              in.Email,
		RA:                 in.RA,
		Semester:           in.Semester,
		Members:            slices.Clone(in.Members),
		Interests:          slices.Clone(in.Interests),
	}
	if err := s.accountRepo.CreateStudentGroupAccount(ctx, user, g); err != nil {
		return nil, fmt.Errorf("create student group: %w", err)
	}
	return g, nil
}

func (s *RegistrationService) GetEntrepreneur(ctx context.Context, id string) (*entities.Entrepreneur, error) {
	return s.entrepreneurRepo.FindByID(ctx, id)
}

func (s *RegistrationService) GetStudentGroup(ctx context.Context, id string) (*entities.StudentGroup, error) {
	return s.groupRepo.FindByID(ctx, id)
}
