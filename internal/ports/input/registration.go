package input

import (
	"context"

	"projecthub/internal/domain/entities"
)

// NewEntrepreneur is the registration payload for an entrepreneur.
type NewEntrepreneur struct {
	FullName string
	Email    string
	Phone    string
	Company  string
	Password string // optional
}

// NewStudentGroup is the registration payload for a student group.
type NewStudentGroup struct {
	RepresentativeName string
	Email              string
	RA                 string
	Semester           int
	Members            []string
	Interests          []string
	Password           string // optional
}

type RegistrationUseCase interface {
	RegisterEntrepreneur(ctx context.Context, in NewEntrepreneur) (*entities.Entrepreneur, error)
	RegisterStudentGroup(ctx context.Context, in NewStudentGroup) (*entities.StudentGroup, error)
	GetEntrepreneur(ctx context.Context, id string) (*entities.Entrepreneur, error)
	GetStudentGroup(ctx context.Context, id string) (*entities.StudentGroup, error)
}
