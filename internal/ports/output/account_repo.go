package output

import (
	"context"

	"projecthub/internal/domain/entities"
)

// AccountRepository creates a user together with its profile. Both records are
// written or neither is; a duplicate username yields domain.ErrUsernameTaken.
type AccountRepository interface {
	CreateEntrepreneurAccount(ctx context.Context, user *entities.User, entrepreneur *entities.Entrepreneur) error
	CreateStudentGroupAccount(ctx context.Context, user *entities.User, group *entities.StudentGroup) error
}

type UserRepository interface {
	FindByID(ctx context.Context, id string) (*entities.User, error)
	FindByUsername(ctx context.Context, username string) (*entities.User, error)
}

type EntrepreneurRepository interface {
	FindByID(ctx context.Context, id string) (*entities.Entrepreneur, error)
	FindByUserID(ctx context.Context, userID string) (*entities.Entrepreneur, error)
}

type StudentGroupRepository interface {
	FindByID(ctx context.Context, id string) (*entities.StudentGroup, error)
	FindByUserID(ctx context.Context, userID string) (*entities.StudentGroup, error)
}
