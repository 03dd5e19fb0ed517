package database

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

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

// AccountRepository writes a user and its profile in one transaction.
type AccountRepository struct {
	db TxDB
}

func NewAccountRepository(db TxDB) *AccountRepository {
	return &AccountRepository{db: db}
}

func insertUser(ctx context.Context, tx pgx.Tx, user *entities.User) error {
	user.ID = uuid.NewString()
	err := tx.QueryRow(ctx,
		`INSERT INTO users (id, username, password_hash, user_type) VALUES ($1, $2, $3, $4) RETURNING created_at`,
		user.ID, user.Username, user.PasswordHash, user.UserType,
	).Scan(&user.CreatedAt)
	if err != nil {
		if isUniqueViolation(err, "users_username_key") {
			return domain.ErrUsernameTaken
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *AccountRepository) CreateEntrepreneurAccount(ctx context.Context, user *entities.User, e *entities.Entrepreneur) error {
	return pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		if err := insertUser(ctx, tx, user); err != nil {
			return err
		}
		e.ID = uuid.NewString()
		e.UserID = user.ID
		err := tx.QueryRow(ctx,
			`INSERT INTO entrepreneurs (id, user_id, full_name, email, phone, company, created_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING created_at`,
			e.ID, e.UserID, e.FullName, e.Email, e.Phone, e.Company, user.CreatedAt,
		).Scan(&e.CreatedAt)
		if err != nil {
			return fmt.Errorf("insert entrepreneur: %w", err)
		}
		return nil
	})
}

func (r *AccountRepository) CreateStudentGroupAccount(ctx context.Context, user *entities.User, g *entities.StudentGroup) error {
	return pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		if err := insertUser(ctx, tx, user); err != nil {
			return err
		}
		g.ID = uuid.NewString()
		g.UserID = user.ID
		err := tx.QueryRow(ctx,
			`INSERT INTO student_groups (id, user_id, representative_name, email, ra, semester, members, interests, created_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING created_at`,
			g.ID, g.UserID, g.RepresentativeName, g.Email, g.RA, g.Semester, nonNil(g.Members), nonNil(g.Interests), user.CreatedAt,
		).Scan(&g.CreatedAt)
		if err != nil {
			return fmt.Errorf("insert student group: %w", err)
		}
		return nil
	})
}

type UserRepository struct {
	db DBTX
}

func NewUserRepository(db DBTX) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*entities.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if err != nil {
		return nil, notFound(err, domain.ErrUserNotFound)
	}
	return &u, nil
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*entities.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE username = $1`, username))
	if err != nil {
		return nil, notFound(err, domain.ErrUserNotFound)
	}
	return &u, nil
}

type EntrepreneurRepository struct {
	db DBTX
}

func NewEntrepreneurRepository(db DBTX) *EntrepreneurRepository {
	return &EntrepreneurRepository{db: db}
}

func (r *EntrepreneurRepository) FindByID(ctx context.Context, id string) (*entities.Entrepreneur, error) {
	e, err := scanEntrepreneur(r.db.QueryRow(ctx, `SELECT `+entrepreneurColumns+` FROM entrepreneurs WHERE id = $1`, id))
	if err != nil {
		return nil, notFound(err, domain.ErrEntrepreneurNotFound)
	}
	return &e, nil
}

func (r *EntrepreneurRepository) FindByUserID(ctx context.Context, userID string) (*entities.Entrepreneur, error) {
	e, err := scanEntrepreneur(r.db.QueryRow(ctx, `SELECT `+entrepreneurColumns+` FROM entrepreneurs WHERE user_id = $1`, userID))
	if err != nil {
		return nil, notFound(err, domain.ErrEntrepreneurNotFound)
	}
	return &e, nil
}

type StudentGroupRepository struct {
	db DBTX
}

func NewStudentGroupRepository(db DBTX) *StudentGroupRepository {
	return &StudentGroupRepository{db: db}
}

func (r *StudentGroupRepository) FindByID(ctx context.Context, id string) (*entities.StudentGroup, error) {
	g, err := scanGroup(r.db.QueryRow(ctx, `SELECT `+groupColumns+` FROM student_groups WHERE id = $1`, id))
	if err != nil {
		return nil, notFound(err, domain.ErrStudentGroupNotFound)
	}
	return &g, nil
}

func (r *StudentGroupRepository) FindByUserID(ctx context.Context, userID string) (*entities.StudentGroup, error) {
	g, err := scanGroup(r.db.QueryRow(ctx, `SELECT `+groupColumns+` FROM student_groups WHERE user_id = $1`, userID))
	if err != nil {
		return nil, notFound(err, domain.ErrStudentGroupNotFound)
	}
	return &g, nil
}
