package database

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"projecthub/internal/domain/entities"
)

// DBTX is the subset of pgx shared by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// TxDB is a DBTX able to open transactions.
type TxDB interface {
	DBTX
	Begin(ctx context.Context) (pgx.Tx, error)
}

const uniqueViolation = "23505"

// notFound translates pgx.ErrNoRows into the given domain error.
func notFound(err error, domainErr error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return domainErr
	}
	return err
}

func isUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation && pgErr.ConstraintName == constraint
}

// nonNil keeps NOT NULL array columns from receiving NULL.
func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

const (
	userColumns         = "id, username, password_hash, user_type, created_at"
	entrepreneurColumns = "id, user_id, full_name, email, phone, company, created_at"
	groupColumns        = "id, user_id, representative_name, email, ra, semester, members, interests, created_at"
	projectColumns      = "id, entrepreneur_id, title, description, project_type, business_area, deadline, complexity, technologies, status, created_at"
	interestColumns     = "id, project_id, student_group_id, message, status, created_at"
	eventColumns        = "id, title, description, date, start_time, end_time, location, status, created_at"
)

func scanUser(row pgx.Row) (entities.User, error) {
	var u entities.User
	err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.UserType, &u.CreatedAt)
	return u, err
}

func scanEntrepreneur(row pgx.Row) (entities.Entrepreneur, error) {
	var e entities.Entrepreneur
	err := row.Scan(&e.ID, &e.UserID, &e.FullName, &e.Email, &e.Phone, &e.Company, &e.CreatedAt)
	return e, err
}

func scanGroup(row pgx.Row) (entities.StudentGroup, error) {
	var g entities.StudentGroup
	err := row.Scan(&g.ID, &g.UserID, &g.RepresentativeName, &g.Email, &g.RA, &g.Semester, &g.Members, &g.Interests, &g.CreatedAt)
	return g, err
}

func scanProject(row pgx.Row) (entities.Project, error) {
	var p entities.Project
	err := row.Scan(&p.ID, &p.EntrepreneurID, &p.Title, &p.Description, &p.ProjectType, &p.BusinessArea,
		&p.Deadline, &p.Complexity, &p.Technologies, &p.Status, &p.CreatedAt)
	return p, err
}

func scanInterest(row pgx.Row) (entities.ProjectInterest, error) {
	var i entities.ProjectInterest
	err := row.Scan(&i.ID, &i.ProjectID, &i.StudentGroupID, &i.Message, &i.Status, &i.CreatedAt)
	return i, err
}

func scanEvent(row pgx.Row) (entities.Event, error) {
	var e entities.Event
	err := row.Scan(&e.ID, &e.Title, &e.Description, &e.Date, &e.StartTime, &e.EndTime, &e.Location, &e.Status, &e.CreatedAt)
	return e, err
}

// collect drains rows with scan. The result is never nil.
func collect[T any](rows pgx.Rows, scan func(pgx.Row) (T, error)) ([]T, error) {
	defer rows.Close()
	out := []T{}
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}
