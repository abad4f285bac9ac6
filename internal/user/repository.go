package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository defines methods for accessing profile and role data.
type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)

	// FindFirstVet returns the earliest-registered veterinarian account.
	FindFirstVet(ctx context.Context) (*User, error)

	// ListOthers returns every profile except the given user, newest first.
	ListOthers(ctx context.Context, excludeUserID string) ([]*User, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

// NewPgxRepository creates a new Repository implementation using pgxpool.
func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

const userColumns = `p.id, p.email, p.password_hash, r.role, p.clinic_name, p.created_at, p.updated_at`

func (r *pgxRepository) Create(ctx context.Context, u *User) error {
	// Profile and role rows are written together; a failure on either
	// leaves no partial account behind.
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin create user failed: %w", err)
	}
	defer tx.Rollback(ctx)

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.profiles").
		Columns("email", "password_hash", "clinic_name").
		Values(u.Email, u.PasswordHash, u.ClinicName).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create profile query failed: %w", err)
	}

	if err := tx.QueryRow(ctx, query, args...).Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return ErrEmailAlreadyUsed
		}
		return fmt.Errorf("create profile failed: %w", err)
	}

	query, args, err = psql.Insert("public.user_roles").
		Columns("user_id", "role").
		Values(u.ID, u.Role).
		ToSql()
	if err != nil {
		return fmt.Errorf("build create role query failed: %w", err)
	}

	if _, err := tx.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("create user role failed: %w", err)
	}

	return tx.Commit(ctx)
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*User, error) {
	return r.getOne(ctx, squirrel.Eq{"p.id": id})
}

func (r *pgxRepository) GetByEmail(ctx context.Context, email string) (*User, error) {
	return r.getOne(ctx, squirrel.Eq{"p.email": email})
}

func (r *pgxRepository) FindFirstVet(ctx context.Context) (*User, error) {
	u, err := r.getOne(ctx, squirrel.Eq{"r.role": RoleVet})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrVetNotFound
		}
		return nil, err
	}
	return u, nil
}

func (r *pgxRepository) getOne(ctx context.Context, where squirrel.Eq) (*User, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(userColumns).
		From("public.profiles p").
		Join("public.user_roles r ON r.user_id = p.id").
		Where(where).
		OrderBy("p.created_at ASC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get user query failed: %w", err)
	}

	row := r.pool.QueryRow(ctx, query, args...)

	var u User
	if err := row.Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.Role, &u.ClinicName, &u.CreatedAt, &u.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get user failed: %w", err)
	}
	return &u, nil
}

func (r *pgxRepository) ListOthers(ctx context.Context, excludeUserID string) ([]*User, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(userColumns).
		From("public.profiles p").
		Join("public.user_roles r ON r.user_id = p.id").
		Where(squirrel.NotEq{"p.id": excludeUserID}).
		OrderBy("p.created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list users query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list users failed: %w", err)
	}
	defer rows.Close()

	var users []*User
	for rows.Next() {
		var u User
		if err := rows.Scan(
			&u.ID, &u.Email, &u.PasswordHash, &u.Role, &u.ClinicName, &u.CreatedAt, &u.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan user failed: %w", err)
		}
		users = append(users, &u)
	}

	return users, nil
}
