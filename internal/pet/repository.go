package pet

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, p *Pet) error
	GetByID(ctx context.Context, id string) (*Pet, error)
	ListByOwner(ctx context.Context, userID string) ([]*Pet, error)
	Update(ctx context.Context, p *Pet) error
	Delete(ctx context.Context, id string) error
	SetPhotoURL(ctx context.Context, id, url string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

const petColumns = `id, user_id, name, species, breed, date_of_birth, weight, photo_url, created_at, updated_at`

func (r *pgxRepository) Create(ctx context.Context, p *Pet) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.pets").
		Columns("user_id", "name", "species", "breed", "date_of_birth", "weight").
		Values(p.UserID, p.Name, p.Species, p.Breed, p.DateOfBirth, p.Weight).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create pet query failed: %w", err)
	}

	return r.pool.QueryRow(ctx, query, args...).
		Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Pet, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(petColumns).
		From("public.pets").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get pet query failed: %w", err)
	}

	row := r.pool.QueryRow(ctx, query, args...)

	var p Pet
	if err := scanPet(row, &p); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get pet failed: %w", err)
	}
	return &p, nil
}

func (r *pgxRepository) ListByOwner(ctx context.Context, userID string) ([]*Pet, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(petColumns).
		From("public.pets").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list pets query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list pets failed: %w", err)
	}
	defer rows.Close()

	var pets []*Pet
	for rows.Next() {
		var p Pet
		if err := scanPet(rows, &p); err != nil {
			return nil, fmt.Errorf("scan pet failed: %w", err)
		}
		pets = append(pets, &p)
	}

	return pets, nil
}

func (r *pgxRepository) Update(ctx context.Context, p *Pet) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.pets").
		Set("name", p.Name).
		Set("species", p.Species).
		Set("breed", p.Breed).
		Set("date_of_birth", p.DateOfBirth).
		Set("weight", p.Weight).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": p.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update pet query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update pet failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Delete("public.pets").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete pet query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete pet failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) SetPhotoURL(ctx context.Context, id, url string) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.pets").
		Set("photo_url", url).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build set photo query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("set pet photo failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanPet(row pgx.Row, p *Pet) error {
	return row.Scan(
		&p.ID, &p.UserID, &p.Name, &p.Species, &p.Breed,
		&p.DateOfBirth, &p.Weight, &p.PhotoURL, &p.CreatedAt, &p.UpdatedAt,
	)
}
