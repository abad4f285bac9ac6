package vaccination

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, s *Schedule) error
	GetByID(ctx context.Context, id string) (*Schedule, error)

	// ListByOwner returns schedules for every pet the owner has,
	// soonest first.
	ListByOwner(ctx context.Context, ownerID string) ([]*Schedule, error)
	ListByPet(ctx context.Context, petID string) ([]*Schedule, error)
	UpdateStatus(ctx context.Context, id string, status Status) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

const scheduleColumns = "id, pet_id, vaccine_name, scheduled_date, status, notes, created_at, updated_at"

func (r *pgxRepository) Create(ctx context.Context, s *Schedule) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.vaccination_schedules").
		Columns("pet_id", "vaccine_name", "scheduled_date", "status", "notes").
		Values(s.PetID, s.VaccineName, s.ScheduledDate, s.Status, s.Notes).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create vaccination query failed: %w", err)
	}

	return r.pool.QueryRow(ctx, query, args...).
		Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Schedule, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(scheduleColumns).
		From("public.vaccination_schedules").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get vaccination query failed: %w", err)
	}

	s, err := scanSchedule(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get vaccination schedule failed: %w", err)
	}

	return s, nil
}

func (r *pgxRepository) ListByOwner(ctx context.Context, ownerID string) ([]*Schedule, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(
		"v.id", "v.pet_id", "v.vaccine_name", "v.scheduled_date", "v.status", "v.notes", "v.created_at", "v.updated_at",
	).
		From("public.vaccination_schedules v").
		Join("public.pets p ON p.id = v.pet_id").
		Where(squirrel.Eq{"p.user_id": ownerID}).
		OrderBy("v.scheduled_date ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list vaccinations query failed: %w", err)
	}

	return r.list(ctx, query, args)
}

func (r *pgxRepository) ListByPet(ctx context.Context, petID string) ([]*Schedule, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(scheduleColumns).
		From("public.vaccination_schedules").
		Where(squirrel.Eq{"pet_id": petID}).
		OrderBy("scheduled_date ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list pet vaccinations query failed: %w", err)
	}

	return r.list(ctx, query, args)
}

func (r *pgxRepository) list(ctx context.Context, query string, args []any) ([]*Schedule, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list vaccination schedules failed: %w", err)
	}
	defer rows.Close()

	var schedules []*Schedule
	for rows.Next() {
		s, err := scanSchedule(rows)
		if err != nil {
			return nil, fmt.Errorf("scan vaccination schedule failed: %w", err)
		}
		schedules = append(schedules, s)
	}

	return schedules, nil
}

func (r *pgxRepository) UpdateStatus(ctx context.Context, id string, status Status) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.vaccination_schedules").
		Set("status", status).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update vaccination status query failed: %w", err)
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update vaccination status failed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func scanSchedule(row pgx.Row) (*Schedule, error) {
	var s Schedule
	if err := row.Scan(
		&s.ID, &s.PetID, &s.VaccineName, &s.ScheduledDate, &s.Status, &s.Notes, &s.CreatedAt, &s.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &s, nil
}
