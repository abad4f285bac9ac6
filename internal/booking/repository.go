package booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, b *Booking) error
	GetByID(ctx context.Context, id string) (*Booking, error)
	List(ctx context.Context, filter Filter) ([]*Booking, error)

	// UpdateStatus writes the new status and acting vet, returning the
	// booking's stored call reference. A non-nil callRef is offered via
	// COALESCE in the same statement: the first minted reference wins even
	// when two confirms race, and callers must use the returned value.
	UpdateStatus(ctx context.Context, id string, status Status, vetID string, callRef *string) (*string, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

const bookingColumns = `b.id, b.user_id, p.email, b.pet_id, pt.name, b.vet_id,
	b.service_type, b.is_emergency, b.scheduled_date, b.status, b.notes,
	b.call_reference, b.created_at, b.updated_at`

func (r *pgxRepository) Create(ctx context.Context, b *Booking) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.vet_bookings").
		Columns("user_id", "pet_id", "service_type", "is_emergency", "scheduled_date", "status", "notes").
		Values(b.UserID, b.PetID, b.ServiceType, b.IsEmergency, b.ScheduledDate, b.Status, b.Notes).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create booking query failed: %w", err)
	}

	return r.pool.QueryRow(ctx, query, args...).
		Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Booking, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(bookingColumns).
		From("public.vet_bookings b").
		Join("public.profiles p ON b.user_id = p.id").
		LeftJoin("public.pets pt ON b.pet_id = pt.id").
		Where(squirrel.Eq{"b.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get booking query failed: %w", err)
	}

	row := r.pool.QueryRow(ctx, query, args...)

	var b Booking
	if err := scanBooking(row, &b); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get booking failed: %w", err)
	}
	return &b, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Booking, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(bookingColumns).
		From("public.vet_bookings b").
		Join("public.profiles p ON b.user_id = p.id").
		LeftJoin("public.pets pt ON b.pet_id = pt.id")

	if filter.UserID != "" {
		query = query.Where(squirrel.Eq{"b.user_id": filter.UserID})
	}
	if filter.Status != "" {
		query = query.Where(squirrel.Eq{"b.status": filter.Status})
	}

	query = query.OrderBy("b.scheduled_date DESC")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list bookings query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list bookings failed: %w", err)
	}
	defer rows.Close()

	var bookings []*Booking
	for rows.Next() {
		var b Booking
		if err := scanBooking(rows, &b); err != nil {
			return nil, fmt.Errorf("scan booking failed: %w", err)
		}
		bookings = append(bookings, &b)
	}

	return bookings, nil
}

func (r *pgxRepository) UpdateStatus(ctx context.Context, id string, status Status, vetID string, callRef *string) (*string, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	update := psql.Update("public.vet_bookings").
		Set("status", status).
		Set("vet_id", vetID).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING call_reference")

	if callRef != nil {
		// COALESCE keeps an already-stored reference over the freshly
		// minted one, so racing confirms converge on a single link.
		update = update.Set("call_reference", squirrel.Expr("COALESCE(call_reference, ?)", *callRef))
	}

	query, args, err := update.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update booking status query failed: %w", err)
	}

	var stored *string
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&stored); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update booking status failed: %w", err)
	}
	return stored, nil
}

func scanBooking(row pgx.Row, b *Booking) error {
	return row.Scan(
		&b.ID, &b.UserID, &b.UserEmail, &b.PetID, &b.PetName, &b.VetID,
		&b.ServiceType, &b.IsEmergency, &b.ScheduledDate, &b.Status, &b.Notes,
		&b.CallReference, &b.CreatedAt, &b.UpdatedAt,
	)
}
