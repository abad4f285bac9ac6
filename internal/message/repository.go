package message

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, m *Message) error

	// Conversation returns every message between the two users, both
	// directions, oldest first.
	Conversation(ctx context.Context, userA, userB string) ([]*Message, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, m *Message) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.messages").
		Columns("sender_id", "recipient_id", "booking_id", "content").
		Values(m.SenderID, m.RecipientID, m.BookingID, m.Content).
		Suffix("RETURNING id, is_read, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create message query failed: %w", err)
	}

	return r.pool.QueryRow(ctx, query, args...).
		Scan(&m.ID, &m.IsRead, &m.CreatedAt)
}

func (r *pgxRepository) Conversation(ctx context.Context, userA, userB string) ([]*Message, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(
		"id", "sender_id", "recipient_id", "booking_id", "content", "is_read", "created_at",
	).
		From("public.messages").
		Where(squirrel.Or{
			squirrel.And{
				squirrel.Eq{"sender_id": userA},
				squirrel.Eq{"recipient_id": userB},
			},
			squirrel.And{
				squirrel.Eq{"sender_id": userB},
				squirrel.Eq{"recipient_id": userA},
			},
		}).
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build conversation query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list conversation failed: %w", err)
	}
	defer rows.Close()

	var messages []*Message
	for rows.Next() {
		var m Message
		if err := rows.Scan(
			&m.ID, &m.SenderID, &m.RecipientID, &m.BookingID, &m.Content, &m.IsRead, &m.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan message failed: %w", err)
		}
		messages = append(messages, &m)
	}

	return messages, nil
}
