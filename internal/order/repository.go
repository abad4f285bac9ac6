package order

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	// Checkout inserts the order and clears the user's cart in a single
	// transaction. Either both happen or neither does.
	Checkout(ctx context.Context, o *Order) error

	ListByUser(ctx context.Context, userID string) ([]*Order, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Checkout(ctx context.Context, o *Order) error {
	itemsJSON, err := json.Marshal(o.Items)
	if err != nil {
		return fmt.Errorf("marshal order items failed: %w", err)
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin checkout failed: %w", err)
	}
	defer tx.Rollback(ctx)

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.orders").
		Columns("user_id", "items", "total_amount", "shipping_address", "status").
		Values(o.UserID, itemsJSON, o.TotalAmount, o.ShippingAddress, o.Status).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create order query failed: %w", err)
	}

	if err := tx.QueryRow(ctx, query, args...).Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt); err != nil {
		return fmt.Errorf("create order failed: %w", err)
	}

	query, args, err = psql.Delete("public.cart_items").
		Where(squirrel.Eq{"user_id": o.UserID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build clear cart query failed: %w", err)
	}

	if _, err := tx.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("clear cart failed: %w", err)
	}

	return tx.Commit(ctx)
}

func (r *pgxRepository) ListByUser(ctx context.Context, userID string) ([]*Order, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(
		"id", "user_id", "items", "total_amount", "shipping_address", "status", "created_at", "updated_at",
	).
		From("public.orders").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list orders query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list orders failed: %w", err)
	}
	defer rows.Close()

	var orders []*Order
	for rows.Next() {
		var o Order
		var itemsJSON []byte
		if err := rows.Scan(
			&o.ID, &o.UserID, &itemsJSON, &o.TotalAmount, &o.ShippingAddress, &o.Status, &o.CreatedAt, &o.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan order failed: %w", err)
		}
		if err := json.Unmarshal(itemsJSON, &o.Items); err != nil {
			return nil, fmt.Errorf("unmarshal order items failed: %w", err)
		}
		orders = append(orders, &o)
	}

	return orders, nil
}
