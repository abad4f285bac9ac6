package cart

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Add(ctx context.Context, item *Item) error
	ListByUser(ctx context.Context, userID string) ([]*Item, error)

	// Remove deletes one item, scoped to the owning user so a forged id
	// cannot touch someone else's cart.
	Remove(ctx context.Context, id, userID string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Add(ctx context.Context, item *Item) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.cart_items").
		Columns("user_id", "product_name", "product_price", "product_image", "quantity").
		Values(item.UserID, item.ProductName, item.ProductPrice, item.ProductImage, item.Quantity).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build add cart item query failed: %w", err)
	}

	return r.pool.QueryRow(ctx, query, args...).
		Scan(&item.ID, &item.CreatedAt)
}

func (r *pgxRepository) ListByUser(ctx context.Context, userID string) ([]*Item, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(
		"id", "user_id", "product_name", "product_price", "product_image", "quantity", "created_at",
	).
		From("public.cart_items").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list cart query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list cart items failed: %w", err)
	}
	defer rows.Close()

	var items []*Item
	for rows.Next() {
		var it Item
		if err := rows.Scan(
			&it.ID, &it.UserID, &it.ProductName, &it.ProductPrice, &it.ProductImage, &it.Quantity, &it.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan cart item failed: %w", err)
		}
		items = append(items, &it)
	}

	return items, nil
}

func (r *pgxRepository) Remove(ctx context.Context, id, userID string) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Delete("public.cart_items").
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build remove cart item query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("remove cart item failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
