package cart

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepository struct {
	items map[string]*Item
	seq   int
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{items: make(map[string]*Item)}
}

func (r *fakeRepository) Add(_ context.Context, item *Item) error {
	r.seq++
	item.ID = fmt.Sprintf("item-%d", r.seq)
	item.CreatedAt = time.Now().UTC()
	copied := *item
	r.items[item.ID] = &copied
	return nil
}

func (r *fakeRepository) ListByUser(_ context.Context, userID string) ([]*Item, error) {
	var out []*Item
	for _, it := range r.items {
		if it.UserID == userID {
			copied := *it
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeRepository) Remove(_ context.Context, id, userID string) error {
	it, ok := r.items[id]
	if !ok || it.UserID != userID {
		return ErrNotFound
	}
	delete(r.items, id)
	return nil
}

func TestAddToCart(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newFakeRepository())

	item, err := svc.Add(ctx, AddRequest{
		UserID:       "user-1",
		ProductName:  " Dog Food 5kg ",
		ProductPrice: 29.99,
	})
	require.NoError(t, err)

	assert.Equal(t, "Dog Food 5kg", item.ProductName)
	assert.Equal(t, 1, item.Quantity, "quantity defaults to 1")
}

func TestAddToCartValidation(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newFakeRepository())

	_, err := svc.Add(ctx, AddRequest{UserID: "user-1", ProductName: " ", ProductPrice: 10})
	assert.ErrorIs(t, err, ErrNameRequired)

	_, err = svc.Add(ctx, AddRequest{UserID: "user-1", ProductName: "Toy", ProductPrice: 0})
	assert.ErrorIs(t, err, ErrInvalidPrice)

	_, err = svc.Add(ctx, AddRequest{UserID: "user-1", ProductName: "Toy", ProductPrice: -5})
	assert.ErrorIs(t, err, ErrInvalidPrice)

	_, err = svc.Add(ctx, AddRequest{UserID: "user-1", ProductName: "Toy", ProductPrice: 10, Quantity: -1})
	assert.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestRemoveIsScopedToOwner(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepository()
	svc := NewService(repo)

	item, err := svc.Add(ctx, AddRequest{UserID: "user-1", ProductName: "Toy", ProductPrice: 10})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Remove(ctx, item.ID, "user-2"), ErrNotFound)
	require.NoError(t, svc.Remove(ctx, item.ID, "user-1"))

	left, err := svc.ListByUser(ctx, "user-1")
	require.NoError(t, err)
	assert.Empty(t, left)
}

func TestTotal(t *testing.T) {
	items := []*Item{
		{ProductPrice: 29.99, Quantity: 2},
		{ProductPrice: 7.50, Quantity: 1},
	}
	assert.InDelta(t, 67.48, Total(items), 1e-9)
	assert.Zero(t, Total(nil))
}
