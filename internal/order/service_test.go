package order

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pawhub/pet-care-backend/internal/cart"
)

// fakeCartService is a minimal in-memory cart.
type fakeCartService struct {
	items map[string][]*cart.Item
}

func (s *fakeCartService) Add(context.Context, cart.AddRequest) (*cart.Item, error) {
	panic("not used")
}

func (s *fakeCartService) ListByUser(_ context.Context, userID string) ([]*cart.Item, error) {
	return s.items[userID], nil
}

func (s *fakeCartService) Remove(context.Context, string, string) error {
	panic("not used")
}

// fakeRepository records checkouts and simulates the cart-clearing
// transaction by emptying the linked cart.
type fakeRepository struct {
	carts  *fakeCartService
	orders []*Order
}

func (r *fakeRepository) Checkout(_ context.Context, o *Order) error {
	o.ID = fmt.Sprintf("order-%d", len(r.orders)+1)
	o.CreatedAt = time.Now().UTC()
	r.orders = append(r.orders, o)
	delete(r.carts.items, o.UserID)
	return nil
}

func (r *fakeRepository) ListByUser(_ context.Context, userID string) ([]*Order, error) {
	var out []*Order
	for _, o := range r.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

func img(s string) *string { return &s }

func TestCheckout(t *testing.T) {
	ctx := context.Background()
	carts := &fakeCartService{items: map[string][]*cart.Item{
		"user-1": {
			{ID: "c1", UserID: "user-1", ProductName: "Dog Food 5kg", ProductPrice: 29.99, Quantity: 2},
			{ID: "c2", UserID: "user-1", ProductName: "Chew Toy", ProductPrice: 7.50, ProductImage: img("/img/toy.jpg"), Quantity: 1},
		},
	}}
	repo := &fakeRepository{carts: carts}
	svc := NewService(repo, carts)

	o, err := svc.Checkout(ctx, "user-1", "1 Bark Street")
	require.NoError(t, err)

	// Total is computed server-side from the cart contents.
	assert.InDelta(t, 29.99*2+7.50, o.TotalAmount, 1e-9)
	assert.Equal(t, StatusPending, o.Status)
	assert.Equal(t, "1 Bark Street", o.ShippingAddress)

	require.Len(t, o.Items, 2)
	assert.Equal(t, "Dog Food 5kg", o.Items[0].ProductName)
	assert.Equal(t, 2, o.Items[0].Quantity)
	require.NotNil(t, o.Items[1].ProductImage)
	assert.Equal(t, "/img/toy.jpg", *o.Items[1].ProductImage)

	// The cart is cleared in the same operation.
	left, err := carts.ListByUser(ctx, "user-1")
	require.NoError(t, err)
	assert.Empty(t, left)

	orders, err := svc.ListByUser(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, o.ID, orders[0].ID)
}

func TestCheckoutValidation(t *testing.T) {
	ctx := context.Background()
	carts := &fakeCartService{items: map[string][]*cart.Item{
		"user-1": {{ID: "c1", UserID: "user-1", ProductName: "Dog Food", ProductPrice: 10, Quantity: 1}},
	}}
	repo := &fakeRepository{carts: carts}
	svc := NewService(repo, carts)

	_, err := svc.Checkout(ctx, "user-1", "   ")
	assert.ErrorIs(t, err, ErrAddressRequired)

	_, err = svc.Checkout(ctx, "user-2", "1 Bark Street")
	assert.ErrorIs(t, err, ErrEmptyCart)

	assert.Empty(t, repo.orders, "failed checkouts must not create orders")

	// The cart is untouched by failures.
	left, err := carts.ListByUser(ctx, "user-1")
	require.NoError(t, err)
	assert.Len(t, left, 1)
}
