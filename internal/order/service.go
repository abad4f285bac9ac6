package order

import (
	"context"
	"strings"

	"github.com/pawhub/pet-care-backend/internal/cart"
)

type Service interface {
	// Checkout snapshots the user's cart into a new order and clears the
	// cart atomically. The total is computed server-side from the cart.
	Checkout(ctx context.Context, userID, shippingAddress string) (*Order, error)

	ListByUser(ctx context.Context, userID string) ([]*Order, error)
}

type service struct {
	repo        Repository
	cartService cart.Service
}

func NewService(repo Repository, cartService cart.Service) Service {
	return &service{
		repo:        repo,
		cartService: cartService,
	}
}

func (s *service) Checkout(ctx context.Context, userID, shippingAddress string) (*Order, error) {
	if strings.TrimSpace(shippingAddress) == "" {
		return nil, ErrAddressRequired
	}

	items, err := s.cartService.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	snapshot := make([]Item, len(items))
	for i, it := range items {
		snapshot[i] = Item{
			ProductName:  it.ProductName,
			ProductPrice: it.ProductPrice,
			ProductImage: it.ProductImage,
			Quantity:     it.Quantity,
		}
	}

	o := &Order{
		UserID:          userID,
		Items:           snapshot,
		TotalAmount:     cart.Total(items),
		ShippingAddress: strings.TrimSpace(shippingAddress),
		Status:          StatusPending,
	}

	if err := s.repo.Checkout(ctx, o); err != nil {
		return nil, err
	}

	return o, nil
}

func (s *service) ListByUser(ctx context.Context, userID string) ([]*Order, error) {
	return s.repo.ListByUser(ctx, userID)
}
