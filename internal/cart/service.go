package cart

import (
	"context"
	"strings"
)

type AddRequest struct {
	UserID       string
	ProductName  string
	ProductPrice float64
	ProductImage *string
	Quantity     int
}

type Service interface {
	Add(ctx context.Context, req AddRequest) (*Item, error)
	ListByUser(ctx context.Context, userID string) ([]*Item, error)
	Remove(ctx context.Context, id, userID string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Add(ctx context.Context, req AddRequest) (*Item, error) {
	if strings.TrimSpace(req.ProductName) == "" {
		return nil, ErrNameRequired
	}
	if req.ProductPrice <= 0 {
		return nil, ErrInvalidPrice
	}

	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	item := &Item{
		UserID:       req.UserID,
		ProductName:  strings.TrimSpace(req.ProductName),
		ProductPrice: req.ProductPrice,
		ProductImage: req.ProductImage,
		Quantity:     quantity,
	}

	if err := s.repo.Add(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

func (s *service) ListByUser(ctx context.Context, userID string) ([]*Item, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *service) Remove(ctx context.Context, id, userID string) error {
	return s.repo.Remove(ctx, id, userID)
}
