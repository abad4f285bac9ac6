package message

import (
	"context"
	"strings"
)

type SendRequest struct {
	SenderID    string
	RecipientID string
	BookingID   *string
	Content     string
}

type Service interface {
	Send(ctx context.Context, req SendRequest) (*Message, error)
	Conversation(ctx context.Context, userA, userB string) ([]*Message, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Send(ctx context.Context, req SendRequest) (*Message, error) {
	if strings.TrimSpace(req.Content) == "" {
		return nil, ErrContentRequired
	}
	if strings.TrimSpace(req.RecipientID) == "" {
		return nil, ErrRecipientRequired
	}

	m := &Message{
		SenderID:    req.SenderID,
		RecipientID: req.RecipientID,
		BookingID:   req.BookingID,
		Content:     strings.TrimSpace(req.Content),
	}

	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}

	return m, nil
}

func (s *service) Conversation(ctx context.Context, userA, userB string) ([]*Message, error) {
	return s.repo.Conversation(ctx, userA, userB)
}
