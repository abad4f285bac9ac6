package http

import (
	"time"

	"github.com/pawhub/pet-care-backend/internal/message"
	"github.com/pawhub/pet-care-backend/internal/user"
)

type MessageResponse struct {
	ID          string    `json:"id"`
	SenderID    string    `json:"sender_id"`
	RecipientID string    `json:"recipient_id"`
	BookingID   *string   `json:"booking_id,omitempty"`
	Content     string    `json:"content"`
	IsRead      bool      `json:"is_read"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewMessageResponse(m *message.Message) MessageResponse {
	return MessageResponse{
		ID:          m.ID,
		SenderID:    m.SenderID,
		RecipientID: m.RecipientID,
		BookingID:   m.BookingID,
		Content:     m.Content,
		IsRead:      m.IsRead,
		CreatedAt:   m.CreatedAt,
	}
}

type SendMessageBody struct {
	RecipientID string  `json:"recipient_id" binding:"required,uuid"`
	BookingID   *string `json:"booking_id" binding:"omitempty,uuid"`
	Content     string  `json:"content" binding:"required"`
}

// ChatPartnerResponse identifies someone the caller can message.
type ChatPartnerResponse struct {
	UserID     string  `json:"user_id"`
	Email      string  `json:"email"`
	ClinicName *string `json:"clinic_name,omitempty"`
}

func NewChatPartnerResponse(u *user.User) ChatPartnerResponse {
	return ChatPartnerResponse{
		UserID:     u.ID,
		Email:      u.Email,
		ClinicName: u.ClinicName,
	}
}
