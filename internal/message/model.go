package message

import (
	"net/http"
	"time"

	"github.com/pawhub/pet-care-backend/internal/pkg/apperror"
)

var (
	ErrContentRequired   = apperror.New(http.StatusBadRequest, "message content is required")
	ErrRecipientRequired = apperror.New(http.StatusBadRequest, "recipient is required")
)

// Message is one chat line between an owner and a vet, optionally tied to a
// booking.
type Message struct {
	ID          string
	SenderID    string
	RecipientID string
	BookingID   *string
	Content     string
	IsRead      bool
	CreatedAt   time.Time
}
