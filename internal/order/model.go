package order

import (
	"net/http"
	"time"

	"github.com/pawhub/pet-care-backend/internal/pkg/apperror"
)

var (
	ErrAddressRequired = apperror.New(http.StatusBadRequest, "shipping address is required")
	ErrEmptyCart       = apperror.New(http.StatusBadRequest, "cart is empty")
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusShipped   Status = "shipped"
	StatusDelivered Status = "delivered"
)

// Item is the immutable snapshot of one cart line at checkout time, stored
// in the order's items JSONB column.
type Item struct {
	ProductName  string  `json:"product_name"`
	ProductPrice float64 `json:"product_price"`
	ProductImage *string `json:"product_image,omitempty"`
	Quantity     int     `json:"quantity"`
}

// Order is one placed purchase.
type Order struct {
	ID              string
	UserID          string
	Items           []Item
	TotalAmount     float64
	ShippingAddress string
	Status          Status
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
