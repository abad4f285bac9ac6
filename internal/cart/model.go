package cart

import (
	"net/http"
	"time"

	"github.com/pawhub/pet-care-backend/internal/pkg/apperror"
)

var (
	ErrNotFound        = apperror.New(http.StatusNotFound, "cart item not found")
	ErrNameRequired    = apperror.New(http.StatusBadRequest, "product name is required")
	ErrInvalidPrice    = apperror.New(http.StatusBadRequest, "product price must be positive")
	ErrInvalidQuantity = apperror.New(http.StatusBadRequest, "quantity must be at least 1")
)

// Item is one product line in a user's cart. Product fields are snapshotted
// from the catalog at add time.
type Item struct {
	ID           string
	UserID       string
	ProductName  string
	ProductPrice float64
	ProductImage *string
	Quantity     int
	CreatedAt    time.Time
}

// Total sums price times quantity over the items.
func Total(items []*Item) float64 {
	var total float64
	for _, it := range items {
		total += it.ProductPrice * float64(it.Quantity)
	}
	return total
}
