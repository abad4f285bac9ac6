package http

import (
	"time"

	"github.com/pawhub/pet-care-backend/internal/cart"
)

type CartItemResponse struct {
	ID           string    `json:"id"`
	ProductName  string    `json:"product_name"`
	ProductPrice float64   `json:"product_price"`
	ProductImage *string   `json:"product_image,omitempty"`
	Quantity     int       `json:"quantity"`
	CreatedAt    time.Time `json:"created_at"`
}

func NewCartItemResponse(it *cart.Item) CartItemResponse {
	return CartItemResponse{
		ID:           it.ID,
		ProductName:  it.ProductName,
		ProductPrice: it.ProductPrice,
		ProductImage: it.ProductImage,
		Quantity:     it.Quantity,
		CreatedAt:    it.CreatedAt,
	}
}

// CartResponse wraps the items with the server-computed total.
type CartResponse struct {
	Items []CartItemResponse `json:"items"`
	Total float64            `json:"total"`
}

type AddItemBody struct {
	ProductName  string  `json:"product_name" binding:"required"`
	ProductPrice float64 `json:"product_price" binding:"required,gt=0"`
	ProductImage *string `json:"product_image"`
	Quantity     int     `json:"quantity"`
}
