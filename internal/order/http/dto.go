package http

import (
	"time"

	"github.com/pawhub/pet-care-backend/internal/order"
)

type OrderResponse struct {
	ID              string       `json:"id"`
	Items           []order.Item `json:"items"`
	TotalAmount     float64      `json:"total_amount"`
	ShippingAddress string       `json:"shipping_address"`
	Status          string       `json:"status"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}

func NewOrderResponse(o *order.Order) OrderResponse {
	return OrderResponse{
		ID:              o.ID,
		Items:           o.Items,
		TotalAmount:     o.TotalAmount,
		ShippingAddress: o.ShippingAddress,
		Status:          string(o.Status),
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}

type CheckoutBody struct {
	ShippingAddress string `json:"shipping_address" binding:"required"`
}
