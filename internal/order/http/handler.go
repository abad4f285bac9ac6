package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pawhub/pet-care-backend/internal/auth"
	"github.com/pawhub/pet-care-backend/internal/order"
	"github.com/pawhub/pet-care-backend/internal/pkg/response"
)

type Handler struct {
	service order.Service
}

func NewHandler(service order.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Checkout(c *gin.Context) {
	var body CheckoutBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	o, err := h.service.Checkout(c.Request.Context(), auth.GetUserID(c), body.ShippingAddress)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewOrderResponse(o))
}

func (h *Handler) List(c *gin.Context) {
	orders, err := h.service.ListByUser(c.Request.Context(), auth.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]OrderResponse, len(orders))
	for i, o := range orders {
		items[i] = NewOrderResponse(o)
	}

	c.JSON(http.StatusOK, items)
}
