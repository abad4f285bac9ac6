package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pawhub/pet-care-backend/internal/auth"
	"github.com/pawhub/pet-care-backend/internal/cart"
	"github.com/pawhub/pet-care-backend/internal/pkg/response"
)

type Handler struct {
	service cart.Service
}

func NewHandler(service cart.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(c *gin.Context) {
	items, err := h.service.ListByUser(c.Request.Context(), auth.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	resp := CartResponse{
		Items: make([]CartItemResponse, len(items)),
		Total: cart.Total(items),
	}
	for i, it := range items {
		resp.Items[i] = NewCartItemResponse(it)
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) Add(c *gin.Context) {
	var body AddItemBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	item, err := h.service.Add(c.Request.Context(), cart.AddRequest{
		UserID:       auth.GetUserID(c),
		ProductName:  body.ProductName,
		ProductPrice: body.ProductPrice,
		ProductImage: body.ProductImage,
		Quantity:     body.Quantity,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewCartItemResponse(item))
}

func (h *Handler) Remove(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	if err := h.service.Remove(c.Request.Context(), id, auth.GetUserID(c)); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
