package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc) {
	orders := g.Group("/orders")
	orders.Use(authMiddleware)
	{
		orders.GET("", h.List)
	}

	checkout := g.Group("/checkout")
	checkout.Use(authMiddleware)
	{
		checkout.POST("", h.Checkout)
	}
}
