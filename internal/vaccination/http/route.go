package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc) {
	vaccinations := g.Group("/vaccinations")
	vaccinations.Use(authMiddleware)
	{
		vaccinations.GET("", h.List)
		vaccinations.POST("", h.Create)
		vaccinations.PATCH("/:id/status", h.UpdateStatus)
	}
}
