package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc) {
	chat := g.Group("/assistant")
	chat.Use(authMiddleware)
	{
		chat.POST("/chat", h.Chat)
		chat.DELETE("/chat", h.EndChat)
	}
}
