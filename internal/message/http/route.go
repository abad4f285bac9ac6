package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, vetMiddleware gin.HandlerFunc) {
	messages := g.Group("/messages")
	messages.Use(authMiddleware)
	{
		messages.GET("", h.Conversation)
		messages.POST("", h.Send)
	}

	chat := g.Group("/chat")
	chat.Use(authMiddleware)
	{
		chat.GET("/vet", h.Vet)
		chat.GET("/patients", vetMiddleware, h.Patients)
	}
}
