package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/pawhub/pet-care-backend/internal/assistant"
	"github.com/pawhub/pet-care-backend/internal/auth"
	"github.com/pawhub/pet-care-backend/internal/pkg/response"
)

type Handler struct {
	assistant *assistant.Assistant
}

func NewHandler(a *assistant.Assistant) *Handler {
	return &Handler{assistant: a}
}

func (h *Handler) Chat(c *gin.Context) {
	var body ChatBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	reply, err := h.assistant.Reply(c.Request.Context(), auth.GetUserID(c), strings.TrimSpace(body.Message))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, ChatResponse{Reply: reply})
}

func (h *Handler) EndChat(c *gin.Context) {
	h.assistant.EndSession(auth.GetUserID(c))
	c.Status(http.StatusNoContent)
}
