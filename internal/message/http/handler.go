package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pawhub/pet-care-backend/internal/auth"
	"github.com/pawhub/pet-care-backend/internal/message"
	"github.com/pawhub/pet-care-backend/internal/pkg/response"
	"github.com/pawhub/pet-care-backend/internal/user"
)

type Handler struct {
	service     message.Service
	userService user.Service
}

func NewHandler(service message.Service, userService user.Service) *Handler {
	return &Handler{
		service:     service,
		userService: userService,
	}
}

// Conversation returns the full thread between the caller and ?with=<id>.
func (h *Handler) Conversation(c *gin.Context) {
	other := c.Query("with")
	if _, err := uuid.Parse(other); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "with must be a valid user id"})
		return
	}

	messages, err := h.service.Conversation(c.Request.Context(), auth.GetUserID(c), other)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]MessageResponse, len(messages))
	for i, m := range messages {
		items[i] = NewMessageResponse(m)
	}

	c.JSON(http.StatusOK, items)
}

func (h *Handler) Send(c *gin.Context) {
	var body SendMessageBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	m, err := h.service.Send(c.Request.Context(), message.SendRequest{
		SenderID:    auth.GetUserID(c),
		RecipientID: body.RecipientID,
		BookingID:   body.BookingID,
		Content:     body.Content,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewMessageResponse(m))
}

// Vet resolves the veterinarian an owner chats with.
func (h *Handler) Vet(c *gin.Context) {
	vet, err := h.userService.FindVet(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewChatPartnerResponse(vet))
}

// Patients lists the vet's potential chat partners (route is vet-only).
func (h *Handler) Patients(c *gin.Context) {
	patients, err := h.userService.Patients(c.Request.Context(), auth.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]ChatPartnerResponse, len(patients))
	for i, p := range patients {
		items[i] = NewChatPartnerResponse(p)
	}

	c.JSON(http.StatusOK, items)
}
