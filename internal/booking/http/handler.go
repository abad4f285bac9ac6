package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pawhub/pet-care-backend/internal/auth"
	"github.com/pawhub/pet-care-backend/internal/booking"
	"github.com/pawhub/pet-care-backend/internal/pkg/response"
	"github.com/pawhub/pet-care-backend/internal/user"
)

type Handler struct {
	service booking.Service
}

func NewHandler(service booking.Service) *Handler {
	return &Handler{service: service}
}

// List returns the caller's bookings, or every booking when the caller is a
// vet. Both views are ordered by scheduled date.
func (h *Handler) List(c *gin.Context) {
	filter := booking.Filter{
		Status: c.Query("status"),
	}

	if auth.GetUserRole(c) != string(user.RoleVet) {
		filter.UserID = auth.GetUserID(c)
	}

	bookings, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		items[i] = NewBookingResponse(b)
	}

	c.JSON(http.StatusOK, items)
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateBookingBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	req := booking.CreateRequest{
		UserID:        auth.GetUserID(c),
		PetID:         body.PetID,
		ServiceType:   body.ServiceType,
		ScheduledDate: body.ScheduledDate,
		Notes:         body.Notes,
	}

	b, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewBookingResponse(b))
}

// CreateEmergency books an immediate video consult; no request body.
func (h *Handler) CreateEmergency(c *gin.Context) {
	b, err := h.service.CreateEmergency(c.Request.Context(), auth.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewBookingResponse(b))
}

func (h *Handler) Get(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	b, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	// Owners only see their own bookings; vets see all.
	if auth.GetUserRole(c) != string(user.RoleVet) && b.UserID != auth.GetUserID(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "permission denied"})
		return
	}

	c.JSON(http.StatusOK, NewBookingResponse(b))
}

// UpdateStatus is the vet-side transition endpoint (route is vet-only).
func (h *Handler) UpdateStatus(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	var body UpdateStatusBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	b, err := h.service.UpdateStatus(c.Request.Context(), id, booking.Status(body.Status), auth.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewBookingResponse(b))
}
