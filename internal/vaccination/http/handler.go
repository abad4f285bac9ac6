package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pawhub/pet-care-backend/internal/auth"
	"github.com/pawhub/pet-care-backend/internal/pkg/response"
	"github.com/pawhub/pet-care-backend/internal/vaccination"
)

type Handler struct {
	service vaccination.Service
}

func NewHandler(service vaccination.Service) *Handler {
	return &Handler{service: service}
}

// List returns every schedule across the caller's pets, or only one
// pet's when ?pet_id= is given.
func (h *Handler) List(c *gin.Context) {
	ownerID := auth.GetUserID(c)

	var (
		schedules []*vaccination.Schedule
		err       error
	)
	if petID := c.Query("pet_id"); petID != "" {
		if _, parseErr := uuid.Parse(petID); parseErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "pet_id must be a valid uuid"})
			return
		}
		schedules, err = h.service.ListByPet(c.Request.Context(), ownerID, petID)
	} else {
		schedules, err = h.service.ListByOwner(c.Request.Context(), ownerID)
	}
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]ScheduleResponse, len(schedules))
	for i, s := range schedules {
		items[i] = NewScheduleResponse(s)
	}

	c.JSON(http.StatusOK, items)
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateScheduleBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	schedule, err := h.service.Create(c.Request.Context(), vaccination.CreateRequest{
		OwnerID:       auth.GetUserID(c),
		PetID:         body.PetID,
		VaccineName:   body.VaccineName,
		ScheduledDate: body.ScheduledDate,
		Notes:         body.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewScheduleResponse(schedule))
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid schedule id"})
		return
	}

	var body UpdateStatusBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	schedule, err := h.service.UpdateStatus(
		c.Request.Context(), auth.GetUserID(c), id, vaccination.Status(body.Status),
	)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewScheduleResponse(schedule))
}
