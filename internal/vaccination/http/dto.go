package http

import (
	"time"

	"github.com/pawhub/pet-care-backend/internal/vaccination"
)

type ScheduleResponse struct {
	ID            string    `json:"id"`
	PetID         string    `json:"pet_id"`
	VaccineName   string    `json:"vaccine_name"`
	ScheduledDate time.Time `json:"scheduled_date"`
	Status        string    `json:"status"`
	Notes         *string   `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func NewScheduleResponse(s *vaccination.Schedule) ScheduleResponse {
	return ScheduleResponse{
		ID:            s.ID,
		PetID:         s.PetID,
		VaccineName:   s.VaccineName,
		ScheduledDate: s.ScheduledDate,
		Status:        string(s.Status),
		Notes:         s.Notes,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}

type CreateScheduleBody struct {
	PetID         string    `json:"pet_id" binding:"required,uuid"`
	VaccineName   string    `json:"vaccine_name" binding:"required"`
	ScheduledDate time.Time `json:"scheduled_date" binding:"required"`
	Notes         *string   `json:"notes"`
}

type UpdateStatusBody struct {
	Status string `json:"status" binding:"required,oneof=pending completed overdue"`
}
