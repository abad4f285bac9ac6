package http

import (
	"time"

	"github.com/pawhub/pet-care-backend/internal/booking"
)

type BookingResponse struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	UserEmail     string    `json:"user_email"`
	PetID         *string   `json:"pet_id,omitempty"`
	PetName       *string   `json:"pet_name,omitempty"`
	VetID         *string   `json:"vet_id,omitempty"`
	ServiceType   string    `json:"service_type"`
	IsEmergency   bool      `json:"is_emergency"`
	ScheduledDate time.Time `json:"scheduled_date"`
	Status        string    `json:"status"`
	Notes         string    `json:"notes,omitempty"`
	CallReference *string   `json:"call_reference,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func NewBookingResponse(b *booking.Booking) BookingResponse {
	return BookingResponse{
		ID:            b.ID,
		UserID:        b.UserID,
		UserEmail:     b.UserEmail,
		PetID:         b.PetID,
		PetName:       b.PetName,
		VetID:         b.VetID,
		ServiceType:   b.ServiceType,
		IsEmergency:   b.IsEmergency,
		ScheduledDate: b.ScheduledDate,
		Status:        string(b.Status),
		Notes:         b.Notes,
		CallReference: b.CallReference,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

type CreateBookingBody struct {
	PetID         string    `json:"pet_id" binding:"required,uuid"`
	ServiceType   string    `json:"service_type" binding:"required"`
	ScheduledDate time.Time `json:"scheduled_date" binding:"required"`
	Notes         string    `json:"notes"`
}

type UpdateStatusBody struct {
	Status string `json:"status" binding:"required,oneof=pending confirmed completed cancelled"`
}
