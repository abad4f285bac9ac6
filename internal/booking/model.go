package booking

import (
	"net/http"
	"time"

	"github.com/pawhub/pet-care-backend/internal/pkg/apperror"
)

var (
	ErrNotFound            = apperror.New(http.StatusNotFound, "booking not found")
	ErrInvalidStatus       = apperror.New(http.StatusBadRequest, "invalid booking status")
	ErrPetRequired         = apperror.New(http.StatusBadRequest, "pet selection is required")
	ErrServiceTypeRequired = apperror.New(http.StatusBadRequest, "service type is required")
	ErrDateRequired        = apperror.New(http.StatusBadRequest, "scheduled date is required")
	ErrPetNotFound         = apperror.New(http.StatusNotFound, "pet not found")
	ErrNoPets              = apperror.New(http.StatusBadRequest, "add a pet first")
	ErrPermissionDenied    = apperror.New(http.StatusForbidden, "permission denied")
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// Valid reports whether s is a member of the status enumeration. Any valid
// status may follow any other; there is deliberately no transition graph.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// EmergencyServiceType is the display label written on emergency consults.
// Classification itself rides the IsEmergency column, not this string.
const EmergencyServiceType = "Emergency Video Consult"

// emergencyNotes is the synthesized note on one-click emergency bookings.
const emergencyNotes = "URGENT: Immediate video consultation requested for my pet."

// Booking is one veterinary appointment request. UserID and PetID are fixed
// at creation; VetID is set by the first vet acting on the booking.
// CallReference is only ever populated on emergency bookings once confirmed,
// and never cleared afterwards.
type Booking struct {
	ID            string
	UserID        string
	UserEmail     string
	PetID         *string
	PetName       *string
	VetID         *string
	ServiceType   string
	IsEmergency   bool
	ScheduledDate time.Time
	Status        Status
	Notes         string
	CallReference *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Filter narrows booking listings. An empty UserID lists all bookings
// (the vet-side view); owners always pass their own id.
type Filter struct {
	UserID string
	Status string
}
