package vaccination

import (
	"net/http"
	"time"

	"github.com/pawhub/pet-care-backend/internal/pkg/apperror"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusOverdue   Status = "overdue"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusCompleted, StatusOverdue:
		return true
	}
	return false
}

type Schedule struct {
	ID            string
	PetID         string
	VaccineName   string
	ScheduledDate time.Time
	Status        Status
	Notes         *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

var (
	ErrNotFound            = apperror.New(http.StatusNotFound, "vaccination schedule not found")
	ErrVaccineNameRequired = apperror.New(http.StatusBadRequest, "vaccine name is required")
	ErrDateRequired        = apperror.New(http.StatusBadRequest, "scheduled date is required")
	ErrInvalidStatus       = apperror.New(http.StatusBadRequest, "invalid vaccination status")
	ErrPetNotFound         = apperror.New(http.StatusBadRequest, "pet not found or not yours")
)
