package pet

import (
	"net/http"
	"time"

	"github.com/pawhub/pet-care-backend/internal/pkg/apperror"
)

var (
	ErrNotFound         = apperror.New(http.StatusNotFound, "pet not found")
	ErrNameRequired     = apperror.New(http.StatusBadRequest, "pet name is required")
	ErrSpeciesRequired  = apperror.New(http.StatusBadRequest, "species is required")
	ErrPermissionDenied = apperror.New(http.StatusForbidden, "permission denied")
	ErrInvalidPhoto     = apperror.New(http.StatusBadRequest, "photo must be a valid image")
)

// Pet is one registered animal, always owned by a single user.
type Pet struct {
	ID          string
	UserID      string
	Name        string
	Species     string
	Breed       *string
	DateOfBirth *time.Time
	Weight      *float64
	PhotoURL    *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
