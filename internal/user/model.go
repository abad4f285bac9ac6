package user

import (
	"net/http"
	"time"

	"github.com/pawhub/pet-care-backend/internal/pkg/apperror"
)

var (
	ErrNotFound           = apperror.New(http.StatusNotFound, "user not found")
	ErrEmailAlreadyUsed   = apperror.New(http.StatusConflict, "email already used")
	ErrInvalidCredentials = apperror.New(http.StatusUnauthorized, "invalid email or password")
	ErrEmailRequired      = apperror.New(http.StatusBadRequest, "email is required")
	ErrPasswordTooShort   = apperror.New(http.StatusBadRequest, "password is too short")
	ErrInvalidRole        = apperror.New(http.StatusBadRequest, "role must be owner or vet")
	ErrVetNotFound        = apperror.New(http.StatusNotFound, "no veterinarian registered yet")
)

// Role is the account role stored in public.user_roles.
type Role string

const (
	RoleOwner Role = "owner"
	RoleVet   Role = "vet"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleOwner || r == RoleVet
}

// User is a profile row joined with its role. ClinicName is only set for
// veterinarian accounts.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Role         Role
	ClinicName   *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
