package http

import (
	"time"

	"github.com/pawhub/pet-care-backend/internal/pet"
)

type PetResponse struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Species     string     `json:"species"`
	Breed       *string    `json:"breed,omitempty"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
	Weight      *float64   `json:"weight,omitempty"`
	PhotoURL    *string    `json:"photo_url,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func NewPetResponse(p *pet.Pet) PetResponse {
	return PetResponse{
		ID:          p.ID,
		Name:        p.Name,
		Species:     p.Species,
		Breed:       p.Breed,
		DateOfBirth: p.DateOfBirth,
		Weight:      p.Weight,
		PhotoURL:    p.PhotoURL,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

type CreatePetBody struct {
	Name        string     `json:"name" binding:"required"`
	Species     string     `json:"species" binding:"required"`
	Breed       *string    `json:"breed"`
	DateOfBirth *time.Time `json:"date_of_birth"`
	Weight      *float64   `json:"weight"`
}

type UpdatePetBody struct {
	Name        *string    `json:"name"`
	Species     *string    `json:"species"`
	Breed       *string    `json:"breed"`
	DateOfBirth *time.Time `json:"date_of_birth"`
	Weight      *float64   `json:"weight"`
}

type UploadPhotoResponse struct {
	PhotoURL string `json:"photo_url"`
}
