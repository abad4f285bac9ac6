package vaccination

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/pawhub/pet-care-backend/internal/pet"
)

type CreateRequest struct {
	OwnerID       string
	PetID         string
	VaccineName   string
	ScheduledDate time.Time
	Notes         *string
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Schedule, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*Schedule, error)
	ListByPet(ctx context.Context, ownerID, petID string) ([]*Schedule, error)
	UpdateStatus(ctx context.Context, ownerID, id string, status Status) (*Schedule, error)
}

type service struct {
	repo       Repository
	petService pet.Service
}

func NewService(repo Repository, petService pet.Service) Service {
	return &service{
		repo:       repo,
		petService: petService,
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Schedule, error) {
	if strings.TrimSpace(req.VaccineName) == "" {
		return nil, ErrVaccineNameRequired
	}
	if req.ScheduledDate.IsZero() {
		return nil, ErrDateRequired
	}

	if err := s.checkPetOwnership(ctx, req.PetID, req.OwnerID); err != nil {
		return nil, err
	}

	schedule := &Schedule{
		PetID:         req.PetID,
		VaccineName:   strings.TrimSpace(req.VaccineName),
		ScheduledDate: req.ScheduledDate,
		Status:        StatusPending,
		Notes:         req.Notes,
	}

	if err := s.repo.Create(ctx, schedule); err != nil {
		return nil, err
	}

	return schedule, nil
}

func (s *service) ListByOwner(ctx context.Context, ownerID string) ([]*Schedule, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

func (s *service) ListByPet(ctx context.Context, ownerID, petID string) ([]*Schedule, error) {
	if err := s.checkPetOwnership(ctx, petID, ownerID); err != nil {
		return nil, err
	}
	return s.repo.ListByPet(ctx, petID)
}

func (s *service) UpdateStatus(ctx context.Context, ownerID, id string, status Status) (*Schedule, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	schedule, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.checkPetOwnership(ctx, schedule.PetID, ownerID); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}

	schedule.Status = status
	return schedule, nil
}

func (s *service) checkPetOwnership(ctx context.Context, petID, ownerID string) error {
	if _, err := s.petService.GetOwned(ctx, petID, ownerID); err != nil {
		if errors.Is(err, pet.ErrNotFound) || errors.Is(err, pet.ErrPermissionDenied) {
			return ErrPetNotFound
		}
		return err
	}
	return nil
}
