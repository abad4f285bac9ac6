package booking

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pawhub/pet-care-backend/internal/pet"
)

type CreateRequest struct {
	UserID        string
	PetID         string
	ServiceType   string
	ScheduledDate time.Time
	Notes         string
}

type Service interface {
	// Create books a regular appointment. PetID, ServiceType and
	// ScheduledDate are required; nothing is written when validation fails.
	Create(ctx context.Context, req CreateRequest) (*Booking, error)

	// CreateEmergency books an immediate video consult with no form input.
	// The owner's first registered pet is attached; owners without pets are
	// rejected. The call reference is NOT generated here; it appears on
	// first confirmation.
	CreateEmergency(ctx context.Context, userID string) (*Booking, error)

	GetByID(ctx context.Context, id string) (*Booking, error)
	List(ctx context.Context, filter Filter) ([]*Booking, error)

	// UpdateStatus moves a booking to any valid status and records the
	// acting vet. Confirming an emergency for the first time also generates
	// its call reference; an existing reference is never regenerated.
	UpdateStatus(ctx context.Context, id string, newStatus Status, vetID string) (*Booking, error)
}

type service struct {
	repo        Repository
	petService  pet.Service
	callBaseURL string
}

func NewService(repo Repository, petService pet.Service, callBaseURL string) Service {
	return &service{
		repo:        repo,
		petService:  petService,
		callBaseURL: strings.TrimRight(callBaseURL, "/"),
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Booking, error) {
	if strings.TrimSpace(req.PetID) == "" {
		return nil, ErrPetRequired
	}
	if strings.TrimSpace(req.ServiceType) == "" {
		return nil, ErrServiceTypeRequired
	}
	if req.ScheduledDate.IsZero() {
		return nil, ErrDateRequired
	}

	// The pet must exist and belong to the booking owner.
	if _, err := s.petService.GetOwned(ctx, req.PetID, req.UserID); err != nil {
		switch {
		case errors.Is(err, pet.ErrNotFound):
			return nil, ErrPetNotFound
		case errors.Is(err, pet.ErrPermissionDenied):
			return nil, ErrPetNotFound
		default:
			return nil, err
		}
	}

	petID := req.PetID
	b := &Booking{
		UserID:        req.UserID,
		PetID:         &petID,
		ServiceType:   strings.TrimSpace(req.ServiceType),
		ScheduledDate: req.ScheduledDate,
		Status:        StatusPending,
		Notes:         req.Notes,
	}

	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}

func (s *service) CreateEmergency(ctx context.Context, userID string) (*Booking, error) {
	pets, err := s.petService.ListByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(pets) == 0 {
		return nil, ErrNoPets
	}

	petID := pets[0].ID
	b := &Booking{
		UserID:        userID,
		PetID:         &petID,
		ServiceType:   EmergencyServiceType,
		IsEmergency:   true,
		ScheduledDate: time.Now().UTC(),
		Status:        StatusPending,
		Notes:         emergencyNotes,
	}

	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Booking, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Booking, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) UpdateStatus(ctx context.Context, id string, newStatus Status, vetID string) (*Booking, error) {
	if !newStatus.Valid() {
		return nil, ErrInvalidStatus
	}

	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// The call reference exists exactly when an emergency booking has been
	// confirmed at least once; the link may already be shared with the
	// owner, so an issued reference must never be replaced. The candidate
	// minted here only lands if no reference is stored yet (the repository
	// coalesces), which keeps racing confirms on one link.
	var callRef *string
	if b.IsEmergency && newStatus == StatusConfirmed && b.CallReference == nil {
		ref := s.newCallReference()
		callRef = &ref
	}

	stored, err := s.repo.UpdateStatus(ctx, id, newStatus, vetID, callRef)
	if err != nil {
		return nil, err
	}

	b.Status = newStatus
	b.VetID = &vetID
	b.CallReference = stored

	return b, nil
}

// newCallReference mints an opaque video-session URL. The id is random, not
// cryptographically reserved; collisions are treated as negligible.
func (s *service) newCallReference() string {
	return s.callBaseURL + "/call/" + uuid.NewString()
}
