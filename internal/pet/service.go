package pet

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/pawhub/pet-care-backend/internal/pkg/storage"
)

type CreateRequest struct {
	UserID      string
	Name        string
	Species     string
	Breed       *string
	DateOfBirth *time.Time
	Weight      *float64
}

type UpdateRequest struct {
	Name        *string
	Species     *string
	Breed       *string
	DateOfBirth *time.Time
	Weight      *float64
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Pet, error)
	GetOwned(ctx context.Context, id, ownerID string) (*Pet, error)
	ListByOwner(ctx context.Context, userID string) ([]*Pet, error)
	Update(ctx context.Context, id string, req UpdateRequest, ownerID string) (*Pet, error)
	Delete(ctx context.Context, id, ownerID string) error

	// UploadPhoto stores a resized copy of the image and records its public
	// URL on the pet. Returns the URL.
	UploadPhoto(ctx context.Context, id, ownerID string, content io.Reader) (string, error)
}

type service struct {
	repo      Repository
	store     storage.Storage
	processor *storage.ImageProcessor
}

func NewService(repo Repository, store storage.Storage, processor *storage.ImageProcessor) Service {
	return &service{
		repo:      repo,
		store:     store,
		processor: processor,
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Pet, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrNameRequired
	}
	if strings.TrimSpace(req.Species) == "" {
		return nil, ErrSpeciesRequired
	}

	p := &Pet{
		UserID:      req.UserID,
		Name:        strings.TrimSpace(req.Name),
		Species:     strings.TrimSpace(req.Species),
		Breed:       req.Breed,
		DateOfBirth: req.DateOfBirth,
		Weight:      req.Weight,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

// GetOwned fetches a pet and verifies it belongs to ownerID.
func (s *service) GetOwned(ctx context.Context, id, ownerID string) (*Pet, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.UserID != ownerID {
		return nil, ErrPermissionDenied
	}
	return p, nil
}

func (s *service) ListByOwner(ctx context.Context, userID string) ([]*Pet, error) {
	return s.repo.ListByOwner(ctx, userID)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest, ownerID string) (*Pet, error) {
	p, err := s.GetOwned(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, ErrNameRequired
		}
		p.Name = strings.TrimSpace(*req.Name)
	}
	if req.Species != nil {
		if strings.TrimSpace(*req.Species) == "" {
			return nil, ErrSpeciesRequired
		}
		p.Species = strings.TrimSpace(*req.Species)
	}
	if req.Breed != nil {
		p.Breed = req.Breed
	}
	if req.DateOfBirth != nil {
		p.DateOfBirth = req.DateOfBirth
	}
	if req.Weight != nil {
		p.Weight = req.Weight
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

func (s *service) Delete(ctx context.Context, id, ownerID string) error {
	if _, err := s.GetOwned(ctx, id, ownerID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *service) UploadPhoto(ctx context.Context, id, ownerID string, content io.Reader) (string, error) {
	p, err := s.GetOwned(ctx, id, ownerID)
	if err != nil {
		return "", err
	}

	resized, err := s.processor.ResizeToJPEG(content, 1000, 1000)
	if err != nil {
		return "", ErrInvalidPhoto
	}

	path := "pets/" + p.ID + ".jpg"
	if err := s.store.Save(ctx, path, resized); err != nil {
		return "", err
	}

	url := "/uploads/" + path
	if err := s.repo.SetPhotoURL(ctx, p.ID, url); err != nil {
		// Keep storage consistent with the DB if the reference write fails.
		_ = s.store.Delete(ctx, path)
		return "", err
	}

	return url, nil
}
