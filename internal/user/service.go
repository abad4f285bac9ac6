package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pawhub/pet-care-backend/internal/auth"
)

// Service defines business logic related to accounts.
type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*User, error)
	Login(ctx context.Context, email, password string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)

	// FindVet resolves the veterinarian an owner chats with. The original
	// product pairs every owner with the first vet on file.
	FindVet(ctx context.Context) (*User, error)

	// Patients lists everyone except the given vet, for the vet-side chat
	// partner picker.
	Patients(ctx context.Context, vetID string) ([]*User, error)
}

// RegisterRequest carries validated-at-the-service registration input.
type RegisterRequest struct {
	Email      string
	Password   string
	Role       Role
	ClinicName string
}

type service struct {
	repo   Repository
	hasher auth.PasswordHasher

	minPasswordLength int
}

// NewService creates a new user Service.
func NewService(repo Repository, hasher auth.PasswordHasher) Service {
	return &service{
		repo:              repo,
		hasher:            hasher,
		minPasswordLength: 8,
	}
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	cleanEmail := normalizeEmail(req.Email)
	if cleanEmail == "" {
		return nil, ErrEmailRequired
	}

	if len(req.Password) < s.minPasswordLength {
		return nil, ErrPasswordTooShort
	}

	if !req.Role.Valid() {
		return nil, ErrInvalidRole
	}

	// Check if email is already used.
	_, err := s.repo.GetByEmail(ctx, cleanEmail)
	if err == nil {
		return nil, ErrEmailAlreadyUsed
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing email: %w", err)
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	var clinicNamePtr *string
	if req.Role == RoleVet && strings.TrimSpace(req.ClinicName) != "" {
		n := strings.TrimSpace(req.ClinicName)
		clinicNamePtr = &n
	}

	u := &User{
		Email:        cleanEmail,
		PasswordHash: hash,
		Role:         req.Role,
		ClinicName:   clinicNamePtr,
	}

	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}

	return u, nil
}

func (s *service) Login(ctx context.Context, email, password string) (*User, error) {
	cleanEmail := normalizeEmail(email)
	if cleanEmail == "" || strings.TrimSpace(password) == "" {
		return nil, ErrInvalidCredentials
	}

	u, err := s.repo.GetByEmail(ctx, cleanEmail)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to fetch user by email: %w", err)
	}

	if err := s.hasher.Compare(u.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}

	return u, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) FindVet(ctx context.Context) (*User, error) {
	return s.repo.FindFirstVet(ctx)
}

func (s *service) Patients(ctx context.Context, vetID string) ([]*User, error) {
	return s.repo.ListOthers(ctx, vetID)
}

// normalizeEmail trims spaces and lowercases the email.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
