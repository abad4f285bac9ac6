package vaccination

import (
	"context"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pawhub/pet-care-backend/internal/pet"
)

type fakeRepository struct {
	schedules map[string]*Schedule
	seq       int
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{schedules: make(map[string]*Schedule)}
}

func (r *fakeRepository) Create(_ context.Context, s *Schedule) error {
	r.seq++
	s.ID = fmt.Sprintf("sched-%d", r.seq)
	s.CreatedAt = time.Now().UTC()
	s.UpdatedAt = s.CreatedAt
	copied := *s
	r.schedules[s.ID] = &copied
	return nil
}

func (r *fakeRepository) GetByID(_ context.Context, id string) (*Schedule, error) {
	s, ok := r.schedules[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *s
	return &copied, nil
}

func (r *fakeRepository) ListByOwner(_ context.Context, _ string) ([]*Schedule, error) {
	var out []*Schedule
	for _, s := range r.schedules {
		copied := *s
		out = append(out, &copied)
	}
	return out, nil
}

func (r *fakeRepository) ListByPet(_ context.Context, petID string) ([]*Schedule, error) {
	var out []*Schedule
	for _, s := range r.schedules {
		if s.PetID == petID {
			copied := *s
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeRepository) UpdateStatus(_ context.Context, id string, status Status) error {
	s, ok := r.schedules[id]
	if !ok {
		return ErrNotFound
	}
	s.Status = status
	return nil
}

type fakePetService struct {
	owners map[string]string // pet id -> owner id
}

func (s *fakePetService) Create(context.Context, pet.CreateRequest) (*pet.Pet, error) {
	panic("not used")
}

func (s *fakePetService) GetOwned(_ context.Context, id, ownerID string) (*pet.Pet, error) {
	owner, ok := s.owners[id]
	if !ok {
		return nil, pet.ErrNotFound
	}
	if owner != ownerID {
		return nil, pet.ErrPermissionDenied
	}
	return &pet.Pet{ID: id, UserID: owner}, nil
}

func (s *fakePetService) ListByOwner(context.Context, string) ([]*pet.Pet, error) {
	panic("not used")
}

func (s *fakePetService) Update(context.Context, string, pet.UpdateRequest, string) (*pet.Pet, error) {
	panic("not used")
}

func (s *fakePetService) Delete(context.Context, string, string) error {
	panic("not used")
}

func (s *fakePetService) UploadPhoto(context.Context, string, string, io.Reader) (string, error) {
	panic("not used")
}

func newTestService(repo Repository) Service {
	return NewService(repo, &fakePetService{owners: map[string]string{
		"pet-1": "owner-1",
		"pet-2": "owner-2",
	}})
}

func TestCreateSchedule(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepository()
	svc := newTestService(repo)

	date := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)

	s, err := svc.Create(ctx, CreateRequest{
		OwnerID:       "owner-1",
		PetID:         "pet-1",
		VaccineName:   " Rabies ",
		ScheduledDate: date,
	})
	require.NoError(t, err)

	assert.Equal(t, "Rabies", s.VaccineName)
	assert.Equal(t, StatusPending, s.Status)

	_, err = svc.Create(ctx, CreateRequest{OwnerID: "owner-1", PetID: "pet-1", VaccineName: " ", ScheduledDate: date})
	assert.ErrorIs(t, err, ErrVaccineNameRequired)

	_, err = svc.Create(ctx, CreateRequest{OwnerID: "owner-1", PetID: "pet-1", VaccineName: "Rabies"})
	assert.ErrorIs(t, err, ErrDateRequired)

	// Someone else's pet is indistinguishable from a missing one.
	_, err = svc.Create(ctx, CreateRequest{OwnerID: "owner-1", PetID: "pet-2", VaccineName: "Rabies", ScheduledDate: date})
	assert.ErrorIs(t, err, ErrPetNotFound)

	_, err = svc.Create(ctx, CreateRequest{OwnerID: "owner-1", PetID: "pet-x", VaccineName: "Rabies", ScheduledDate: date})
	assert.ErrorIs(t, err, ErrPetNotFound)
}

func TestUpdateScheduleStatus(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepository()
	svc := newTestService(repo)

	s, err := svc.Create(ctx, CreateRequest{
		OwnerID:       "owner-1",
		PetID:         "pet-1",
		VaccineName:   "Rabies",
		ScheduledDate: time.Now().UTC(),
	})
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(ctx, "owner-1", s.ID, StatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, updated.Status)

	_, err = svc.UpdateStatus(ctx, "owner-1", s.ID, Status("done"))
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = svc.UpdateStatus(ctx, "owner-2", s.ID, StatusCompleted)
	assert.ErrorIs(t, err, ErrPetNotFound)

	_, err = svc.UpdateStatus(ctx, "owner-1", "missing", StatusCompleted)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListByPetChecksOwnership(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepository()
	svc := newTestService(repo)

	_, err := svc.Create(ctx, CreateRequest{
		OwnerID:       "owner-1",
		PetID:         "pet-1",
		VaccineName:   "Rabies",
		ScheduledDate: time.Now().UTC(),
	})
	require.NoError(t, err)

	schedules, err := svc.ListByPet(ctx, "owner-1", "pet-1")
	require.NoError(t, err)
	assert.Len(t, schedules, 1)

	_, err = svc.ListByPet(ctx, "owner-2", "pet-1")
	assert.ErrorIs(t, err, ErrPetNotFound)
}
