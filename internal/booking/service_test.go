package booking

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pawhub/pet-care-backend/internal/pet"
)

// fakeRepository keeps bookings in memory and counts writes. getDelay
// widens the window between a read and the following status write.
type fakeRepository struct {
	mu       sync.Mutex
	bookings map[string]*Booking
	creates  int
	updates  int
	getDelay time.Duration
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{bookings: make(map[string]*Booking)}
}

func (r *fakeRepository) Create(_ context.Context, b *Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.creates++
	b.ID = fmt.Sprintf("booking-%d", r.creates)
	b.CreatedAt = time.Now().UTC()
	b.UpdatedAt = b.CreatedAt
	copied := *b
	r.bookings[b.ID] = &copied
	return nil
}

func (r *fakeRepository) GetByID(_ context.Context, id string) (*Booking, error) {
	r.mu.Lock()
	b, ok := r.bookings[id]
	if !ok {
		r.mu.Unlock()
		return nil, ErrNotFound
	}
	copied := *b
	r.mu.Unlock()

	if r.getDelay > 0 {
		time.Sleep(r.getDelay)
	}
	return &copied, nil
}

func (r *fakeRepository) List(_ context.Context, filter Filter) ([]*Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*Booking
	for _, b := range r.bookings {
		if filter.UserID != "" && b.UserID != filter.UserID {
			continue
		}
		if filter.Status != "" && string(b.Status) != filter.Status {
			continue
		}
		copied := *b
		out = append(out, &copied)
	}
	return out, nil
}

func (r *fakeRepository) UpdateStatus(_ context.Context, id string, status Status, vetID string, callRef *string) (*string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok {
		return nil, ErrNotFound
	}
	r.updates++
	b.Status = status
	b.VetID = &vetID
	// Mirrors the COALESCE in the SQL statement: a stored reference wins.
	if callRef != nil && b.CallReference == nil {
		b.CallReference = callRef
	}
	return b.CallReference, nil
}

// fakePetService serves a fixed set of pets per owner.
type fakePetService struct {
	pets map[string][]*pet.Pet
}

func (s *fakePetService) Create(context.Context, pet.CreateRequest) (*pet.Pet, error) {
	panic("not used")
}

func (s *fakePetService) GetOwned(_ context.Context, id, ownerID string) (*pet.Pet, error) {
	for _, p := range s.pets[ownerID] {
		if p.ID == id {
			return p, nil
		}
	}
	for _, pets := range s.pets {
		for _, p := range pets {
			if p.ID == id {
				return nil, pet.ErrPermissionDenied
			}
		}
	}
	return nil, pet.ErrNotFound
}

func (s *fakePetService) ListByOwner(_ context.Context, userID string) ([]*pet.Pet, error) {
	return s.pets[userID], nil
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

const callBase = "https://meet.example.com"

func newTestService(repo *fakeRepository, pets map[string][]*pet.Pet) Service {
	return NewService(repo, &fakePetService{pets: pets}, callBase)
}

func TestCreateBookingValidation(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepository()
	svc := newTestService(repo, map[string][]*pet.Pet{
		"owner-1": {{ID: "pet-1", UserID: "owner-1", Name: "Mochi"}},
	})

	date := time.Date(2026, 9, 10, 14, 0, 0, 0, time.UTC)

	cases := []struct {
		name    string
		req     CreateRequest
		wantErr error
	}{
		{
			name:    "missing pet",
			req:     CreateRequest{UserID: "owner-1", ServiceType: "Checkup", ScheduledDate: date},
			wantErr: ErrPetRequired,
		},
		{
			name:    "missing service type",
			req:     CreateRequest{UserID: "owner-1", PetID: "pet-1", ScheduledDate: date},
			wantErr: ErrServiceTypeRequired,
		},
		{
			name:    "missing date",
			req:     CreateRequest{UserID: "owner-1", PetID: "pet-1", ServiceType: "Checkup"},
			wantErr: ErrDateRequired,
		},
		{
			name:    "unknown pet",
			req:     CreateRequest{UserID: "owner-1", PetID: "pet-x", ServiceType: "Checkup", ScheduledDate: date},
			wantErr: ErrPetNotFound,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tc.req)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}

	// No failed request may leave a partial booking behind.
	assert.Equal(t, 0, repo.creates, "validation failures must not write")
}

func TestCreateBookingRejectsForeignPet(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepository()
	svc := newTestService(repo, map[string][]*pet.Pet{
		"owner-1": {{ID: "pet-1", UserID: "owner-1", Name: "Mochi"}},
		"owner-2": {{ID: "pet-2", UserID: "owner-2", Name: "Taro"}},
	})

	_, err := svc.Create(ctx, CreateRequest{
		UserID:        "owner-1",
		PetID:         "pet-2",
		ServiceType:   "Checkup",
		ScheduledDate: time.Now().UTC(),
	})
	assert.ErrorIs(t, err, ErrPetNotFound)
	assert.Equal(t, 0, repo.creates)
}

func TestCreateBookingDefaults(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepository()
	svc := newTestService(repo, map[string][]*pet.Pet{
		"owner-1": {{ID: "pet-1", UserID: "owner-1", Name: "Mochi"}},
	})

	b, err := svc.Create(ctx, CreateRequest{
		UserID:        "owner-1",
		PetID:         "pet-1",
		ServiceType:   "  Grooming  ",
		ScheduledDate: time.Date(2026, 9, 10, 14, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.Equal(t, StatusPending, b.Status)
	assert.Equal(t, "Grooming", b.ServiceType)
	assert.False(t, b.IsEmergency)
	assert.Nil(t, b.CallReference, "regular bookings never get a call reference at creation")
}

func TestCreateEmergency(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepository()
	svc := newTestService(repo, map[string][]*pet.Pet{
		"owner-1": {
			{ID: "pet-1", UserID: "owner-1", Name: "Mochi"},
			{ID: "pet-2", UserID: "owner-1", Name: "Taro"},
		},
	})

	b, err := svc.CreateEmergency(ctx, "owner-1")
	require.NoError(t, err)

	assert.True(t, b.IsEmergency)
	assert.Equal(t, EmergencyServiceType, b.ServiceType)
	assert.Equal(t, StatusPending, b.Status)
	require.NotNil(t, b.PetID)
	assert.Equal(t, "pet-1", *b.PetID, "first registered pet is attached")
	assert.Nil(t, b.CallReference, "call reference appears only on confirmation")
	assert.NotEmpty(t, b.Notes)
}

func TestCreateEmergencyWithoutPets(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepository()
	svc := newTestService(repo, map[string][]*pet.Pet{})

	_, err := svc.CreateEmergency(ctx, "owner-1")
	assert.ErrorIs(t, err, ErrNoPets)
	assert.Equal(t, 0, repo.creates)
}

func TestConfirmEmergencyGeneratesCallReferenceOnce(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepository()
	svc := newTestService(repo, map[string][]*pet.Pet{
		"owner-1": {{ID: "pet-1", UserID: "owner-1", Name: "Mochi"}},
	})

	b, err := svc.CreateEmergency(ctx, "owner-1")
	require.NoError(t, err)

	// First confirmation mints the reference.
	confirmed, err := svc.UpdateStatus(ctx, b.ID, StatusConfirmed, "vet-1")
	require.NoError(t, err)
	require.NotNil(t, confirmed.CallReference)
	assert.True(t, strings.HasPrefix(*confirmed.CallReference, callBase+"/call/"))
	firstRef := *confirmed.CallReference

	// Re-confirming keeps the original value.
	again, err := svc.UpdateStatus(ctx, b.ID, StatusConfirmed, "vet-2")
	require.NoError(t, err)
	require.NotNil(t, again.CallReference)
	assert.Equal(t, firstRef, *again.CallReference, "an issued reference is never regenerated")

	// Later transitions keep it too.
	done, err := svc.UpdateStatus(ctx, b.ID, StatusCompleted, "vet-1")
	require.NoError(t, err)
	require.NotNil(t, done.CallReference)
	assert.Equal(t, firstRef, *done.CallReference)
}

func TestConcurrentConfirmsConvergeOnOneCallReference(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepository()
	repo.getDelay = 20 * time.Millisecond
	svc := newTestService(repo, map[string][]*pet.Pet{
		"owner-1": {{ID: "pet-1", UserID: "owner-1", Name: "Mochi"}},
	})

	b, err := svc.CreateEmergency(ctx, "owner-1")
	require.NoError(t, err)

	// Two vets confirm at once; both reads observe no reference yet.
	type result struct {
		booking *Booking
		err     error
	}
	results := make(chan result, 2)

	var wg sync.WaitGroup
	for _, vetID := range []string{"vet-1", "vet-2"} {
		wg.Add(1)
		go func(vetID string) {
			defer wg.Done()
			got, err := svc.UpdateStatus(ctx, b.ID, StatusConfirmed, vetID)
			results <- result{booking: got, err: err}
		}(vetID)
	}
	wg.Wait()
	close(results)

	refs := make(map[string]struct{})
	for res := range results {
		require.NoError(t, res.err)
		require.NotNil(t, res.booking.CallReference)
		refs[*res.booking.CallReference] = struct{}{}
	}
	assert.Len(t, refs, 1, "racing confirms must converge on a single link")

	// The stored reference is the one both callers saw.
	stored, err := svc.GetByID(ctx, b.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.CallReference)
	_, ok := refs[*stored.CallReference]
	assert.True(t, ok)
}

func TestConfirmRegularBookingHasNoCallReference(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepository()
	svc := newTestService(repo, map[string][]*pet.Pet{
		"owner-1": {{ID: "pet-1", UserID: "owner-1", Name: "Mochi"}},
	})

	b, err := svc.Create(ctx, CreateRequest{
		UserID:        "owner-1",
		PetID:         "pet-1",
		ServiceType:   "Checkup",
		ScheduledDate: time.Now().UTC(),
	})
	require.NoError(t, err)

	confirmed, err := svc.UpdateStatus(ctx, b.ID, StatusConfirmed, "vet-1")
	require.NoError(t, err)
	assert.Nil(t, confirmed.CallReference, "only emergencies carry a call reference")
}

func TestUpdateStatusValidation(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepository()
	svc := newTestService(repo, map[string][]*pet.Pet{
		"owner-1": {{ID: "pet-1", UserID: "owner-1", Name: "Mochi"}},
	})

	b, err := svc.Create(ctx, CreateRequest{
		UserID:        "owner-1",
		PetID:         "pet-1",
		ServiceType:   "Checkup",
		ScheduledDate: time.Now().UTC(),
	})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(ctx, b.ID, Status("approved"), "vet-1")
	assert.ErrorIs(t, err, ErrInvalidStatus)
	assert.Equal(t, 0, repo.updates)

	_, err = svc.UpdateStatus(ctx, "missing", StatusConfirmed, "vet-1")
	assert.ErrorIs(t, err, ErrNotFound)

	// Any valid status may follow any other.
	_, err = svc.UpdateStatus(ctx, b.ID, StatusCancelled, "vet-1")
	require.NoError(t, err)
	reopened, err := svc.UpdateStatus(ctx, b.ID, StatusPending, "vet-1")
	require.NoError(t, err)
	assert.Equal(t, StatusPending, reopened.Status)
}
