package profile

import (
	"context"
	"errors"
	"testing"

	"github.com/partyspace/partyspace-api/internal/identity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	profiles map[string]*Profile
	getErr   error
	putErr   error
	puts     []*Profile
}

func newFakeStore() *fakeStore {
	return &fakeStore{profiles: make(map[string]*Profile)}
}

func (s *fakeStore) Get(ctx context.Context, uid string) (*Profile, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	if p, ok := s.profiles[uid]; ok {
		return p, nil
	}
	return nil, ErrNotFound
}

func (s *fakeStore) Put(ctx context.Context, p *Profile) error {
	s.puts = append(s.puts, p)
	if s.putErr != nil {
		return s.putErr
	}
	s.profiles[p.UID] = p
	return nil
}

func testIdentity() *identity.Identity {
	return &identity.Identity{UID: "uid-123", Email: "test@example.com", DisplayName: "Test User"}
}

func TestReconciler_Resolve_Existing(t *testing.T) {
	store := newFakeStore()
	store.profiles["uid-123"] = &Profile{
		UID:         "uid-123",
		Email:       "stored@example.com",
		DisplayName: "Stored Name",
		IsAdmin:     true,
		CreatedAt:   "2024-06-01T00:00:00Z",
	}

	p := NewReconciler(store).Resolve(context.Background(), testIdentity())

	// Returned verbatim: the stored record wins over the identity's fields,
	// and the admin flag is taken as stored.
	require.NotNil(t, p)
	assert.Equal(t, "stored@example.com", p.Email)
	assert.True(t, p.IsAdmin)
	assert.Empty(t, store.puts)
}

func TestReconciler_Resolve_CreatesDefault(t *testing.T) {
	store := newFakeStore()

	p := NewReconciler(store).Resolve(context.Background(), testIdentity())

	require.NotNil(t, p)
	assert.Equal(t, "uid-123", p.UID)
	assert.Equal(t, "test@example.com", p.Email)
	assert.Equal(t, "Test User", p.DisplayName)
	assert.False(t, p.IsAdmin)
	assert.NotEmpty(t, p.CreatedAt)

	require.Len(t, store.puts, 1)
	assert.Equal(t, p, store.puts[0])
}

func TestReconciler_Resolve_WriteFailureStillReturnsDefault(t *testing.T) {
	store := newFakeStore()
	store.putErr = errors.New("permission denied")

	p := NewReconciler(store).Resolve(context.Background(), testIdentity())

	require.NotNil(t, p)
	assert.Equal(t, "uid-123", p.UID)
	assert.False(t, p.IsAdmin)
	assert.NotEmpty(t, p.CreatedAt)
	require.Len(t, store.puts, 1)
}

func TestReconciler_Resolve_ReadFailureSkipsWrite(t *testing.T) {
	store := newFakeStore()
	store.getErr = errors.New("store unreachable")

	p := NewReconciler(store).Resolve(context.Background(), testIdentity())

	require.NotNil(t, p)
	assert.Equal(t, "uid-123", p.UID)
	assert.False(t, p.IsAdmin)
	// Nothing was created, so there is no creation timestamp.
	assert.Empty(t, p.CreatedAt)
	assert.Empty(t, store.puts)
}
