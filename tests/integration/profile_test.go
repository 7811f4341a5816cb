package integration

import (
	"context"
	"testing"

	"github.com/partyspace/partyspace-api/internal/identity"
	"github.com/partyspace/partyspace-api/internal/profile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileStore_Integration_PutAndGet(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := setupTest(t)
	store := profile.NewStore(tdb.DB)
	ctx := context.Background()

	p := &profile.Profile{
		UID:         "uid-integration",
		Email:       "test@example.com",
		DisplayName: "Test User",
		CreatedAt:   "2025-01-02T03:04:05Z",
	}

	require.NoError(t, store.Put(ctx, p))

	got, err := store.Get(ctx, "uid-integration")
	require.NoError(t, err)
	assert.Equal(t, p.Email, got.Email)
	assert.Equal(t, p.DisplayName, got.DisplayName)
	assert.False(t, got.IsAdmin)
	assert.Equal(t, p.CreatedAt, got.CreatedAt)
}

func TestProfileStore_Integration_GetMissing(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := setupTest(t)
	store := profile.NewStore(tdb.DB)

	_, err := store.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, profile.ErrNotFound)
}

func TestProfileStore_Integration_PutIsUpsert(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := setupTest(t)
	store := profile.NewStore(tdb.DB)
	ctx := context.Background()

	p := &profile.Profile{UID: "uid-upsert", Email: "a@example.com", DisplayName: "First"}
	require.NoError(t, store.Put(ctx, p))

	p.DisplayName = "Second"
	require.NoError(t, store.Put(ctx, p))

	got, err := store.Get(ctx, "uid-upsert")
	require.NoError(t, err)
	assert.Equal(t, "Second", got.DisplayName)
}

func TestReconciler_Integration_FirstAuthCreatesProfile(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := setupTest(t)
	store := profile.NewStore(tdb.DB)
	reconciler := profile.NewReconciler(store)
	ctx := context.Background()

	ident := &identity.Identity{UID: "uid-first", Email: "first@example.com", DisplayName: "First User"}

	p := reconciler.Resolve(ctx, ident)
	require.NotNil(t, p)
	assert.False(t, p.IsAdmin)
	assert.NotEmpty(t, p.CreatedAt)

	stored, err := store.Get(ctx, "uid-first")
	require.NoError(t, err)
	assert.Equal(t, "first@example.com", stored.Email)
}

func TestReconciler_Integration_AdminFlagSurvives(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := setupTest(t)
	store := profile.NewStore(tdb.DB)
	reconciler := profile.NewReconciler(store)
	ctx := context.Background()

	ident := &identity.Identity{UID: "uid-admin", Email: "admin@example.com", DisplayName: "Admin"}
	reconciler.Resolve(ctx, ident)

	affected, err := store.SetAdmin(ctx, "admin@example.com", true)
	require.NoError(t, err)
	require.Equal(t, int64(1), affected)

	p := reconciler.Resolve(ctx, ident)
	assert.True(t, p.IsAdmin)
}
