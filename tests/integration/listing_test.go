package integration

import (
	"context"
	"testing"

	"github.com/partyspace/partyspace-api/internal/listings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListingService_Integration_CreateAndList(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := setupTest(t)
	svc := listings.NewService(tdb.DB)
	ctx := context.Background()

	created, err := svc.Create(ctx, listings.NewListing{
		OwnerUID:    "uid-owner",
		SpaceName:   "Loft on Rustaveli",
		Location:    "Tbilisi",
		Description: "Bright loft near the opera",
		Latitude:    41.7,
		Longitude:   44.8,
		Amenities:   []string{"wifi", "kitchen"},
		ImageURLs:   []string{"https://example.com/1.jpg"},
	})
	require.NoError(t, err)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, created.ID, all[0].ID)
	assert.Equal(t, []string{"wifi", "kitchen"}, all[0].Amenities)

	mine, err := svc.ListByOwner(ctx, "uid-owner")
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	other, err := svc.ListByOwner(ctx, "uid-other")
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestListingService_Integration_SanitizesOnWrite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := setupTest(t)
	svc := listings.NewService(tdb.DB)
	ctx := context.Background()

	_, err := svc.Create(ctx, listings.NewListing{
		OwnerUID:    "uid-owner",
		SpaceName:   "<img src=x onerror=alert(1)>Garden Hall",
		Location:    "Tbilisi",
		Description: "<b>Spacious</b> venue",
	})
	require.NoError(t, err)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Garden Hall", all[0].SpaceName)
	assert.Equal(t, "Spacious venue", all[0].Description)
}
