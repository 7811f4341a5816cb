package venues

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog(t *testing.T) {
	all := Catalog()

	require.Len(t, all, 6)
	for _, v := range all {
		assert.NotEmpty(t, v.NameKey)
		assert.NotEmpty(t, v.Location)
		assert.Positive(t, v.Price)
		assert.Positive(t, v.Guests)
		assert.Len(t, v.Images, 5)
	}
}

func TestByID(t *testing.T) {
	v, ok := ByID(5)

	require.True(t, ok)
	assert.Equal(t, "seasideVilla", v.NameKey)
	assert.Equal(t, "Batumi", v.Location)
	assert.Equal(t, 890, v.Price)
	assert.Equal(t, 60, v.Guests)
}

func TestByID_NotFound(t *testing.T) {
	_, ok := ByID(99)
	assert.False(t, ok)
}

func TestMinGuests(t *testing.T) {
	assert.Equal(t, 1, MinGuests("1-10"))
	assert.Equal(t, 11, MinGuests("11-25"))
	assert.Equal(t, 26, MinGuests("26-50"))
	assert.Equal(t, 50, MinGuests("50+"))
	assert.Equal(t, 50, MinGuests("anything else"))
}

func TestFilter_ByLocation(t *testing.T) {
	got := Filter("Batumi", "")

	require.Len(t, got, 1)
	assert.Equal(t, 5, got[0].ID)
}

func TestFilter_ByGuests(t *testing.T) {
	got := Filter("", "26-50")

	ids := make([]int, 0, len(got))
	for _, v := range got {
		ids = append(ids, v.ID)
	}
	assert.Equal(t, []int{1, 2, 5, 6}, ids)
}

func TestFilter_Combined(t *testing.T) {
	got := Filter("Vera, Tbilisi", "1-10")

	require.Len(t, got, 1)
	assert.Equal(t, 4, got[0].ID)
}

func TestFilter_NoMatch(t *testing.T) {
	assert.Empty(t, Filter("Kutaisi", ""))
}

func TestFilter_Unfiltered(t *testing.T) {
	assert.Len(t, Filter("", ""), 6)
}

func TestReviews(t *testing.T) {
	got := Reviews()

	require.Len(t, got, 8)
	assert.Equal(t, "Sarah M.", got[0].Name)
	for _, r := range got {
		assert.GreaterOrEqual(t, r.Rating, 1)
		assert.LessOrEqual(t, r.Rating, 5)
	}
}
