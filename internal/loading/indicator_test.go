package loading

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndicator_FastNavigationNeverShows(t *testing.T) {
	ind := NewIndicator(50 * time.Millisecond)

	ind.BeginNavigation()
	ind.EndNavigation()

	time.Sleep(80 * time.Millisecond)
	assert.False(t, ind.Visible())
}

func TestIndicator_SlowNavigationShows(t *testing.T) {
	ind := NewIndicator(10 * time.Millisecond)

	ind.BeginNavigation()

	require.Eventually(t, ind.Visible, time.Second, time.Millisecond)

	ind.EndNavigation()
	assert.False(t, ind.Visible())
}

func TestIndicator_RestartRearmsTimer(t *testing.T) {
	ind := NewIndicator(40 * time.Millisecond)

	ind.BeginNavigation()
	time.Sleep(25 * time.Millisecond)
	ind.BeginNavigation()
	time.Sleep(25 * time.Millisecond)

	// Neither navigation has individually crossed the threshold.
	assert.False(t, ind.Visible())

	require.Eventually(t, ind.Visible, time.Second, time.Millisecond)
}

func TestIndicator_DefaultThreshold(t *testing.T) {
	ind := NewIndicator(0)
	assert.Equal(t, DefaultThreshold, ind.threshold)
}
