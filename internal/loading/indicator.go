// Package loading debounces the navigation progress indicator so quick
// transitions never flash it.
package loading

import (
	"sync"
	"time"
)

// DefaultThreshold is how long a navigation must run before the
// indicator becomes visible.
const DefaultThreshold = 300 * time.Millisecond

// Indicator tracks whether the progress indicator should be shown.
type Indicator struct {
	mu        sync.Mutex
	threshold time.Duration
	timer     *time.Timer
	visible   bool
}

func NewIndicator(threshold time.Duration) *Indicator {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Indicator{threshold: threshold}
}

// BeginNavigation arms the debounce timer. A navigation that finishes
// before the threshold never shows the indicator; starting a new
// navigation rearms the timer.
func (i *Indicator) BeginNavigation() {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.timer != nil {
		i.timer.Stop()
	}
	i.visible = false
	i.timer = time.AfterFunc(i.threshold, func() {
		i.mu.Lock()
		i.visible = true
		i.mu.Unlock()
	})
}

// EndNavigation cancels the pending timer and hides the indicator.
func (i *Indicator) EndNavigation() {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.timer != nil {
		i.timer.Stop()
		i.timer = nil
	}
	i.visible = false
}

func (i *Indicator) Visible() bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.visible
}
