package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/m1z23r/drift/pkg/drift"
	"golang.org/x/time/rate"
)

type RateLimiterConfig struct {
	Rate            rate.Limit
	Burst           int
	CleanupInterval time.Duration
}

// DefaultRateLimiterConfig allows 10 requests per minute per key, which
// is plenty for interactive sign-in attempts.
func DefaultRateLimiterConfig() RateLimiterConfig {
	return RateLimiterConfig{
		Rate:            rate.Every(6 * time.Second),
		Burst:           10,
		CleanupInterval: 5 * time.Minute,
	}
}

// RateLimiter keeps one token bucket per key and evicts idle buckets in
// the background.
type RateLimiter struct {
	config RateLimiterConfig

	mu         sync.Mutex
	limiters   map[string]*rate.Limiter
	lastAccess map[string]time.Time
	stop       chan struct{}
	stopOnce   sync.Once
}

func NewRateLimiter(config RateLimiterConfig) *RateLimiter {
	rl := &RateLimiter{
		config:     config,
		limiters:   make(map[string]*rate.Limiter),
		lastAccess: make(map[string]time.Time),
		stop:       make(chan struct{}),
	}
	go rl.cleanupLoop()
	return rl
}

func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stop) })
}

func (rl *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(rl.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			cutoff := time.Now().Add(-rl.config.CleanupInterval)
			rl.mu.Lock()
			for key, last := range rl.lastAccess {
				if last.Before(cutoff) {
					delete(rl.limiters, key)
					delete(rl.lastAccess, key)
				}
			}
			rl.mu.Unlock()
		}
	}
}

func (rl *RateLimiter) limiter(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	lim, ok := rl.limiters[key]
	if !ok {
		lim = rate.NewLimiter(rl.config.Rate, rl.config.Burst)
		rl.limiters[key] = lim
	}
	rl.lastAccess[key] = time.Now()
	return lim
}

// Middleware limits requests by the key keyFn derives from the request.
func (rl *RateLimiter) Middleware(keyFn func(c *drift.Context) string) drift.HandlerFunc {
	return func(c *drift.Context) {
		if !rl.limiter(keyFn(c)).Allow() {
			c.Response.Header().Set("Retry-After", "60")
			c.JSON(http.StatusTooManyRequests, map[string]string{"error": "too many requests"})
			return
		}
		c.Next()
	}
}

// ClientIP extracts the remote host for use as a rate-limit key.
func ClientIP(c *drift.Context) string {
	host, _, err := net.SplitHostPort(c.Request.RemoteAddr)
	if err != nil {
		return c.Request.RemoteAddr
	}
	return host
}
