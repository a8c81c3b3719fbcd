package middleware

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestLimiter(max int, window time.Duration) (*RateLimiter, *time.Time) {
	limiter := NewRateLimiter(RateLimiterConfig{Max: max, Window: window})
	now := time.Now()
	limiter.now = func() time.Time { return now }
	return limiter, &now
}

func TestRateLimiterAllowsUpToLimit(t *testing.T) {
	limiter, _ := newTestLimiter(3, time.Minute)

	for i := 0; i < 3; i++ {
		assert.True(t, limiter.IsAllowed("1.2.3.4"), "request %d should be allowed", i+1)
	}
	assert.False(t, limiter.IsAllowed("1.2.3.4"), "request over the limit must be rejected")
}

func TestRateLimiterRemaining(t *testing.T) {
	limiter, _ := newTestLimiter(3, time.Minute)

	assert.Equal(t, 3, limiter.Remaining("1.2.3.4"))

	limiter.IsAllowed("1.2.3.4")
	assert.Equal(t, 2, limiter.Remaining("1.2.3.4"))

	limiter.IsAllowed("1.2.3.4")
	limiter.IsAllowed("1.2.3.4")
	assert.Equal(t, 0, limiter.Remaining("1.2.3.4"))

	limiter.IsAllowed("1.2.3.4")
	assert.Equal(t, 0, limiter.Remaining("1.2.3.4"), "remaining never goes negative")
}

func TestRateLimiterWindowRestarts(t *testing.T) {
	limiter, now := newTestLimiter(2, time.Minute)

	assert.True(t, limiter.IsAllowed("1.2.3.4"))
	assert.True(t, limiter.IsAllowed("1.2.3.4"))
	assert.False(t, limiter.IsAllowed("1.2.3.4"))

	// After the window elapses the next request starts a fresh one.
	*now = now.Add(61 * time.Second)
	assert.True(t, limiter.IsAllowed("1.2.3.4"))
	assert.Equal(t, 1, limiter.Remaining("1.2.3.4"))
}

func TestRateLimiterClientsHaveIndependentWindows(t *testing.T) {
	limiter, now := newTestLimiter(2, time.Minute)

	assert.True(t, limiter.IsAllowed("1.1.1.1"))

	// A second client arriving later gets its own window phase.
	*now = now.Add(30 * time.Second)
	assert.True(t, limiter.IsAllowed("2.2.2.2"))

	firstReset := limiter.ResetTime("1.1.1.1")
	secondReset := limiter.ResetTime("2.2.2.2")
	assert.True(t, secondReset.After(firstReset))

	// Exhausting one client does not affect the other.
	assert.True(t, limiter.IsAllowed("1.1.1.1"))
	assert.False(t, limiter.IsAllowed("1.1.1.1"))
	assert.True(t, limiter.IsAllowed("2.2.2.2"))
}

func TestRateLimiterResetTime(t *testing.T) {
	limiter, now := newTestLimiter(2, time.Minute)

	// Without an active window the reset is one window length out.
	assert.Equal(t, now.Add(time.Minute), limiter.ResetTime("1.2.3.4"))

	limiter.IsAllowed("1.2.3.4")
	reset := limiter.ResetTime("1.2.3.4")
	assert.Equal(t, now.Add(time.Minute), reset)

	// The reset stays fixed for the life of the window.
	*now = now.Add(30 * time.Second)
	assert.Equal(t, reset, limiter.ResetTime("1.2.3.4"))
}

func TestDefaultRateLimiterConfig(t *testing.T) {
	config := DefaultRateLimiterConfig()

	assert.Equal(t, 300, config.Max)
	assert.Equal(t, time.Minute, config.Window)
}
