package middleware

import (
	"math"
	"strconv"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/yok-atlas/uni-api/utils/response"
)

// RateLimiterConfig holds the fixed-window parameters.
type RateLimiterConfig struct {
	Max    int           // requests allowed per window
	Window time.Duration // window length
}

// DefaultRateLimiterConfig allows 300 requests per minute per client.
func DefaultRateLimiterConfig() RateLimiterConfig {
	return RateLimiterConfig{
		Max:    300,
		Window: 1 * time.Minute,
	}
}

type windowEntry struct {
	count     int
	resetTime time.Time
}

// RateLimiter is a per-client fixed-window request counter. Windows are not
// aligned to wall-clock ticks: each client's window starts at its first
// request, so different clients have independently phased windows. Client
// identity is the connection's apparent source address; spoofable via proxy
// headers, which is accepted for this threat model.
type RateLimiter struct {
	mu      sync.Mutex
	clients map[string]*windowEntry
	max     int
	window  time.Duration

	now func() time.Time
}

// NewRateLimiter creates a rate limiter with the given config.
func NewRateLimiter(config RateLimiterConfig) *RateLimiter {
	return &RateLimiter{
		clients: make(map[string]*windowEntry),
		max:     config.Max,
		window:  config.Window,
		now:     time.Now,
	}
}

// IsAllowed records a request from the client and reports whether it is
// admitted. A missing or elapsed window starts a fresh one.
func (r *RateLimiter) IsAllowed(clientID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	client, ok := r.clients[clientID]
	if !ok || now.After(client.resetTime) {
		r.clients[clientID] = &windowEntry{count: 1, resetTime: now.Add(r.window)}
		return true
	}

	if client.count >= r.max {
		return false
	}

	client.count++
	return true
}

// Remaining returns how many requests the client has left in its window.
func (r *RateLimiter) Remaining(clientID string) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	client, ok := r.clients[clientID]
	if !ok || r.now().After(client.resetTime) {
		return r.max
	}
	if remaining := r.max - client.count; remaining > 0 {
		return remaining
	}
	return 0
}

// ResetTime returns when the client's current window ends. For a client
// without an active window it is one window length from now.
func (r *RateLimiter) ResetTime(clientID string) time.Time {
	r.mu.Lock()
	defer r.mu.Unlock()

	client, ok := r.clients[clientID]
	if !ok || r.now().After(client.resetTime) {
		return r.now().Add(r.window)
	}
	return client.resetTime
}

// Handle gates every request through the limiter. Admitted requests carry
// X-RateLimit-* headers; rejected ones get a 429 with Retry-After.
func (r *RateLimiter) Handle() fiber.Handler {
	return func(c *fiber.Ctx) error {
		clientID := c.IP()

		if !r.IsAllowed(clientID) {
			resetTime := r.ResetTime(clientID)
			retryAfter := int(math.Ceil(time.Until(resetTime).Seconds()))
			if retryAfter < 1 {
				retryAfter = 1
			}

			c.Set("X-RateLimit-Limit", strconv.Itoa(r.max))
			c.Set("X-RateLimit-Remaining", "0")
			c.Set("X-RateLimit-Reset", strconv.FormatInt(resetTime.UnixMilli(), 10))
			c.Set("Retry-After", strconv.Itoa(retryAfter))
			return response.TooManyRequests(c, retryAfter)
		}

		c.Set("X-RateLimit-Limit", strconv.Itoa(r.max))
		c.Set("X-RateLimit-Remaining", strconv.Itoa(r.Remaining(clientID)))
		c.Set("X-RateLimit-Reset", strconv.FormatInt(r.ResetTime(clientID).UnixMilli(), 10))

		return c.Next()
	}
}
