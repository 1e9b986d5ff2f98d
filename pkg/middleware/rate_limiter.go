package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

// RateLimiter holds per-key token buckets. Keys are client IPs for the
// general API and workspace ids for webhook ingest, so one noisy ad
// platform integration cannot starve the rest.
type RateLimiter struct {
	visitors map[string]*rate.Limiter
	mu       sync.RWMutex
	r        rate.Limit // requests per second
	b        int        // burst
}

// NewRateLimiter creates a new rate limiter
func NewRateLimiter(requestsPerMinute, burst int) *RateLimiter {
	// Convert requests per minute to requests per second
	rps := float64(requestsPerMinute) / 60.0

	rl := &RateLimiter{
		visitors: make(map[string]*rate.Limiter),
		r:        rate.Limit(rps),
		b:        burst,
	}

	// Clean up old visitors every 3 minutes
	go rl.cleanupVisitors()

	return rl
}

// GetLimiter returns the rate limiter for the given key
func (rl *RateLimiter) GetLimiter(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	limiter, exists := rl.visitors[key]
	if !exists {
		limiter = rate.NewLimiter(rl.r, rl.b)
		rl.visitors[key] = limiter
	}

	return limiter
}

// cleanupVisitors removes inactive visitors every 3 minutes
func (rl *RateLimiter) cleanupVisitors() {
	for {
		time.Sleep(3 * time.Minute)

		rl.mu.Lock()
		for key, limiter := range rl.visitors {
			// If limiter has full tokens (hasn't been used), remove it
			if limiter.Tokens() >= float64(rl.b) {
				delete(rl.visitors, key)
			}
		}
		rl.mu.Unlock()
	}
}

// RateLimitMiddleware creates an Echo middleware that limits by client IP
func (rl *RateLimiter) RateLimitMiddleware() echo.MiddlewareFunc {
	return rl.middleware(func(c echo.Context) string {
		ip := c.RealIP()
		if ip == "" {
			ip = c.Request().RemoteAddr
		}
		return ip
	})
}

// WebhookRateLimitMiddleware creates an Echo middleware that limits by
// the workspace id path parameter, falling back to client IP when the
// parameter is absent.
func (rl *RateLimiter) WebhookRateLimitMiddleware() echo.MiddlewareFunc {
	return rl.middleware(func(c echo.Context) string {
		if workspaceID := c.Param("workspace_id"); workspaceID != "" {
			return "workspace:" + workspaceID
		}
		ip := c.RealIP()
		if ip == "" {
			ip = c.Request().RemoteAddr
		}
		return ip
	})
}

func (rl *RateLimiter) middleware(keyFn func(echo.Context) string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			limiter := rl.GetLimiter(keyFn(c))

			if !limiter.Allow() {
				return c.JSON(http.StatusTooManyRequests, map[string]interface{}{
					"error":   "rate_limit_exceeded",
					"message": "Too many requests. Please try again later.",
				})
			}

			return next(c)
		}
	}
}
