package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/escapegenie/api/internal/model"
)

// RateLimiter implements fixed-window rate limiting per client key
type RateLimiter struct {
	mu       sync.Mutex
	windows  map[string]*window
	limit    int
	interval time.Duration
	stopChan chan struct{}
}

type window struct {
	count   int
	startAt time.Time
}

// RateLimitConfig holds rate limiter configuration
type RateLimitConfig struct {
	Limit    int           // Requests per interval (default 100)
	Interval time.Duration // Window length (default 1 minute)
	Cleanup  time.Duration // Sweep interval for idle windows (default 5 minutes)
}

// NewRateLimiter creates a new rate limiter and starts its sweep goroutine.
// Call Stop to release it.
func NewRateLimiter(cfg RateLimitConfig) *RateLimiter {
	if cfg.Limit == 0 {
		cfg.Limit = 100
	}
	if cfg.Interval == 0 {
		cfg.Interval = time.Minute
	}
	if cfg.Cleanup == 0 {
		cfg.Cleanup = 5 * time.Minute
	}

	rl := &RateLimiter{
		windows:  make(map[string]*window),
		limit:    cfg.Limit,
		interval: cfg.Interval,
		stopChan: make(chan struct{}),
	}

	go rl.sweep(cfg.Cleanup)

	return rl
}

// Stop stops the rate limiter sweep goroutine
func (rl *RateLimiter) Stop() {
	close(rl.stopChan)
}

func (rl *RateLimiter) sweep(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.mu.Lock()
			cutoff := time.Now().Add(-2 * rl.interval)
			for key, w := range rl.windows {
				if w.startAt.Before(cutoff) {
					delete(rl.windows, key)
				}
			}
			rl.mu.Unlock()
		case <-rl.stopChan:
			return
		}
	}
}

// Allow records a request for key and reports whether it fits the window.
func (rl *RateLimiter) Allow(key string) (allowed bool, remaining int, resetAt time.Time) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	w, ok := rl.windows[key]
	if !ok || now.Sub(w.startAt) >= rl.interval {
		w = &window{startAt: now}
		rl.windows[key] = w
	}

	resetAt = w.startAt.Add(rl.interval)
	if w.count >= rl.limit {
		return false, 0, resetAt
	}
	w.count++
	return true, rl.limit - w.count, resetAt
}

// RateLimit returns a middleware that applies rate limiting, keyed by the
// authenticated user when present and the client address otherwise.
func RateLimit(limiter *RateLimiter) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := r.RemoteAddr
			if userID, ok := GetUserID(r.Context()); ok {
				key = "user:" + strconv.FormatInt(userID, 10)
			}

			allowed, remaining, resetAt := limiter.Allow(key)

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(limiter.limit))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
			w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(resetAt.Unix(), 10))

			if !allowed {
				retryAfter := int(time.Until(resetAt).Seconds())
				if retryAfter < 1 {
					retryAfter = 1
				}
				w.Header().Set("Retry-After", strconv.Itoa(retryAfter))

				model.NewRateLimitError(retryAfter).WriteJSON(w)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
