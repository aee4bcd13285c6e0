package middleware

import (
	"net/http"
	"sync"
	"time"
)

// rateLimiter tracks request timestamps per client in a sliding window.
type rateLimiter struct {
	mu     sync.Mutex
	seen   map[string][]time.Time
	limit  int
	window time.Duration
}

var limiter *rateLimiter

func InitRateLimiter(requestsPerMinute int) {
	limiter = &rateLimiter{
		seen:   make(map[string][]time.Time),
		limit:  requestsPerMinute,
		window: time.Minute,
	}

	// Drop clients that have gone quiet for two full windows.
	go func() {
		ticker := time.NewTicker(2 * limiter.window)
		defer ticker.Stop()
		for range ticker.C {
			limiter.cleanup()
		}
	}()
}

func (rl *rateLimiter) cleanup() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cutoff := time.Now().Add(-rl.window)
	for key, stamps := range rl.seen {
		if kept := prune(stamps, cutoff); len(kept) == 0 {
			delete(rl.seen, key)
		} else {
			rl.seen[key] = kept
		}
	}
}

func (rl *rateLimiter) allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	stamps := prune(rl.seen[key], time.Now().Add(-rl.window))
	if len(stamps) >= rl.limit {
		rl.seen[key] = stamps
		return false
	}

	rl.seen[key] = append(stamps, time.Now())
	return true
}

// prune discards timestamps at or before the cutoff, reusing the backing
// array. Stamps are appended in order, so the first kept index is enough.
func prune(stamps []time.Time, cutoff time.Time) []time.Time {
	for i, s := range stamps {
		if s.After(cutoff) {
			return stamps[i:]
		}
	}
	return nil
}

// clientKey prefers the session subject so a user behind a shared address is
// limited individually; anonymous traffic falls back to the remote address.
func clientKey(r *http.Request) string {
	if sessions != nil {
		if sess, err := sessions.Load(r); err == nil {
			return "user:" + sess.UserID
		}
	}
	return r.RemoteAddr
}

func RateLimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if limiter == nil {
			next.ServeHTTP(w, r)
			return
		}

		if !limiter.allow(clientKey(r)) {
			http.Error(w, "Rate limit exceeded", http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}
