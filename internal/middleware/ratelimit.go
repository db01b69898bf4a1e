package middleware

import (
	"net/http"
	"sync"
	"time"
)

type window struct {
	count    int
	resetsAt time.Time
}

// RateLimiter is an in-memory fixed-window limiter, used to slow down
// repeated sign-in attempts from one address.
type RateLimiter struct {
	mu      sync.Mutex
	windows map[string]*window
}

func NewRateLimiter() *RateLimiter {
	return &RateLimiter{windows: make(map[string]*window)}
}

// Allow reports whether key may perform another attempt, at most limit
// per rolling window.
func (rl *RateLimiter) Allow(key string, limit int, d time.Duration) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	w, ok := rl.windows[key]
	if !ok || now.After(w.resetsAt) {
		rl.windows[key] = &window{count: 1, resetsAt: now.Add(d)}
		return true
	}
	w.count++
	return w.count <= limit
}

// Prune drops expired windows once the map grows past a threshold.
// Called opportunistically by LimitPosts.
func (rl *RateLimiter) Prune() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if len(rl.windows) <= 1024 {
		return
	}
	now := time.Now()
	for k, w := range rl.windows {
		if now.After(w.resetsAt) {
			delete(rl.windows, k)
		}
	}
}

// LimitPosts rate-limits POST requests per client address, answering
// 429 once the budget is spent. GETs pass through untouched.
func (rl *RateLimiter) LimitPosts(limit int, d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost {
				next.ServeHTTP(w, r)
				return
			}
			if !rl.Allow(RealIP(r), limit, d) {
				http.Error(w, "Çok fazla deneme yaptınız. Lütfen sonra tekrar deneyin.", http.StatusTooManyRequests)
				return
			}
			rl.Prune()
			next.ServeHTTP(w, r)
		})
	}
}
