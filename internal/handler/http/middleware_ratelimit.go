package http

import (
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Credential endpoints sit behind a strict tier: password hashing is
// expensive and login is the obvious brute-force target.
const (
	authLimit = rate.Limit(2)
	authBurst = 5

	visitorTTL = 3 * time.Minute
)

// visitor holds the rate limiter and the last time it was seen.
type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// rateLimiter keeps one token bucket per client IP. Stale entries are
// dropped lazily on each lookup so the map cannot grow without bound.
type rateLimiter struct {
	mu          sync.Mutex
	visitors    map[string]*visitor
	lastCleanup time.Time
}

func newRateLimiter() *rateLimiter {
	return &rateLimiter{
		visitors:    make(map[string]*visitor),
		lastCleanup: time.Now(),
	}
}

// getVisitor retrieves or creates a rate limiter for the given identity key.
func (rl *rateLimiter) getVisitor(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if time.Since(rl.lastCleanup) > time.Minute {
		for k, v := range rl.visitors {
			if time.Since(v.lastSeen) > visitorTTL {
				delete(rl.visitors, k)
			}
		}
		rl.lastCleanup = time.Now()
	}

	v, exists := rl.visitors[key]
	if !exists {
		limiter := rate.NewLimiter(authLimit, authBurst)
		rl.visitors[key] = &visitor{limiter: limiter, lastSeen: time.Now()}
		return limiter
	}

	v.lastSeen = time.Now()
	return v.limiter
}

// withRateLimit rejects requests exceeding the per-IP quota with 429. It is
// applied only to the unauthenticated credential endpoints.
func (h *Handler) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}

		if !h.limiter.getVisitor("ip:" + ip).Allow() {
			writeFailure(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}
