// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/danielhkuo/bonus-redeem/models"
)

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter keeps one token bucket per client IP.
type RateLimiter struct {
	mu         sync.Mutex
	limiters   map[string]*clientLimiter
	limit      rate.Limit
	burst      int
	trustProxy bool

	// Buckets unused for idleTTL have fully refilled and are dropped.
	idleTTL   time.Duration
	lastSweep time.Time
	now       func() time.Time
}

// NewRateLimiter allows perMinute requests per client IP, with bursts of up
// to perMinute. It returns nil when perMinute is 0, which disables limiting.
// trustProxy keys clients by X-Forwarded-For/X-Real-IP instead of RemoteAddr.
func NewRateLimiter(perMinute int, trustProxy bool) *RateLimiter {
	if perMinute <= 0 {
		return nil
	}
	return &RateLimiter{
		limiters:   make(map[string]*clientLimiter),
		limit:      rate.Limit(float64(perMinute) / 60),
		burst:      perMinute,
		trustProxy: trustProxy,
		idleTTL:    time.Minute,
		now:        time.Now,
	}
}

func (rl *RateLimiter) limiter(key string, now time.Time) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if now.Sub(rl.lastSweep) >= rl.idleTTL {
		rl.sweep(now)
	}

	cl, ok := rl.limiters[key]
	if !ok {
		cl = &clientLimiter{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.limiters[key] = cl
	}
	cl.lastSeen = now
	return cl.limiter
}

// sweep drops idle buckets. Callers hold rl.mu.
func (rl *RateLimiter) sweep(now time.Time) {
	for key, cl := range rl.limiters {
		if now.Sub(cl.lastSeen) >= rl.idleTTL {
			delete(rl.limiters, key)
		}
	}
	rl.lastSweep = now
}

// Allow reports whether a request from key may proceed now.
func (rl *RateLimiter) Allow(key string) bool {
	if rl == nil {
		return true
	}
	now := rl.now()
	return rl.limiter(key, now).AllowN(now, 1)
}

// Limit wraps a handler, rejecting requests over the limit with 429
func (rl *RateLimiter) Limit(next http.HandlerFunc) http.HandlerFunc {
	if rl == nil {
		return next
	}
	return func(w http.ResponseWriter, r *http.Request) {
		ip := GetClientIP(r, rl.trustProxy)
		if !rl.Allow(ip) {
			slog.Warn("rate limit exceeded", "remote", ip, "path", r.URL.Path)
			ErrorResponse(w, http.StatusTooManyRequests, models.ErrTooManyRequests)
			return
		}
		next(w, r)
	}
}
