/*
Package limiter provides per-client-IP rate limiting for the portal's sign-in and sign-up endpoints.

Each IP gets its own token bucket (rate.Limiter); a background sweep drops buckets that have
refilled completely, so memory only grows with recently active clients.
*/
package limiter

import (
	"net"
	"net/http"
	"sync"
	"time"

	"innoevent/internal/pkg/errs"
	"innoevent/internal/pkg/logx"
	"innoevent/internal/pkg/resp"

	"golang.org/x/time/rate"
)

// SweepInterval is how often idle buckets are removed.
const SweepInterval = 3 * time.Minute

// IPRateLimiter hands out one token bucket per client IP.
type IPRateLimiter struct {
	mu     sync.RWMutex
	limits map[string]*rate.Limiter

	r rate.Limit
	b int

	stop     chan struct{}
	stopOnce sync.Once
}

// NewIPRateLimiter creates a limiter allowing r events per second with burst b per IP
// and starts its sweep goroutine. Call Stop to end the sweep.
func NewIPRateLimiter(r rate.Limit, b int) *IPRateLimiter {
	i := &IPRateLimiter{
		limits: make(map[string]*rate.Limiter),
		r:      r,
		b:      b,
		stop:   make(chan struct{}),
	}

	go i.sweepLoop()

	return i
}

// GetLimiter returns the bucket for ip, creating it on first use.
func (i *IPRateLimiter) GetLimiter(ip string) *rate.Limiter {
	i.mu.RLock()
	limiter, exists := i.limits[ip]
	i.mu.RUnlock()

	if exists {
		return limiter
	}

	i.mu.Lock()
	defer i.mu.Unlock()

	limiter, exists = i.limits[ip]
	if !exists {
		limiter = rate.NewLimiter(i.r, i.b)
		i.limits[ip] = limiter
	}

	return limiter
}

// Size returns the number of tracked IPs.
func (i *IPRateLimiter) Size() int {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return len(i.limits)
}

// Stop ends the sweep goroutine. It is safe to call more than once.
func (i *IPRateLimiter) Stop() {
	i.stopOnce.Do(func() { close(i.stop) })
}

func (i *IPRateLimiter) sweepLoop() {
	ticker := time.NewTicker(SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-i.stop:
			return
		case now := <-ticker.C:
			removed, remaining := i.sweep(now)
			logx.Debug("Rate limiter sweep finished", "removed", removed, "remaining", remaining)
		}
	}
}

// sweep drops every bucket that is full at now.
func (i *IPRateLimiter) sweep(now time.Time) (removed, remaining int) {
	i.mu.Lock()
	defer i.mu.Unlock()

	for ip, limiter := range i.limits {
		if limiter.TokensAt(now) >= float64(limiter.Burst()) {
			delete(i.limits, ip)
			removed++
		}
	}

	return removed, len(i.limits)
}

// Allow reports whether the client IP of r may make one more request. It expects chi's
// RealIP middleware to have normalized RemoteAddr.
func (i *IPRateLimiter) Allow(r *http.Request) bool {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		ip = r.RemoteAddr
	}

	if ip == "" {
		ip = "unknown_ip"
	}

	return i.GetLimiter(ip).Allow()
}

// Middleware rejects requests over the per-IP limit with ErrRateLimitExceeded.
func (i *IPRateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !i.Allow(r) {
			logx.Warn("Request rejected: rate limit exceeded", "path", r.URL.Path)
			resp.RespondError(w, r, errs.NewError(errs.ErrRateLimitExceeded))
			return
		}

		next.ServeHTTP(w, r)
	})
}
