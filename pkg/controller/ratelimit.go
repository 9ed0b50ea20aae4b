package controller

import (
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// defaultMaxTracked bounds the number of buckets an IPRateLimiter holds.
const defaultMaxTracked = 10000

// IPRateLimiter hands out one token bucket per client IP. Buckets idle for
// longer than the sweep interval are forgotten, and once maxTracked buckets
// are held the least recently seen one makes room for a new client.
type IPRateLimiter struct {
	limit      rate.Limit
	burst      int
	idle       time.Duration
	maxTracked int

	mu        sync.Mutex
	limiters  map[string]*ipLimiter
	lastSweep time.Time
	now       func() time.Time
}

type ipLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewIPRateLimiter allows each IP perSecond requests per second on average
// with bursts of up to burst requests.
func NewIPRateLimiter(perSecond float64, burst int) *IPRateLimiter {
	return &IPRateLimiter{
		limit:      rate.Limit(perSecond),
		burst:      burst,
		idle:       10 * time.Minute,
		maxTracked: defaultMaxTracked,
		limiters:   map[string]*ipLimiter{},
		now:        time.Now,
	}
}

// Allow reports whether a request from ip may proceed now.
func (l *IPRateLimiter) Allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastSweep) > l.idle {
		for k, v := range l.limiters {
			if now.Sub(v.lastSeen) > l.idle {
				delete(l.limiters, k)
			}
		}
		l.lastSweep = now
	}

	entry, ok := l.limiters[ip]
	if !ok {
		if len(l.limiters) >= l.maxTracked {
			l.evictOldest()
		}
		entry = &ipLimiter{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.limiters[ip] = entry
	}
	entry.lastSeen = now

	return entry.limiter.AllowN(now, 1)
}

func (l *IPRateLimiter) evictOldest() {
	var (
		oldestKey string
		oldest    time.Time
	)
	for k, v := range l.limiters {
		if oldestKey == "" || v.lastSeen.Before(oldest) {
			oldestKey, oldest = k, v.lastSeen
		}
	}
	delete(l.limiters, oldestKey)
}

// WithRateLimit rejects requests over the per-IP budget with onLimited.
// Clients are keyed on the connection's remote address; forwarding headers
// are client controlled and ignored here.
func WithRateLimit(l *IPRateLimiter, onLimited http.HandlerFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !l.Allow(RemoteIP(r)) {
				onLimited(w, r)

				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
