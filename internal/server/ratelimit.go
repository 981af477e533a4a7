// Token bucket rate limiting keyed by client IP.

package server

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// rateLimiter manages one token bucket per key. Buckets refill at
// perMin/60 tokens per second with burst capacity equal to perMin.
type rateLimiter struct {
	mu      sync.Mutex
	buckets map[string]*rateBucket
	rate    rate.Limit
	burst   int
	stop    chan struct{}
}

type rateBucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// newRateLimiter creates a limiter allowing perMin requests per minute per
// key. Returns nil when perMin is 0, which callers treat as unlimited.
func newRateLimiter(perMin int) *rateLimiter {
	if perMin <= 0 {
		return nil
	}
	l := &rateLimiter{
		buckets: make(map[string]*rateBucket),
		rate:    rate.Limit(float64(perMin) / 60),
		burst:   perMin,
		stop:    make(chan struct{}),
	}
	go l.cleanupLoop()
	return l
}

// allow reports whether a request with the given key may proceed.
func (l *rateLimiter) allow(key string) bool {
	if l == nil {
		return true
	}
	l.mu.Lock()
	b, ok := l.buckets[key]
	if !ok {
		b = &rateBucket{limiter: rate.NewLimiter(l.rate, l.burst)}
		l.buckets[key] = b
	}
	b.lastSeen = time.Now()
	l.mu.Unlock()
	return b.limiter.Allow()
}

// cleanupLoop removes stale buckets every 10 minutes.
func (l *rateLimiter) cleanupLoop() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			l.cleanup()
		case <-l.stop:
			return
		}
	}
}

// cleanup removes buckets idle long enough to have refilled completely.
func (l *rateLimiter) cleanup() {
	l.mu.Lock()
	defer l.mu.Unlock()
	stale := time.Now().Add(-10 * time.Minute)
	for key, b := range l.buckets {
		if b.lastSeen.Before(stale) && b.limiter.Tokens() >= float64(l.burst) {
			delete(l.buckets, key)
		}
	}
}

// close stops the cleanup goroutine.
func (l *rateLimiter) close() {
	if l != nil {
		close(l.stop)
	}
}
