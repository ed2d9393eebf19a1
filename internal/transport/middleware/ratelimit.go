package middleware

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// RateLimiter keeps one token bucket per client IP. Buckets idle for longer
// than the idle TTL are dropped, as are the least recently used ones once
// the limiter is full.
type RateLimiter struct {
	mu      sync.Mutex
	buckets *expirable.LRU[string, *bucket]
	now     func() time.Time
}

type bucket struct {
	mu         sync.Mutex
	tokens     float64
	maxTokens  float64
	refillRate float64 // tokens per second
	lastRefill time.Time
}

// NewRateLimiter creates a limiter tracking at most size clients.
func NewRateLimiter(size int, idleTTL time.Duration) *RateLimiter {
	return &RateLimiter{
		buckets: expirable.NewLRU[string, *bucket](size, nil, idleTTL),
		now:     time.Now,
	}
}

// Limit allows max requests per window from one client, with bursts up to max.
func (rl *RateLimiter) Limit(max int, window time.Duration) Middleware {
	rate := float64(max) / window.Seconds()
	retryAfter := strconv.Itoa(int(math.Ceil(1 / rate)))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			b := rl.bucket(clientIP(r), float64(max), rate)
			if !b.allow(rl.now()) {
				w.Header().Set("Retry-After", retryAfter)
				http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (rl *RateLimiter) bucket(key string, maxTokens, rate float64) *bucket {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if b, ok := rl.buckets.Get(key); ok {
		// Re-adding restarts the idle timer.
		rl.buckets.Add(key, b)
		return b
	}
	b := &bucket{tokens: maxTokens, maxTokens: maxTokens, refillRate: rate, lastRefill: rl.now()}
	rl.buckets.Add(key, b)
	return b
}

func (b *bucket) allow(now time.Time) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.tokens = min(b.maxTokens, b.tokens+now.Sub(b.lastRefill).Seconds()*b.refillRate)
	b.lastRefill = now

	if b.tokens < 1 {
		return false
	}
	b.tokens--
	return true
}

// clientIP strips the port from the remote address.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
