package middleware

import (
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/oleg-messenger/backend/pkg/clientip"
)

// SecurityHeaders sets security-related response headers.
func SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("X-XSS-Protection", "1; mode=block")
		w.Header().Set("Content-Security-Policy", "default-src 'self'")
		w.Header().Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		next.ServeHTTP(w, r)
	})
}

const (
	poolCleanupInterval = 5 * time.Minute
	poolEntryTTL        = 30 * time.Minute
)

// limiterPool keeps one token bucket per client IP and drops buckets that
// have been idle longer than poolEntryTTL.
type limiterPool struct {
	mu         sync.Mutex
	entries    map[string]*poolEntry
	newLimiter func() *rate.Limiter
	cleanup    sync.Once
}

type poolEntry struct {
	limiter *rate.Limiter
	lastUse time.Time
}

func newLimiterPool(newLimiter func() *rate.Limiter) *limiterPool {
	return &limiterPool{
		entries:    make(map[string]*poolEntry),
		newLimiter: newLimiter,
	}
}

func (p *limiterPool) get(ip string) *rate.Limiter {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cleanup.Do(func() { go p.cleanupLoop() })

	e, ok := p.entries[ip]
	if !ok {
		e = &poolEntry{limiter: p.newLimiter()}
		p.entries[ip] = e
	}
	e.lastUse = time.Now()
	return e.limiter
}

func (p *limiterPool) cleanupLoop() {
	ticker := time.NewTicker(poolCleanupInterval)
	defer ticker.Stop()
	for range ticker.C {
		p.mu.Lock()
		now := time.Now()
		for ip, e := range p.entries {
			if now.Sub(e.lastUse) > poolEntryTTL {
				delete(p.entries, ip)
			}
		}
		p.mu.Unlock()
	}
}

var (
	globalLimiters = newLimiterPool(func() *rate.Limiter {
		return rate.NewLimiter(rate.Limit(1), 10)
	})
	loginLimiters = newLimiterPool(func() *rate.Limiter {
		return rate.NewLimiter(rate.Every(5*time.Second), 2)
	})
)

var loginPaths = map[string]bool{
	"/api/login": true,
}

// GlobalRateLimit limits each IP to 1 req/s, burst 10. Returns 429 when exceeded.
func GlobalRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := clientip.RealClientIP(r)
		if !globalLimiters.get(ip).Allow() {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(`{"error":"Too many requests. Please slow down."}`))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// LoginRateLimit applies a stricter limit to the login route only. Use after
// GlobalRateLimit.
func LoginRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !loginPaths[r.URL.Path] {
			next.ServeHTTP(w, r)
			return
		}
		ip := clientip.RealClientIP(r)
		if !loginLimiters.get(ip).Allow() {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(`{"error":"Too many login attempts. Please try again later."}`))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ProductionSecurity returns middlewares for production: SecurityHeaders →
// GlobalRateLimit → LoginRateLimit.
func ProductionSecurity() []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		SecurityHeaders,
		GlobalRateLimit,
		LoginRateLimit,
	}
}
