package middleware

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const visitorTTL = 10 * time.Minute

// KeyFunc picks the identity a request is rate limited under.
type KeyFunc func(r *http.Request) string

// ClientKey returns PeerIP, or ForwardedIP when the server sits behind a proxy that
// overwrites the forwarding headers.
func ClientKey(trustProxyHeaders bool) KeyFunc {
	if trustProxyHeaders {
		return ForwardedIP
	}
	return PeerIP
}

// PeerIP keys on the TCP peer address only. Client headers are ignored.
func PeerIP(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// ForwardedIP prefers the first X-Forwarded-For hop, then X-Real-IP, then the peer
// address. Only safe behind a trusted proxy.
func ForwardedIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}
	if xrip := strings.TrimSpace(r.Header.Get("X-Real-IP")); xrip != "" {
		return xrip
	}
	return PeerIP(r)
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type ipRateLimiter struct {
	mu        sync.Mutex
	visitors  map[string]*visitor
	rps       rate.Limit
	burst     int
	lastSweep time.Time
}

func newIPRateLimiter(rps float64, burst int) *ipRateLimiter {
	return &ipRateLimiter{
		visitors:  make(map[string]*visitor),
		rps:       rate.Limit(rps),
		burst:     burst,
		lastSweep: time.Now(),
	}
}

// getLimiter also evicts idle visitors, at most once per visitorTTL.
func (rl *ipRateLimiter) getLimiter(key string, now time.Time) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if now.Sub(rl.lastSweep) > visitorTTL {
		rl.evictIdle(now)
		rl.lastSweep = now
	}

	v, exists := rl.visitors[key]
	if !exists {
		limiter := rate.NewLimiter(rl.rps, rl.burst)
		rl.visitors[key] = &visitor{limiter: limiter, lastSeen: now}
		return limiter
	}

	v.lastSeen = now
	return v.limiter
}

// evictIdle must be called with mu held.
func (rl *ipRateLimiter) evictIdle(now time.Time) {
	for key, v := range rl.visitors {
		if now.Sub(v.lastSeen) > visitorTTL {
			delete(rl.visitors, key)
		}
	}
}

// RateLimit returns middleware that limits requests per client key.
// rps is the allowed requests per second, burst is the maximum burst size.
func RateLimit(rps float64, burst int, key KeyFunc) func(http.Handler) http.Handler {
	limiter := newIPRateLimiter(rps, burst)
	if key == nil {
		key = PeerIP
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.getLimiter(key(r), time.Now()).Allow() {
				writeJSONError(w, http.StatusTooManyRequests, "too many requests")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
