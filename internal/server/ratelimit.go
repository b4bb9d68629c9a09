package server

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"
)

// rateLimiter admits at most limit requests per key in any sliding window.
type rateLimiter struct {
	mu      sync.Mutex
	windows map[string][]time.Time
	limit   int
	window  time.Duration
	now     func() time.Time
}

func newRateLimiter(limit int, window time.Duration) *rateLimiter {
	return &rateLimiter{
		windows: make(map[string][]time.Time),
		limit:   limit,
		window:  window,
		now:     time.Now,
	}
}

// allow records a request for key if it is under the limit. When it is not,
// retryAfter is the time until the oldest request leaves the window.
func (rl *rateLimiter) allow(key string) (ok bool, retryAfter time.Duration) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	cutoff := now.Add(-rl.window)

	ts := rl.windows[key]
	start := 0
	for start < len(ts) && !ts[start].After(cutoff) {
		start++
	}
	ts = ts[start:]

	if len(ts) >= rl.limit {
		rl.windows[key] = ts
		return false, ts[0].Add(rl.window).Sub(now)
	}
	rl.windows[key] = append(ts, now)
	return true, 0
}

// cleanup drops keys with no request inside the window.
func (rl *rateLimiter) cleanup() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cutoff := rl.now().Add(-rl.window)
	for key, ts := range rl.windows {
		if len(ts) == 0 || !ts[len(ts)-1].After(cutoff) {
			delete(rl.windows, key)
		}
	}
}

// rateLimit rejects requests over rl's quota. key picks the counter a
// request is charged to.
func (s *Server) rateLimit(rl *rateLimiter, key func(*http.Request) string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			addr := clientAddr(r)
			ok, retry := rl.allow(key(r))
			if !ok {
				s.log.Warn("rate limit exceeded",
					zap.String("remote", addr),
					zap.String("path", r.URL.Path),
					zap.String("request_id", requestIDFrom(r.Context())))
				w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(retry.Seconds()))))
				writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// routeClientKey counts each route separately per client. The query string
// is not part of the route.
func routeClientKey(r *http.Request) string {
	return r.Method + " " + r.URL.Path + " " + clientAddr(r)
}

// clientAddr returns the host part of the connection's remote address.
func clientAddr(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
