package server

import (
	"context"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/time/rate"

	"github.com/plinyoo/starfield/pkg/errors"
	"github.com/plinyoo/starfield/pkg/observability"
)

type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
	Enabled           bool
	TrustProxy        bool
}

// RateLimiter applies a token bucket per client IP.
type RateLimiter struct {
	config  RateLimitConfig
	logger  *log.Logger
	mu      sync.Mutex
	clients map[string]*rate.Limiter
}

func NewRateLimiter(config RateLimitConfig, logger *log.Logger) *RateLimiter {
	if logger == nil {
		logger = log.Default()
	}
	return &RateLimiter{
		config:  config,
		logger:  logger.WithPrefix("ratelimit"),
		clients: make(map[string]*rate.Limiter),
	}
}

func (rl *RateLimiter) limiter(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	l, ok := rl.clients[ip]
	if !ok {
		l = rate.NewLimiter(rate.Limit(rl.config.RequestsPerSecond), rl.config.Burst)
		rl.clients[ip] = l
	}
	return l
}

// Cleanup drops idle clients every interval until ctx is done. A client is
// idle once its bucket has refilled.
func (rl *RateLimiter) Cleanup(ctx context.Context, interval time.Duration) {
	if !rl.config.Enabled {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			rl.sweep(now)
		}
	}
}

func (rl *RateLimiter) sweep(now time.Time) int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	removed := 0
	for ip, l := range rl.clients {
		if l.TokensAt(now) >= float64(rl.config.Burst) {
			delete(rl.clients, ip)
			removed++
		}
	}
	return removed
}

// Middleware rejects requests over the limit with 429 and a Retry-After
// header.
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !rl.config.Enabled {
			next.ServeHTTP(w, r)
			return
		}

		ip := clientIP(r, rl.config.TrustProxy)
		res := rl.limiter(ip).Reserve()
		if delay := res.Delay(); !res.OK() || delay > 0 {
			res.Cancel()
			retry := 1
			if res.OK() {
				retry = int(delay.Seconds()) + 1
			}
			rl.logger.Warn("rate limit exceeded", "client_ip", ip, "path", r.URL.Path, "retry_after", retry)
			observability.HTTP().OnRateLimited(r.Context(), ip)

			w.Header().Set("Retry-After", strconv.Itoa(retry))
			writeError(w, r, rl.logger, &errors.RateLimitedError{RetryAfter: retry})
			return
		}
		next.ServeHTTP(w, r)
	})
}

// clientIP prefers forwarding headers only when the proxy is trusted.
func clientIP(r *http.Request, trustProxy bool) string {
	if trustProxy {
		if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
			if i := strings.IndexByte(xff, ','); i != -1 {
				return strings.TrimSpace(xff[:i])
			}
			return strings.TrimSpace(xff)
		}
		if xri := r.Header.Get("X-Real-IP"); xri != "" {
			return xri
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
