package authhandlers

import (
	"log/slog"
	"math"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	authdomain "github.com/Black-And-White-Club/fairway/app/modules/auth/domain"
	authjwt "github.com/Black-And-White-Club/fairway/app/modules/auth/infrastructure/jwt"
	"github.com/Black-And-White-Club/fairway/app/shared/attr"
	"github.com/Black-And-White-Club/fairway/config"
	"golang.org/x/time/rate"
)

// sweepEvery is how many new clients are admitted between sweeps of
// refilled buckets.
const sweepEvery = 256

// ClientLimiter hands out one token bucket per client address. A bucket that
// has refilled to its burst is indistinguishable from a fresh one, so sweeps
// drop those instead of tracking idle time.
type ClientLimiter struct {
	mu      sync.Mutex
	buckets map[string]*rate.Limiter
	added   int
	limit   rate.Limit
	burst   int
	now     func() time.Time
}

// NewClientLimiter sizes buckets from the http.rate_limit and http.rate_burst
// settings.
func NewClientLimiter(cfg config.HTTPConfig) *ClientLimiter {
	return &ClientLimiter{
		buckets: make(map[string]*rate.Limiter),
		limit:   rate.Limit(cfg.RateLimit),
		burst:   cfg.RateBurst,
		now:     time.Now,
	}
}

// Reserve takes a token for client. When the bucket is empty it returns how
// long the client should wait and takes nothing.
func (l *ClientLimiter) Reserve(client string) (time.Duration, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	bucket, ok := l.buckets[client]
	if !ok {
		l.added++
		if l.added%sweepEvery == 0 {
			l.sweep(now)
		}
		bucket = rate.NewLimiter(l.limit, l.burst)
		l.buckets[client] = bucket
	}

	res := bucket.ReserveN(now, 1)
	if !res.OK() {
		return 0, false
	}
	if wait := res.DelayFrom(now); wait > 0 {
		res.CancelAt(now)
		return wait, false
	}
	return 0, true
}

func (l *ClientLimiter) sweep(now time.Time) {
	for client, bucket := range l.buckets {
		if bucket.TokensAt(now) >= float64(l.burst) {
			delete(l.buckets, client)
		}
	}
}

// RateLimitMiddleware rejects callers whose bucket is empty with 429 and a
// Retry-After hint. chi's RealIP runs first, so RemoteAddr is the client.
func RateLimitMiddleware(limiter *ClientLimiter, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			client, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				client = r.RemoteAddr
			}

			if wait, ok := limiter.Reserve(client); !ok {
				if wait > 0 {
					w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(wait.Seconds()))))
				}
				logger.DebugContext(r.Context(), "Rate limited request",
					attr.String("client", client),
					attr.String("path", r.URL.Path),
				)
				http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// CORSMiddleware allows browser calls from http.allowed_origins. Preflights
// are answered here; other requests get the allow headers and continue.
func CORSMiddleware(allowedOrigins []string) func(http.Handler) http.Handler {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[strings.TrimRight(o, "/")] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin == "" {
				next.ServeHTTP(w, r)
				return
			}

			h := w.Header()
			h.Add("Vary", "Origin")
			ok := allowed[origin]
			if ok {
				h.Set("Access-Control-Allow-Origin", origin)
				h.Set("Access-Control-Allow-Credentials", "true")
			}

			if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
				if ok {
					h.Set("Access-Control-Allow-Methods", "GET, POST")
					h.Set("Access-Control-Allow-Headers", "Authorization, Content-Type")
					h.Set("Access-Control-Max-Age", "600")
				}
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// BearerAuthMiddleware verifies the Authorization bearer token and stores
// its claims on the request context.
func BearerAuthMiddleware(provider authjwt.Provider, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok || strings.TrimSpace(raw) == "" {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			claims, err := provider.ValidateToken(strings.TrimSpace(raw))
			if err != nil {
				logger.WarnContext(r.Context(), "Rejected bearer token", attr.Error(err))
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(authdomain.WithClaims(r.Context(), claims)))
		})
	}
}
