package auth

import (
	"log/slog"
	"time"

	authdomain "github.com/Black-And-White-Club/fairway/app/modules/auth/domain"
	authhandlers "github.com/Black-And-White-Club/fairway/app/modules/auth/infrastructure/handlers"
	authjwt "github.com/Black-And-White-Club/fairway/app/modules/auth/infrastructure/jwt"
	"github.com/Black-And-White-Club/fairway/config"
	"github.com/go-chi/chi/v5"
)

// Module verifies bearer tokens for the HTTP API and issues them for
// operators.
type Module struct {
	provider authjwt.Provider
	limiter  *authhandlers.ClientLimiter
	origins  []string
	logger   *slog.Logger
}

// NewModule creates a new auth module.
func NewModule(cfg *config.Config, logger *slog.Logger) *Module {
	return &Module{
		provider: authjwt.NewProvider(cfg.JWT.Secret),
		limiter:  authhandlers.NewClientLimiter(cfg.HTTP),
		origins:  cfg.HTTP.AllowedOrigins,
		logger:   logger,
	}
}

// Protect installs CORS, rate limiting and bearer authentication on r.
// Handlers mounted below r can read the caller with authdomain.ClaimsFromContext.
func (m *Module) Protect(r chi.Router) {
	r.Use(authhandlers.CORSMiddleware(m.origins))
	r.Use(authhandlers.RateLimitMiddleware(m.limiter, m.logger))
	r.Use(authhandlers.BearerAuthMiddleware(m.provider, m.logger))
}

// IssueToken signs a token for a club member.
func (m *Module) IssueToken(playerID, clubID string, role authdomain.Role, ttl time.Duration) (string, error) {
	return m.provider.GenerateToken(&authdomain.Claims{
		PlayerID: playerID,
		ClubID:   clubID,
		Role:     role,
	}, ttl)
}
