package round

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/Black-And-White-Club/fairway/app/eventbus"
	roundservice "github.com/Black-And-White-Club/fairway/app/modules/round/application"
	roundhandlers "github.com/Black-And-White-Club/fairway/app/modules/round/infrastructure/handlers"
	roundhttp "github.com/Black-And-White-Club/fairway/app/modules/round/infrastructure/http"
	rounddb "github.com/Black-And-White-Club/fairway/app/modules/round/infrastructure/repositories"
	roundrouter "github.com/Black-And-White-Club/fairway/app/modules/round/infrastructure/router"
	"github.com/Black-And-White-Club/fairway/app/shared/observability"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-chi/chi/v5"
	"github.com/uptrace/bun"
)

// Module represents the round module.
type Module struct {
	EventBus     eventbus.EventBus
	RoundService roundservice.Service
	RoundRouter  *roundrouter.RoundRouter
	http         *roundhttp.Handlers
	logger       *slog.Logger
	cancelFunc   context.CancelFunc
}

// NewRoundModule creates a new instance of the Round module.
func NewRoundModule(
	ctx context.Context,
	obs *observability.Observability,
	db *bun.DB,
	repo rounddb.Repository,
	eventBus eventbus.EventBus,
	router *message.Router,
) (*Module, error) {
	logger := obs.Logger
	logger.InfoContext(ctx, "round.NewRoundModule called")

	metrics, err := observability.NewOperationMetrics(obs.Registry, "round")
	if err != nil {
		return nil, fmt.Errorf("failed to create round metrics: %w", err)
	}

	roundService := roundservice.NewRoundService(repo, logger, metrics, obs.Tracer, db)

	roundRouter := roundrouter.NewRoundRouter(logger, router, eventBus, eventBus, obs.Tracer, metrics)
	handlers := roundhandlers.NewRoundHandlers(roundService, logger, obs.Tracer)
	if err := roundRouter.Configure(ctx, handlers); err != nil {
		return nil, fmt.Errorf("failed to configure round router: %w", err)
	}

	return &Module{
		EventBus:     eventBus,
		RoundService: roundService,
		RoundRouter:  roundRouter,
		http:         roundhttp.NewHandlers(roundService, eventBus, logger),
		logger:       logger,
	}, nil
}

// RegisterRoutes mounts the round endpoints on an authenticated router.
func (m *Module) RegisterRoutes(r chi.Router) {
	m.http.Routes(r)
}

func (m *Module) Run(ctx context.Context, wg *sync.WaitGroup) {
	m.logger.Info("Starting round module")

	ctx, cancel := context.WithCancel(ctx)
	m.cancelFunc = cancel
	defer cancel()

	if wg != nil {
		defer wg.Done()
	}

	<-ctx.Done()
	m.logger.Info("Round module goroutine stopped")
}

func (m *Module) Close() error {
	m.logger.Info("Stopping round module")
	if m.cancelFunc != nil {
		m.cancelFunc()
	}
	m.logger.Info("Round module stopped")
	return nil
}
