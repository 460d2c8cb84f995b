package stats

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/Black-And-White-Club/fairway/app/eventbus"
	statsservice "github.com/Black-And-White-Club/fairway/app/modules/stats/application"
	statsdomain "github.com/Black-And-White-Club/fairway/app/modules/stats/domain"
	statshandlers "github.com/Black-And-White-Club/fairway/app/modules/stats/infrastructure/handlers"
	statshttp "github.com/Black-And-White-Club/fairway/app/modules/stats/infrastructure/http"
	statsqueue "github.com/Black-And-White-Club/fairway/app/modules/stats/infrastructure/queue"
	statsrouter "github.com/Black-And-White-Club/fairway/app/modules/stats/infrastructure/router"
	"github.com/Black-And-White-Club/fairway/app/shared/attr"
	"github.com/Black-And-White-Club/fairway/app/shared/observability"
	"github.com/Black-And-White-Club/fairway/config"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-chi/chi/v5"
)

// Module represents the stats module.
type Module struct {
	EventBus     eventbus.EventBus
	StatsService statsservice.Service
	StatsRouter  *statsrouter.StatsRouter
	QueueService statsqueue.QueueService
	http         *statshttp.Handlers
	logger       *slog.Logger
	cancelFunc   context.CancelFunc
}

// NewStatsModule creates a new instance of the Stats module. The digest
// queue is only created when it is enabled in cfg.
func NewStatsModule(
	ctx context.Context,
	cfg *config.Config,
	obs *observability.Observability,
	rounds statsservice.RoundReader,
	eventBus eventbus.EventBus,
	router *message.Router,
) (*Module, error) {
	logger := obs.Logger
	logger.InfoContext(ctx, "stats.NewStatsModule called")

	metrics, err := observability.NewOperationMetrics(obs.Registry, "stats")
	if err != nil {
		return nil, fmt.Errorf("failed to create stats metrics: %w", err)
	}

	calc := statsdomain.NewCalculator(statsdomain.WithThresholds(cfg.Stats.Thresholds()))
	statsService := statsservice.NewStatsService(rounds, calc, logger, metrics, obs.Tracer)

	statsRouter := statsrouter.NewStatsRouter(logger, router, eventBus, eventBus, obs.Tracer, metrics)
	handlers := statshandlers.NewStatsHandlers(statsService, logger, obs.Tracer)
	if err := statsRouter.Configure(ctx, handlers); err != nil {
		return nil, fmt.Errorf("failed to configure stats router: %w", err)
	}

	module := &Module{
		EventBus:     eventBus,
		StatsService: statsService,
		StatsRouter:  statsRouter,
		http:         statshttp.NewHandlers(statsService, logger),
		logger:       logger,
	}

	if cfg.Queue.Disabled {
		logger.InfoContext(ctx, "Stats digest queue disabled")
		return module, nil
	}

	queueMetrics, err := observability.NewOperationMetrics(obs.Registry, "stats_queue")
	if err != nil {
		return nil, fmt.Errorf("failed to create stats queue metrics: %w", err)
	}
	queueService, err := statsqueue.NewService(ctx, logger, cfg.Postgres.DSN, cfg.Queue.DigestInterval, queueMetrics, statsService, eventBus)
	if err != nil {
		return nil, fmt.Errorf("failed to create stats queue service: %w", err)
	}
	module.QueueService = queueService

	return module, nil
}

// RegisterRoutes mounts the stats endpoints on an authenticated router.
func (m *Module) RegisterRoutes(r chi.Router) {
	m.http.Routes(r)
}

func (m *Module) Run(ctx context.Context, wg *sync.WaitGroup) {
	m.logger.Info("Starting stats module")

	ctx, cancel := context.WithCancel(ctx)
	m.cancelFunc = cancel
	defer cancel()

	if wg != nil {
		defer wg.Done()
	}

	if m.QueueService != nil {
		if err := m.QueueService.Start(context.WithoutCancel(ctx)); err != nil {
			m.logger.Error("Failed to start stats queue service", attr.Error(err))
		}
	}

	<-ctx.Done()
	m.logger.Info("Stats module goroutine stopped")
}

func (m *Module) Close() error {
	m.logger.Info("Stopping stats module")
	if m.cancelFunc != nil {
		m.cancelFunc()
	}
	if m.QueueService != nil {
		if err := m.QueueService.Stop(context.Background()); err != nil {
			return err
		}
	}
	m.logger.Info("Stats module stopped")
	return nil
}
