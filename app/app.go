// Package app wires configuration, infrastructure and modules into a
// running service.
package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/Black-And-White-Club/fairway/app/eventbus"
	"github.com/Black-And-White-Club/fairway/app/modules/auth"
	"github.com/Black-And-White-Club/fairway/app/modules/round"
	rounddb "github.com/Black-And-White-Club/fairway/app/modules/round/infrastructure/repositories"
	"github.com/Black-And-White-Club/fairway/app/modules/stats"
	"github.com/Black-And-White-Club/fairway/app/shared/attr"
	"github.com/Black-And-White-Club/fairway/app/shared/observability"
	"github.com/Black-And-White-Club/fairway/config"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
)

// App holds the long-lived handles of the service.
type App struct {
	Config          *config.Config
	Observability   *observability.Observability
	DB              *bun.DB
	EventBus        *eventbus.Bus
	WatermillRouter *message.Router
	AuthModule      *auth.Module
	RoundModule     *round.Module
	StatsModule     *stats.Module

	wg sync.WaitGroup
}

// NewApp connects Postgres and the event bus and builds every module. The
// caller owns the returned App and must Close it.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	obs, err := observability.Init(ctx, observability.Config{
		Environment:  cfg.Observability.Environment,
		LogLevel:     cfg.Observability.LogLevel,
		OTLPEndpoint: cfg.Observability.OTLPEndpoint,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize observability: %w", err)
	}
	return newApp(ctx, cfg, obs)
}

func newApp(ctx context.Context, cfg *config.Config, obs *observability.Observability) (*App, error) {
	logger := obs.Logger
	app := &App{Config: cfg, Observability: obs}

	pgdb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(cfg.Postgres.DSN)))
	app.DB = bun.NewDB(pgdb, pgdialect.New())
	if err := app.DB.PingContext(ctx); err != nil {
		_ = app.DB.Close()
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	if cfg.NATS.URL != "" {
		bus, err := eventbus.NewNATS(eventbus.Options{URL: cfg.NATS.URL, QueueGroup: cfg.NATS.QueueGroup}, logger)
		if err != nil {
			_ = app.DB.Close()
			return nil, err
		}
		app.EventBus = bus
	} else {
		logger.WarnContext(ctx, "nats.url not set, using in-process event bus")
		app.EventBus = eventbus.NewInMemory(logger)
	}

	router, err := newWatermillRouter(obs)
	if err != nil {
		_ = app.Close(ctx)
		return nil, err
	}
	app.WatermillRouter = router

	repo := rounddb.NewRepository(app.DB, logger)

	app.AuthModule = auth.NewModule(cfg, logger)

	app.RoundModule, err = round.NewRoundModule(ctx, obs, app.DB, repo, app.EventBus, router)
	if err != nil {
		_ = app.Close(ctx)
		return nil, fmt.Errorf("failed to create round module: %w", err)
	}

	app.StatsModule, err = stats.NewStatsModule(ctx, cfg, obs, repo, app.EventBus, router)
	if err != nil {
		_ = app.Close(ctx)
		return nil, fmt.Errorf("failed to create stats module: %w", err)
	}

	logger.InfoContext(ctx, "Application initialized")
	return app, nil
}

// Run starts the modules and the message router and serves HTTP until ctx
// is cancelled.
func (app *App) Run(ctx context.Context) error {
	logger := app.Observability.Logger

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	app.wg.Add(2)
	go app.RoundModule.Run(ctx, &app.wg)
	go app.StatsModule.Run(ctx, &app.wg)

	routerErr := make(chan error, 1)
	go func() {
		routerErr <- app.WatermillRouter.Run(ctx)
	}()
	<-app.WatermillRouter.Running()
	logger.InfoContext(ctx, "Message router running")

	serveErr := app.Serve(ctx)
	cancel()

	if err := <-routerErr; err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("Message router stopped with error", attr.Error(err))
		return errors.Join(serveErr, err)
	}
	return serveErr
}

// Close releases every resource in reverse order of creation.
func (app *App) Close(ctx context.Context) error {
	var errs []error
	if app.StatsModule != nil {
		errs = append(errs, app.StatsModule.Close())
	}
	if app.RoundModule != nil {
		errs = append(errs, app.RoundModule.Close())
	}
	app.wg.Wait()
	if app.WatermillRouter != nil {
		errs = append(errs, app.WatermillRouter.Close())
	}
	if app.EventBus != nil {
		errs = append(errs, app.EventBus.Close())
	}
	if app.DB != nil {
		errs = append(errs, app.DB.Close())
	}
	if app.Observability != nil {
		errs = append(errs, app.Observability.Shutdown(ctx))
	}
	return errors.Join(errs...)
}
