package statsqueue

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Black-And-White-Club/fairway/app/shared/attr"
	"github.com/Black-And-White-Club/fairway/app/shared/observability"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
)

const queueName = "stats"

// QueueService runs the periodic club digests.
type QueueService interface {
	DigestScheduler
	// Start starts the queue service
	Start(ctx context.Context) error
	// Stop stops the queue service
	Stop(ctx context.Context) error
}

var _ QueueService = (*Service)(nil)

// Service schedules and works stats jobs using River.
type Service struct {
	client   *river.Client[pgx.Tx]
	pool     *pgxpool.Pool
	interval time.Duration
	logger   *slog.Logger
	metrics  observability.OperationMetrics
}

// NewService connects a pgx pool for River, registers the digest workers and
// a periodic sweep every interval.
func NewService(
	ctx context.Context,
	logger *slog.Logger,
	dsn string,
	interval time.Duration,
	metrics observability.OperationMetrics,
	digester Digester,
	publisher message.Publisher,
) (*Service, error) {
	ctxLogger := logger.With(
		attr.String("operation", "new_stats_queue_service"),
		attr.String("component", "river_queue"),
	)

	start := time.Now()
	metrics.RecordOperationAttempt(ctx, "initialize_service")

	ctxLogger.Info("Initializing stats queue service")

	// River requires pgx, not database/sql
	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		ctxLogger.Error("Failed to parse DSN for River", attr.Error(err))
		metrics.RecordOperationFailure(ctx, "initialize_service")
		return nil, fmt.Errorf("failed to parse DSN: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		ctxLogger.Error("Failed to create pgx pool for River", attr.Error(err))
		metrics.RecordOperationFailure(ctx, "initialize_service")
		return nil, fmt.Errorf("failed to create pgx pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		ctxLogger.Error("Failed to ping database for River", attr.Error(err))
		metrics.RecordOperationFailure(ctx, "initialize_service")
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	service := &Service{
		pool:     pool,
		interval: interval,
		logger:   ctxLogger,
		metrics:  metrics,
	}

	workers := river.NewWorkers()
	river.AddWorker(workers, NewDigestWorker(ctxLogger, digester, publisher))
	river.AddWorker(workers, NewDigestSweepWorker(ctxLogger, digester, service))

	riverClient, err := river.NewClient(riverpgxv5.New(pool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: 10},
			queueName:          {MaxWorkers: 5},
		},
		PeriodicJobs: []*river.PeriodicJob{
			river.NewPeriodicJob(
				river.PeriodicInterval(interval),
				func() (river.JobArgs, *river.InsertOpts) {
					return DigestSweepJob{}, &river.InsertOpts{Queue: queueName}
				},
				&river.PeriodicJobOpts{RunOnStart: true},
			),
		},
		Workers: workers,
	})
	if err != nil {
		pool.Close()
		ctxLogger.Error("Failed to create River client", attr.Error(err))
		metrics.RecordOperationFailure(ctx, "initialize_service")
		return nil, fmt.Errorf("failed to create River client: %w", err)
	}
	service.client = riverClient

	metrics.RecordOperationSuccess(ctx, "initialize_service")
	metrics.RecordOperationDuration(ctx, "initialize_service", time.Since(start))

	ctxLogger.Info("Stats queue service initialized", attr.Duration("digest_interval", interval))
	return service, nil
}

// Start starts the River client.
func (s *Service) Start(ctx context.Context) error {
	start := time.Now()
	s.metrics.RecordOperationAttempt(ctx, "start_service")

	if err := s.client.Start(ctx); err != nil {
		s.logger.Error("Failed to start River client", attr.Error(err))
		s.metrics.RecordOperationFailure(ctx, "start_service")
		return fmt.Errorf("failed to start River client: %w", err)
	}

	s.metrics.RecordOperationSuccess(ctx, "start_service")
	s.metrics.RecordOperationDuration(ctx, "start_service", time.Since(start))
	s.logger.Info("Stats queue service started")
	return nil
}

// Stop waits for running jobs, then closes the pool.
func (s *Service) Stop(ctx context.Context) error {
	start := time.Now()
	s.metrics.RecordOperationAttempt(ctx, "stop_service")
	defer s.pool.Close()

	if err := s.client.Stop(ctx); err != nil {
		s.logger.Error("Failed to stop River client", attr.Error(err))
		s.metrics.RecordOperationFailure(ctx, "stop_service")
		return fmt.Errorf("failed to stop River client: %w", err)
	}

	s.metrics.RecordOperationSuccess(ctx, "stop_service")
	s.metrics.RecordOperationDuration(ctx, "stop_service", time.Since(start))
	s.logger.Info("Stats queue service stopped")
	return nil
}

// ScheduleDigest enqueues a digest for clubID. A club gets at most one
// digest per interval.
func (s *Service) ScheduleDigest(ctx context.Context, clubID string) error {
	start := time.Now()
	s.metrics.RecordOperationAttempt(ctx, "schedule_digest")

	if clubID == "" {
		s.metrics.RecordOperationFailure(ctx, "schedule_digest")
		return fmt.Errorf("club id is required")
	}

	res, err := s.client.Insert(ctx, DigestJob{ClubID: clubID}, &river.InsertOpts{
		Queue: queueName,
		UniqueOpts: river.UniqueOpts{
			ByArgs:   true,
			ByPeriod: s.interval,
		},
	})
	if err != nil {
		s.logger.Error("Failed to schedule digest job", attr.ClubID(clubID), attr.Error(err))
		s.metrics.RecordOperationFailure(ctx, "schedule_digest")
		return fmt.Errorf("failed to schedule digest job: %w", err)
	}

	s.metrics.RecordOperationSuccess(ctx, "schedule_digest")
	s.metrics.RecordOperationDuration(ctx, "schedule_digest", time.Since(start))
	s.logger.Debug("Digest job scheduled",
		attr.ClubID(clubID),
		attr.Int64("job_id", res.Job.ID),
		attr.Bool("duplicate", res.UniqueSkippedAsDuplicate),
	)
	return nil
}
