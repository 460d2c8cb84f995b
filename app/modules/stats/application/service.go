package statsservice

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	rounddomain "github.com/Black-And-White-Club/fairway/app/modules/round/domain"
	statsdomain "github.com/Black-And-White-Club/fairway/app/modules/stats/domain"
	"github.com/Black-And-White-Club/fairway/app/shared/attr"
	"github.com/Black-And-White-Club/fairway/app/shared/observability"
	"github.com/Black-And-White-Club/fairway/app/shared/results"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// StatsService implements the Service interface on top of the pure
// statistics engine.
type StatsService struct {
	rounds  RoundReader
	calc    *statsdomain.Calculator
	logger  *slog.Logger
	metrics observability.OperationMetrics
	tracer  trace.Tracer
	palette ChartPalette
	now     func() time.Time
}

var _ Service = (*StatsService)(nil)

// Option customises a StatsService.
type Option func(*StatsService)

// WithPalette replaces the chart colours.
func WithPalette(p ChartPalette) Option {
	return func(s *StatsService) { s.palette = p }
}

// WithNow replaces the clock used to stamp digests.
func WithNow(now func() time.Time) Option {
	return func(s *StatsService) { s.now = now }
}

// NewStatsService creates a new StatsService.
func NewStatsService(
	rounds RoundReader,
	calc *statsdomain.Calculator,
	logger *slog.Logger,
	metrics observability.OperationMetrics,
	tracer trace.Tracer,
	opts ...Option,
) *StatsService {
	if calc == nil {
		calc = statsdomain.NewCalculator()
	}
	if logger == nil {
		logger = slog.Default()
	}
	if metrics == nil {
		metrics = observability.NewNoopMetrics()
	}
	s := &StatsService{
		rounds:  rounds,
		calc:    calc,
		logger:  logger,
		metrics: metrics,
		tracer:  tracer,
		palette: DefaultPalette(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// operationFunc is the generic signature for service operation functions.
type operationFunc[S any, F any] func(ctx context.Context) (results.OperationResult[S, F], error)

// withTelemetry wraps a service operation with tracing, metrics, and panic recovery.
func withTelemetry[S any, F any](
	s *StatsService,
	ctx context.Context,
	operationName string,
	clubID string,
	op operationFunc[S, F],
) (result results.OperationResult[S, F], err error) {
	if s.tracer != nil {
		var span trace.Span
		ctx, span = s.tracer.Start(ctx, operationName, trace.WithAttributes(
			attribute.String("operation", operationName),
			attribute.String("club_id", clubID),
		))
		defer func() {
			if err != nil {
				span.RecordError(err)
			}
			span.End()
		}()
	}

	s.metrics.RecordOperationAttempt(ctx, operationName)
	startTime := time.Now()
	defer func() {
		s.metrics.RecordOperationDuration(ctx, operationName, time.Since(startTime))
	}()

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic in %s: %v", operationName, r)
			s.logger.ErrorContext(ctx, "Critical panic recovered",
				attr.ClubID(clubID),
				attr.ExtractCorrelationID(ctx),
				attr.Error(err),
			)
			s.metrics.RecordOperationFailure(ctx, operationName)
			result = results.OperationResult[S, F]{}
		}
	}()

	result, err = op(ctx)

	if err != nil {
		wrappedErr := fmt.Errorf("%s: %w", operationName, err)
		s.logger.ErrorContext(ctx, "Operation failed with error",
			attr.ExtractCorrelationID(ctx),
			attr.String("operation", operationName),
			attr.ClubID(clubID),
			attr.Error(wrappedErr),
		)
		s.metrics.RecordOperationFailure(ctx, operationName)
		return result, wrappedErr
	}

	if result.IsFailure() {
		s.logger.InfoContext(ctx, "Operation returned failure result",
			attr.ExtractCorrelationID(ctx),
			attr.String("operation", operationName),
			attr.ClubID(clubID),
			attr.Any("failure_payload", *result.Failure),
		)
		s.metrics.RecordOperationFailure(ctx, operationName)
	}

	if result.IsSuccess() {
		s.metrics.RecordOperationSuccess(ctx, operationName)
	}

	return result, nil
}

// settle sorts an engine outcome into success, failure result or error.
func settle[S any](v S, err error) (results.OperationResult[S, error], error) {
	if err != nil {
		if IsQueryFailure(err) {
			return results.FailureResult[S, error](err), nil
		}
		return results.OperationResult[S, error]{}, err
	}
	return results.SuccessResult[S, error](v), nil
}

// clubRounds loads every round of the club.
func (s *StatsService) clubRounds(ctx context.Context, clubID string) ([]rounddomain.Round, error) {
	if strings.TrimSpace(clubID) == "" {
		return nil, ErrMissingClub
	}
	rounds, err := s.rounds.ListClubRounds(ctx, nil, clubID)
	if err != nil {
		return nil, fmt.Errorf("failed to list club rounds: %w", err)
	}
	return rounds, nil
}

// clubStats loads the club's rounds and folds them into windowed member
// stats.
func (s *StatsService) clubStats(ctx context.Context, clubID string) ([]rounddomain.Round, []statsdomain.MemberStats, error) {
	rounds, err := s.clubRounds(ctx, clubID)
	if err != nil {
		return nil, nil, err
	}
	return rounds, s.calc.MemberStats(rounds), nil
}

// unwrap turns a result back into a plain value and error for callers
// without a failure channel.
func unwrap[S any](r results.OperationResult[S, error], err error) (S, error) {
	var zero S
	if err != nil {
		return zero, err
	}
	if r.Failure != nil {
		return zero, *r.Failure
	}
	if r.Success == nil {
		return zero, fmt.Errorf("empty result")
	}
	return *r.Success, nil
}
