package statsqueue

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Black-And-White-Club/fairway/app/eventbus"
	"github.com/Black-And-White-Club/fairway/app/shared/attr"
	"github.com/Black-And-White-Club/fairway/app/shared/handlerwrapper"
	statsevents "github.com/Black-And-White-Club/fairway/pkg/events/stats"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"github.com/riverqueue/river"
)

// Digester is the slice of the stats service the workers need.
type Digester interface {
	Digest(ctx context.Context, clubID string) (statsevents.DigestGeneratedPayloadV1, error)
	ClubIDs(ctx context.Context) ([]string, error)
}

// DigestScheduler enqueues one club's digest.
type DigestScheduler interface {
	ScheduleDigest(ctx context.Context, clubID string) error
}

// DigestWorker publishes a club digest on the base topic and on the club's
// scoped topic.
type DigestWorker struct {
	river.WorkerDefaults[DigestJob]
	logger    *slog.Logger
	digester  Digester
	publisher message.Publisher
}

func NewDigestWorker(logger *slog.Logger, digester Digester, publisher message.Publisher) *DigestWorker {
	return &DigestWorker{logger: logger, digester: digester, publisher: publisher}
}

func (w *DigestWorker) Work(ctx context.Context, job *river.Job[DigestJob]) error {
	clubID := job.Args.ClubID
	ctxLogger := w.logger.With(
		attr.ClubID(clubID),
		attr.Int64("job_id", job.ID),
	)

	digest, err := w.digester.Digest(ctx, clubID)
	if err != nil {
		ctxLogger.ErrorContext(ctx, "Failed to compute digest", attr.Error(err))
		return fmt.Errorf("failed to compute digest for %s: %w", clubID, err)
	}

	msg, err := handlerwrapper.NewMessage(statsevents.DigestGeneratedV1, digest, "")
	if err != nil {
		return err
	}
	if err := w.publisher.Publish(statsevents.DigestGeneratedV1, msg); err != nil {
		return fmt.Errorf("failed to publish digest: %w", err)
	}

	scoped, err := handlerwrapper.NewMessage(statsevents.DigestGeneratedV1, digest, middleware.MessageCorrelationID(msg))
	if err != nil {
		return err
	}
	if err := eventbus.PublishClubScoped(w.publisher, statsevents.DigestGeneratedV1, clubID, scoped); err != nil {
		return fmt.Errorf("failed to publish club digest: %w", err)
	}

	ctxLogger.InfoContext(ctx, "Published club digest",
		attr.Int("members", digest.Members),
		attr.Int("leaders", len(digest.Leaders)),
	)
	return nil
}

// DigestSweepWorker schedules a digest for every club. A club that cannot
// be scheduled does not stop the others; the sweep fails afterwards so
// River retries it.
type DigestSweepWorker struct {
	river.WorkerDefaults[DigestSweepJob]
	logger    *slog.Logger
	digester  Digester
	scheduler DigestScheduler
}

func NewDigestSweepWorker(logger *slog.Logger, digester Digester, scheduler DigestScheduler) *DigestSweepWorker {
	return &DigestSweepWorker{logger: logger, digester: digester, scheduler: scheduler}
}

func (w *DigestSweepWorker) Work(ctx context.Context, job *river.Job[DigestSweepJob]) error {
	clubs, err := w.digester.ClubIDs(ctx)
	if err != nil {
		return fmt.Errorf("failed to list clubs: %w", err)
	}

	failed := 0
	for _, clubID := range clubs {
		if err := w.scheduler.ScheduleDigest(ctx, clubID); err != nil {
			w.logger.WarnContext(ctx, "Failed to schedule club digest",
				attr.ClubID(clubID),
				attr.Error(err),
			)
			failed++
		}
	}

	w.logger.InfoContext(ctx, "Digest sweep completed",
		attr.Int64("job_id", job.ID),
		attr.Int("clubs", len(clubs)),
		attr.Int("failed", failed),
	)
	if failed > 0 {
		return fmt.Errorf("failed to schedule %d of %d club digests", failed, len(clubs))
	}
	return nil
}
