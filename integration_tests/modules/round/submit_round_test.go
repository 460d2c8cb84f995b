package roundintegrationtests

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"go.opentelemetry.io/otel/trace/noop"

	roundservice "github.com/Black-And-White-Club/fairway/app/modules/round/application"
	roundhandlers "github.com/Black-And-White-Club/fairway/app/modules/round/infrastructure/handlers"
	roundrouter "github.com/Black-And-White-Club/fairway/app/modules/round/infrastructure/router"
	"github.com/Black-And-White-Club/fairway/app/shared/handlerwrapper"
	"github.com/Black-And-White-Club/fairway/app/shared/observability"
	"github.com/Black-And-White-Club/fairway/integration_tests/testutils"
	roundevents "github.com/Black-And-White-Club/fairway/pkg/events/round"
)

func TestSubmitRoundStoresRound(t *testing.T) {
	deps := SetupTestRoundService(t)
	gen := testutils.NewTestDataGenerator(5)

	sub := gen.Submission("club-1", "ana", "Pine Hills", gen.Pars(18))
	sub.PlayedOn = time.Now().Add(-24 * time.Hour).Format(time.DateOnly)

	result, err := deps.Service.SubmitRound(deps.Ctx, sub)
	if err != nil {
		t.Fatalf("SubmitRound: %v", err)
	}
	if result.Success == nil {
		t.Fatalf("expected success, got failure %v", *result.Failure)
	}

	stored, err := deps.Repo.GetRound(deps.Ctx, nil, result.Success.ID)
	if err != nil {
		t.Fatalf("GetRound: %v", err)
	}
	if stored.TotalScore() != result.Success.TotalScore() || stored.HoleCount() != 18 {
		t.Fatalf("stored round %d/%d differs from submitted %d/18",
			stored.TotalScore(), stored.HoleCount(), result.Success.TotalScore())
	}
}

func TestSubmitRoundRejectsInvalidSubmission(t *testing.T) {
	deps := SetupTestRoundService(t)
	gen := testutils.NewTestDataGenerator(6)

	sub := gen.Submission("club-1", "ana", "Pine Hills", gen.Pars(7))

	result, err := deps.Service.SubmitRound(deps.Ctx, sub)
	if err != nil {
		t.Fatalf("SubmitRound: %v", err)
	}
	if result.Failure == nil || !errors.Is(*result.Failure, roundservice.ErrInvalidHoleCount) {
		t.Fatalf("expected ErrInvalidHoleCount failure, got %+v", result)
	}

	rounds, err := deps.Repo.ListClubRounds(deps.Ctx, nil, "club-1")
	if err != nil {
		t.Fatalf("ListClubRounds: %v", err)
	}
	if len(rounds) != 0 {
		t.Fatalf("rejected submission was stored")
	}
}

// startRoundRouter runs the round handlers over the NATS event bus until
// the test ends.
func startRoundRouter(t *testing.T, deps RoundTestDeps) {
	t.Helper()

	logger := slog.New(slog.DiscardHandler)
	router, err := message.NewRouter(message.RouterConfig{}, watermill.NewSlogLogger(logger))
	if err != nil {
		t.Fatalf("NewRouter: %v", err)
	}

	tracer := noop.NewTracerProvider().Tracer("test")
	rr := roundrouter.NewRoundRouter(logger, router, deps.EventBus, deps.EventBus, tracer, observability.NewNoopMetrics())
	if err := rr.Configure(deps.Ctx, roundhandlers.NewRoundHandlers(deps.Service, logger, tracer)); err != nil {
		t.Fatalf("Configure: %v", err)
	}

	ctx, cancel := context.WithCancel(deps.Ctx)
	go func() {
		_ = router.Run(ctx)
	}()
	t.Cleanup(func() {
		cancel()
		_ = router.Close()
	})

	select {
	case <-router.Running():
	case <-time.After(10 * time.Second):
		t.Fatal("router did not start")
	}
}

func TestRoundSubmissionOverEventBus(t *testing.T) {
	deps := SetupTestRoundService(t)
	gen := testutils.NewTestDataGenerator(8)

	saved, err := deps.EventBus.Subscribe(deps.Ctx, roundevents.RoundSavedV1)
	if err != nil {
		t.Fatalf("Subscribe: %v", err)
	}
	startRoundRouter(t, deps)

	sub := gen.Submission("club-1", "bo", "Pine Hills", gen.Pars(9))
	msg, err := handlerwrapper.NewMessage(roundevents.RoundSubmissionRequestedV1,
		&roundevents.RoundSubmissionRequestedPayloadV1{Submission: sub}, watermill.NewUUID())
	if err != nil {
		t.Fatalf("NewMessage: %v", err)
	}
	if err := deps.EventBus.Publish(roundevents.RoundSubmissionRequestedV1, msg); err != nil {
		t.Fatalf("Publish: %v", err)
	}

	select {
	case m := <-saved:
		m.Ack()
		var payload roundevents.RoundSavedPayloadV1
		if err := json.Unmarshal(m.Payload, &payload); err != nil {
			t.Fatalf("decode saved payload: %v", err)
		}
		if payload.ClubID != "club-1" || payload.PlayerID != "bo" || payload.HoleCount != 9 {
			t.Fatalf("unexpected saved payload %+v", payload)
		}
		if _, err := deps.Repo.GetRound(deps.Ctx, nil, payload.RoundID); err != nil {
			t.Fatalf("saved round not stored: %v", err)
		}
	case <-time.After(15 * time.Second):
		t.Fatal("timed out waiting for round.saved")
	}
}
