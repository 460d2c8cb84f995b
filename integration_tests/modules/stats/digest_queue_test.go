package statsintegrationtests

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/Black-And-White-Club/fairway/app/eventbus"
	statsqueue "github.com/Black-And-White-Club/fairway/app/modules/stats/infrastructure/queue"
	"github.com/Black-And-White-Club/fairway/app/shared/observability"
	"github.com/Black-And-White-Club/fairway/integration_tests/testutils"
	statsevents "github.com/Black-And-White-Club/fairway/pkg/events/stats"
)

func TestDigestSweepPublishesClubDigest(t *testing.T) {
	deps := SetupTestStatsService(t)
	gen := testutils.NewTestDataGenerator(31)

	players := gen.PlayerIDs(3)
	storeRounds(t, deps, gen.Club("club-1", "Pine Hills", players, 2, time.Now()))

	digests, err := deps.Env.EventBus.Subscribe(deps.Ctx, eventbus.ClubScopedTopic(statsevents.DigestGeneratedV1, "club-1"))
	if err != nil {
		t.Fatalf("Subscribe: %v", err)
	}

	queue, err := statsqueue.NewService(deps.Ctx, deps.Env.Logger, deps.Env.Config.Postgres.DSN, time.Hour,
		observability.NewNoopMetrics(), deps.Service, deps.Env.EventBus)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	if err := queue.Start(deps.Ctx); err != nil {
		t.Fatalf("Start: %v", err)
	}
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = queue.Stop(ctx)
	})

	select {
	case m := <-digests:
		m.Ack()
		var digest statsevents.DigestGeneratedPayloadV1
		if err := json.Unmarshal(m.Payload, &digest); err != nil {
			t.Fatalf("decode digest: %v", err)
		}
		if digest.ClubID != "club-1" || digest.Members != len(players) || len(digest.Leaders) == 0 {
			t.Fatalf("unexpected digest %+v", digest)
		}
	case <-time.After(30 * time.Second):
		t.Fatal("timed out waiting for club digest")
	}
}
