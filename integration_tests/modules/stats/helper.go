package statsintegrationtests

import (
	"context"
	"sync"
	"testing"
	"time"

	"go.opentelemetry.io/otel/trace/noop"

	rounddomain "github.com/Black-And-White-Club/fairway/app/modules/round/domain"
	rounddb "github.com/Black-And-White-Club/fairway/app/modules/round/infrastructure/repositories"
	statsservice "github.com/Black-And-White-Club/fairway/app/modules/stats/application"
	statsdomain "github.com/Black-And-White-Club/fairway/app/modules/stats/domain"
	"github.com/Black-And-White-Club/fairway/integration_tests/testutils"
)

var (
	testEnv     *testutils.TestEnvironment
	testEnvErr  error
	testEnvOnce sync.Once
)

type StatsTestDeps struct {
	Ctx     context.Context
	Repo    rounddb.Repository
	Service *statsservice.StatsService
	Env     *testutils.TestEnvironment
}

func SetupTestStatsService(t *testing.T) StatsTestDeps {
	t.Helper()
	if testing.Short() {
		t.Skip("integration test")
	}

	testEnvOnce.Do(func() {
		testEnv, testEnvErr = testutils.NewTestEnvironment(t)
	})
	if testEnvErr != nil {
		t.Fatalf("Stats test environment initialization failed: %v", testEnvErr)
	}

	ctx, cancel := context.WithTimeout(testEnv.Ctx, 60*time.Second)
	t.Cleanup(cancel)
	if err := testEnv.Reset(ctx); err != nil {
		t.Fatalf("Failed to reset environment: %v", err)
	}

	repo := rounddb.NewRepository(testEnv.DB, testEnv.Logger)
	svc := statsservice.NewStatsService(repo, statsdomain.NewCalculator(), testEnv.Logger, nil,
		noop.NewTracerProvider().Tracer("test"))
	return StatsTestDeps{Ctx: ctx, Repo: repo, Service: svc, Env: testEnv}
}

func storeRounds(t *testing.T, deps StatsTestDeps, rounds []rounddomain.Round) {
	t.Helper()
	for _, r := range rounds {
		if err := deps.Repo.CreateRound(deps.Ctx, nil, r); err != nil {
			t.Fatalf("CreateRound: %v", err)
		}
	}
}
