package roundintegrationtests

import (
	"context"
	"log"
	"sync"
	"testing"
	"time"

	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/Black-And-White-Club/fairway/app/eventbus"
	roundservice "github.com/Black-And-White-Club/fairway/app/modules/round/application"
	rounddb "github.com/Black-And-White-Club/fairway/app/modules/round/infrastructure/repositories"
	"github.com/Black-And-White-Club/fairway/integration_tests/testutils"
)

var (
	testEnv     *testutils.TestEnvironment
	testEnvErr  error
	testEnvOnce sync.Once
)

type RoundTestDeps struct {
	Ctx      context.Context
	Repo     rounddb.Repository
	BunDB    *bun.DB
	Service  roundservice.Service
	EventBus *eventbus.Bus
	Env      *testutils.TestEnvironment
}

func GetTestEnv(t *testing.T) *testutils.TestEnvironment {
	t.Helper()

	testEnvOnce.Do(func() {
		log.Println("Initializing round test environment...")
		testEnv, testEnvErr = testutils.NewTestEnvironment(t)
	})
	if testEnvErr != nil {
		t.Fatalf("Round test environment initialization failed: %v", testEnvErr)
	}
	return testEnv
}

// SetupTestRoundService resets the database and wires a round service over
// the shared environment.
func SetupTestRoundService(t *testing.T) RoundTestDeps {
	t.Helper()
	if testing.Short() {
		t.Skip("integration test")
	}

	env := GetTestEnv(t)

	ctx, cancel := context.WithTimeout(env.Ctx, 30*time.Second)
	t.Cleanup(cancel)

	if err := env.Reset(ctx); err != nil {
		t.Fatalf("Failed to reset environment: %v", err)
	}

	repo := rounddb.NewRepository(env.DB, env.Logger)
	return RoundTestDeps{
		Ctx:      ctx,
		Repo:     repo,
		BunDB:    env.DB,
		Service:  roundservice.NewRoundService(repo, env.Logger, nil, noop.NewTracerProvider().Tracer("test"), env.DB),
		EventBus: env.EventBus,
		Env:      env,
	}
}
