package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	statsdomain "github.com/Black-And-White-Club/fairway/app/modules/stats/domain"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfigFromFile(t *testing.T) {
	path := writeConfig(t, `
postgres:
  dsn: postgres://file
jwt:
  secret: `+testSecret+`
http:
  allowed_origins: [https://club.example]
stats:
  recent_rounds: 10
queue:
  digest_interval: 6h
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "postgres://file", cfg.Postgres.DSN)
	assert.Equal(t, []string{"https://club.example"}, cfg.HTTP.AllowedOrigins)
	assert.Equal(t, ":8080", cfg.HTTP.Address)
	assert.Equal(t, 6*time.Hour, cfg.Queue.DigestInterval)
	assert.Equal(t, "info", cfg.Observability.LogLevel)

	th := statsdomain.NewCalculator(statsdomain.WithThresholds(cfg.Stats.Thresholds())).Thresholds()
	assert.Equal(t, 10, th.RecentRounds)
	assert.Equal(t, statsdomain.DefaultSandSaveMaxYards, th.SandSaveMaxYards)
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "postgres:\n  dsn: postgres://file\njwt:\n  secret: "+testSecret+"\n")
	t.Setenv("DATABASE_URL", "postgres://env")
	t.Setenv("HTTP_ALLOWED_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("STATS_DRIVE_MAX_YARDS", "350")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "postgres://env", cfg.Postgres.DSN)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.HTTP.AllowedOrigins)
	assert.Equal(t, 350, cfg.Stats.DriveMaxYards)
}

func TestMissingFileUsesEnv(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://env")
	t.Setenv("JWT_SECRET", testSecret)

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "postgres://env", cfg.Postgres.DSN)
}

func TestValidate(t *testing.T) {
	path := writeConfig(t, "jwt:\n  secret: short\nstats:\n  drive_min_yards: 300\n  drive_max_yards: 200\n")

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.Contains(t, err.Error(), "postgres.dsn")
	assert.Contains(t, err.Error(), "jwt.secret")
	assert.Contains(t, err.Error(), "drive_min_yards")
}
