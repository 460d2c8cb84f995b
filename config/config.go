package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	statsdomain "github.com/Black-And-White-Club/fairway/app/modules/stats/domain"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config struct to hold the configuration settings
type Config struct {
	Postgres      PostgresConfig      `yaml:"postgres"`
	NATS          NATSConfig          `yaml:"nats"`
	HTTP          HTTPConfig          `yaml:"http"`
	JWT           JWTConfig           `yaml:"jwt"`
	Observability ObservabilityConfig `yaml:"observability"`
	Stats         StatsConfig         `yaml:"stats"`
	Queue         QueueConfig         `yaml:"queue"`
}

// PostgresConfig holds Postgres configuration.
type PostgresConfig struct {
	DSN string `yaml:"dsn" env:"DATABASE_URL"`
}

// NATSConfig holds NATS configuration. An empty URL selects the in-process
// event bus.
type NATSConfig struct {
	URL        string `yaml:"url" env:"NATS_URL"`
	QueueGroup string `yaml:"queue_group" env:"NATS_QUEUE_GROUP"`
}

// HTTPConfig holds the read/write API settings.
type HTTPConfig struct {
	Address        string   `yaml:"address" env:"HTTP_ADDRESS"`
	AllowedOrigins []string `yaml:"allowed_origins" env:"HTTP_ALLOWED_ORIGINS" envSeparator:","`
	RateLimit      float64  `yaml:"rate_limit" env:"HTTP_RATE_LIMIT"`
	RateBurst      int      `yaml:"rate_burst" env:"HTTP_RATE_BURST"`
}

// JWTConfig holds JWT configuration.
type JWTConfig struct {
	Secret string `yaml:"secret" env:"JWT_SECRET"`
}

// ObservabilityConfig holds configuration for observability components
type ObservabilityConfig struct {
	MetricsAddress string `yaml:"metrics_address" env:"METRICS_ADDRESS"`
	OTLPEndpoint   string `yaml:"otlp_endpoint" env:"OTLP_ENDPOINT"`
	Environment    string `yaml:"environment" env:"ENV"`
	LogLevel       string `yaml:"log_level" env:"LOG_LEVEL"`
}

// StatsConfig overrides the statistics thresholds. Zero keeps the default.
type StatsConfig struct {
	RecentRounds     int `yaml:"recent_rounds" env:"STATS_RECENT_ROUNDS"`
	SandSaveMaxYards int `yaml:"sand_save_max_yards" env:"STATS_SAND_SAVE_MAX_YARDS"`
	DriveMinYards    int `yaml:"drive_min_yards" env:"STATS_DRIVE_MIN_YARDS"`
	DriveMaxYards    int `yaml:"drive_max_yards" env:"STATS_DRIVE_MAX_YARDS"`
}

// Thresholds converts the section for the stats calculator.
func (s StatsConfig) Thresholds() statsdomain.Thresholds {
	return statsdomain.Thresholds{
		RecentRounds:     s.RecentRounds,
		SandSaveMaxYards: s.SandSaveMaxYards,
		DriveMinYards:    s.DriveMinYards,
		DriveMaxYards:    s.DriveMaxYards,
	}
}

// QueueConfig holds background job settings.
type QueueConfig struct {
	DigestInterval time.Duration `yaml:"digest_interval" env:"QUEUE_DIGEST_INTERVAL"`
	Disabled       bool          `yaml:"disabled" env:"QUEUE_DISABLED"`
}

// LoadConfig loads the configuration from a YAML file, then lets
// environment variables override individual fields. A missing file is not
// an error: the environment alone can configure the service.
func LoadConfig(filename string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(filename)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config: %w", err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse env: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.HTTP.Address == "" {
		c.HTTP.Address = ":8080"
	}
	if c.HTTP.RateLimit <= 0 {
		c.HTTP.RateLimit = 5
	}
	if c.HTTP.RateBurst <= 0 {
		c.HTTP.RateBurst = 10
	}
	if c.Queue.DigestInterval <= 0 {
		c.Queue.DigestInterval = 24 * time.Hour
	}
	if c.Observability.LogLevel == "" {
		c.Observability.LogLevel = "info"
	}
}

// Validate reports every missing or out-of-range setting at once.
func (c *Config) Validate() error {
	var errs []error
	if c.Postgres.DSN == "" {
		errs = append(errs, errors.New("postgres.dsn (DATABASE_URL) is required"))
	}
	if len(c.JWT.Secret) < 32 {
		errs = append(errs, errors.New("jwt.secret (JWT_SECRET) must be at least 32 bytes"))
	}
	if c.Stats.RecentRounds < 0 {
		errs = append(errs, errors.New("stats.recent_rounds must not be negative"))
	}
	if c.Stats.DriveMinYards > 0 && c.Stats.DriveMaxYards > 0 && c.Stats.DriveMinYards >= c.Stats.DriveMaxYards {
		errs = append(errs, errors.New("stats.drive_min_yards must be below stats.drive_max_yards"))
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
}
