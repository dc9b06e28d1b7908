package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET, default=wms-console-dev-secret"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	Session SessionConfig
	Summary SummaryConfig

	// Mongo and Redis are optional. An empty URI/address disables them.
	Mongo MongoConfig
	Redis RedisConfig
}

type SessionConfig struct {
	// TTL bounds both the bearer token lifetime and idle instance eviction.
	TTL           time.Duration `env:"SESSION_TTL,            default=30m"`
	SweepInterval time.Duration `env:"SESSION_SWEEP_INTERVAL, default=1m"`
	LoginLatency  time.Duration `env:"LOGIN_LATENCY,          default=300ms"`
	DemoPassword  string        `env:"DEMO_PASSWORD,          default=123"`
	// MaxFailures failed logins within FailureWindow lock the username.
	MaxFailures   int           `env:"LOGIN_MAX_FAILURES,     default=5"`
	FailureWindow time.Duration `env:"LOGIN_FAILURE_WINDOW,   default=15m"`
}

type SummaryConfig struct {
	APIURL  string        `env:"SUMMARY_API_URL, default=https://generativelanguage.googleapis.com/v1beta/models/gemini-2.5-flash-preview-09-2025:generateContent"`
	APIKey  string        `env:"SUMMARY_API_KEY"`
	Timeout time.Duration `env:"SUMMARY_TIMEOUT, default=15s"`
	Workers int           `env:"SUMMARY_WORKERS, default=4"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI"`
	Database string `env:"MONGO_DB,  default=wms_console"`
	// AuditRetention expires session_events documents; zero keeps them forever.
	AuditRetention time.Duration `env:"MONGO_AUDIT_RETENTION, default=720h"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,   default=0"`
}

// IsDevelopment reports whether human-friendly logging should be used.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// SummaryEnabled reports whether the dashboard summary endpoint is configured.
// Without an API key the dashboard serves mock text.
func (c *Config) SummaryEnabled() bool {
	return c.Summary.APIKey != "" && c.Summary.APIURL != ""
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	cfg, err := LoadFrom(context.Background(), envconfig.OsLookuper())
	if err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return cfg
}

// LoadFrom reads configuration through l.
func LoadFrom(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, err
	}
	return &cfg, nil
}
