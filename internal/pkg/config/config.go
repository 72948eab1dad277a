package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

const devSecret = "dev-workspace-secret"

type Config struct {
	Port      string `env:"PORT,       default=8080"`
	Env       string `env:"ENV,        default=development"`
	LogLevel  string `env:"LOG_LEVEL,  default=info"`
	LogPretty bool   `env:"LOG_PRETTY, default=false"`
	JWTSecret string `env:"JWT_SECRET, default=dev-workspace-secret"`

	Mongo      MongoConfig
	Redis      RedisConfig
	Generation GenerationConfig
	Workspace  WorkspaceConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=competeconnect"`
}

type RedisConfig struct {
	Addr       string        `env:"REDIS_ADDR,  default=localhost:6379"`
	DB         int           `env:"REDIS_DB,    default=0"`
	SessionTTL time.Duration `env:"SESSION_TTL, default=720h"`
}

// GenerationConfig configures the competition generation service. APIKey has
// no default: without it the service still starts but every search fails.
type GenerationConfig struct {
	APIKey  string        `env:"API_KEY"`
	Model   string        `env:"GEMINI_MODEL,       default=gemini-2.5-flash"`
	Timeout time.Duration `env:"GENERATION_TIMEOUT, default=45s"`
	RPS     float64       `env:"GENERATION_RPS,     default=2"`
	Burst   int           `env:"GENERATION_BURST,   default=4"`
}

type WorkspaceConfig struct {
	TTL           time.Duration `env:"WORKSPACE_TTL,  default=2h"`
	TokenTTL      time.Duration `env:"WORKSPACE_TOKEN_TTL, default=720h"`
	SearchWorkers int           `env:"SEARCH_WORKERS, default=8"`
	SweepSpec     string        `env:"SWEEP_SPEC,     default=@every 10m"`
}

// IsProduction reports whether the service runs with production defaults.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if cfg.IsProduction() && (cfg.JWTSecret == "" || cfg.JWTSecret == devSecret) {
		return nil, fmt.Errorf("config: JWT_SECRET must be set in production")
	}
	return &cfg, nil
}
