// Package config loads runtime settings from the environment and an
// optional .env file
package config

import (
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/KirkDiggler/rpg-oracle/internal/errors"
	"github.com/KirkDiggler/rpg-oracle/internal/retry"
)

// Label cache backends
const (
	LabelCacheNone   = "none"
	LabelCacheMemory = "memory"
	LabelCacheRedis  = "redis"
)

// Config is everything the oracle binary reads at startup
type Config struct {
	APIKey     string `env:"GEMINI_API_KEY"`
	TextModel  string `env:"ORACLE_TEXT_MODEL"  envDefault:"gemini-2.5-flash"`
	ImageModel string `env:"ORACLE_IMAGE_MODEL" envDefault:"gemini-2.5-flash-image"`
	EditModel  string `env:"ORACLE_EDIT_MODEL"  envDefault:"gemini-2.5-flash-image"`

	RetryAttempts     uint          `env:"ORACLE_RETRY_ATTEMPTS"      envDefault:"3"`
	RetryInitialDelay time.Duration `env:"ORACLE_RETRY_INITIAL_DELAY" envDefault:"1s"`

	LabelCache    string        `env:"ORACLE_LABEL_CACHE"     envDefault:"none"`
	RedisAddr     string        `env:"ORACLE_REDIS_ADDR"      envDefault:"localhost:6379"`
	LabelCacheTTL time.Duration `env:"ORACLE_LABEL_CACHE_TTL" envDefault:"168h"`

	LogLevel string `env:"ORACLE_LOG_LEVEL" envDefault:"info"`
}

// Load reads the given .env files (default ".env"; missing files are
// skipped) and then the process environment. Variables already set in the
// environment win over the files.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return nil, errors.Wrapf(err, "failed to load %s", f)
		}
	}

	return Parse(env.ToMap(os.Environ()))
}

// Parse builds a validated Config from an explicit variable set
func Parse(environ map[string]string) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, env.Options{Environment: environ}); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks required values and enumerations
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRequired("GEMINI_API_KEY", c.APIKey, vb)
	errors.ValidateRequired("ORACLE_TEXT_MODEL", c.TextModel, vb)
	errors.ValidateRequired("ORACLE_IMAGE_MODEL", c.ImageModel, vb)
	errors.ValidateRequired("ORACLE_EDIT_MODEL", c.EditModel, vb)

	errors.ValidateRange("ORACLE_RETRY_ATTEMPTS", int(c.RetryAttempts), 1, 10, vb)
	if c.RetryInitialDelay <= 0 {
		vb.Field("ORACLE_RETRY_INITIAL_DELAY", "must be positive")
	}

	errors.ValidateEnum("ORACLE_LABEL_CACHE", c.LabelCache,
		[]string{LabelCacheNone, LabelCacheMemory, LabelCacheRedis}, vb)
	if c.LabelCache == LabelCacheRedis {
		errors.ValidateRequired("ORACLE_REDIS_ADDR", c.RedisAddr, vb)
	}
	if c.LabelCache != LabelCacheNone && c.LabelCacheTTL <= 0 {
		vb.Field("ORACLE_LABEL_CACHE_TTL", "must be positive")
	}

	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		vb.Fieldf("ORACLE_LOG_LEVEL", "unknown level %q", c.LogLevel)
	}

	return vb.Build()
}

// Retry returns the retry settings for remote calls
func (c *Config) Retry() retry.Config {
	return retry.Config{
		MaxAttempts:  c.RetryAttempts,
		InitialDelay: c.RetryInitialDelay,
	}
}

// Level returns the configured log level, info if it does not parse
func (c *Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}
