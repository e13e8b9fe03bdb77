// Package retry runs an operation with exponential backoff between attempts.
package retry

import (
	"context"
	"math"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/rs/zerolog/log"
)

// Defaults used when a Config field is zero
const (
	DefaultMaxAttempts  uint = 3
	DefaultInitialDelay      = time.Second
)

// Config controls how many times an operation runs and how long to wait
// before the first retry. Each later wait doubles.
type Config struct {
	MaxAttempts  uint
	InitialDelay time.Duration
}

// DefaultConfig returns 3 attempts starting at one second
func DefaultConfig() Config {
	return Config{MaxAttempts: DefaultMaxAttempts, InitialDelay: DefaultInitialDelay}
}

func (c Config) withDefaults() Config {
	if c.MaxAttempts == 0 {
		c.MaxAttempts = DefaultMaxAttempts
	}
	if c.InitialDelay <= 0 {
		c.InitialDelay = DefaultInitialDelay
	}
	return c
}

// NotifyFunc is called after a failed attempt, before waiting delay.
// attempt is 1-based. It is never called after the final attempt.
type NotifyFunc func(attempt int, err error, delay time.Duration)

// Do runs op until it succeeds or MaxAttempts is reached. The last error is
// returned unchanged. Cancelling ctx stops the waits and returns its cause.
func Do[T any](ctx context.Context, cfg Config, op func(ctx context.Context) (T, error), notify NotifyFunc) (T, error) {
	cfg = cfg.withDefaults()

	attempt := 0
	wrapped := func() (T, error) {
		attempt++
		return op(ctx)
	}

	b := &backoff.ExponentialBackOff{
		InitialInterval:     cfg.InitialDelay,
		RandomizationFactor: 0,
		Multiplier:          2,
		MaxInterval:         time.Duration(math.MaxInt64),
	}

	return backoff.Retry(ctx, wrapped,
		backoff.WithBackOff(b),
		backoff.WithMaxTries(cfg.MaxAttempts),
		backoff.WithMaxElapsedTime(0),
		backoff.WithNotify(func(err error, delay time.Duration) {
			log.Warn().
				Err(err).
				Int("attempt", attempt).
				Uint("max_attempts", cfg.MaxAttempts).
				Dur("delay", delay).
				Msg("attempt failed, retrying")
			if notify != nil {
				notify(attempt, err, delay)
			}
		}),
	)
}
