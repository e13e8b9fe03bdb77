package retry_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-oracle/internal/retry"
)

type notification struct {
	attempt int
	err     error
	delay   time.Duration
}

type recorder struct {
	mu    sync.Mutex
	calls []notification
}

func (r *recorder) notify(attempt int, err error, delay time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, notification{attempt: attempt, err: err, delay: delay})
}

func TestDo_SucceedsFirstTry(t *testing.T) {
	rec := &recorder{}
	calls := 0

	got, err := retry.Do(context.Background(), retry.Config{MaxAttempts: 3, InitialDelay: time.Millisecond},
		func(ctx context.Context) (string, error) {
			calls++
			return "ok", nil
		}, rec.notify)

	require.NoError(t, err)
	assert.Equal(t, "ok", got)
	assert.Equal(t, 1, calls)
	assert.Empty(t, rec.calls)
}

func TestDo_FailsTwiceThenSucceeds(t *testing.T) {
	rec := &recorder{}
	calls := 0
	d := 2 * time.Millisecond

	got, err := retry.Do(context.Background(), retry.Config{MaxAttempts: 3, InitialDelay: d},
		func(ctx context.Context) (int, error) {
			calls++
			if calls < 3 {
				return 0, errors.New("flaky")
			}
			return 42, nil
		}, rec.notify)

	require.NoError(t, err)
	assert.Equal(t, 42, got)
	assert.Equal(t, 3, calls)
	require.Len(t, rec.calls, 2)
	assert.Equal(t, 1, rec.calls[0].attempt)
	assert.Equal(t, d, rec.calls[0].delay)
	assert.Equal(t, 2, rec.calls[1].attempt)
	assert.Equal(t, 2*d, rec.calls[1].delay)
}

func TestDo_ReturnsLastErrorUnchanged(t *testing.T) {
	rec := &recorder{}
	calls := 0
	errs := []error{errors.New("first"), errors.New("second"), errors.New("third")}

	_, err := retry.Do(context.Background(), retry.Config{MaxAttempts: 3, InitialDelay: time.Millisecond},
		func(ctx context.Context) (struct{}, error) {
			e := errs[calls]
			calls++
			return struct{}{}, e
		}, rec.notify)

	require.Error(t, err)
	assert.Same(t, errs[2], err)
	assert.Equal(t, 3, calls)
	assert.Len(t, rec.calls, 2)
}

func TestDo_SingleAttemptNeverNotifies(t *testing.T) {
	rec := &recorder{}
	sentinel := errors.New("boom")

	_, err := retry.Do(context.Background(), retry.Config{MaxAttempts: 1, InitialDelay: time.Millisecond},
		func(ctx context.Context) (int, error) {
			return 0, sentinel
		}, rec.notify)

	assert.ErrorIs(t, err, sentinel)
	assert.Empty(t, rec.calls)
}

func TestDo_NilNotify(t *testing.T) {
	calls := 0
	_, err := retry.Do(context.Background(), retry.Config{MaxAttempts: 2, InitialDelay: time.Millisecond},
		func(ctx context.Context) (int, error) {
			calls++
			return 0, errors.New("nope")
		}, nil)

	assert.Error(t, err)
	assert.Equal(t, 2, calls)
}

func TestDo_ContextCancelledStopsRetrying(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0

	_, err := retry.Do(ctx, retry.Config{MaxAttempts: 5, InitialDelay: time.Hour},
		func(ctx context.Context) (int, error) {
			calls++
			cancel()
			return 0, errors.New("transient")
		}, nil)

	assert.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestDefaultConfig(t *testing.T) {
	cfg := retry.DefaultConfig()
	assert.Equal(t, uint(3), cfg.MaxAttempts)
	assert.Equal(t, time.Second, cfg.InitialDelay)
}
