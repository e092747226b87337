package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastRetry(opts ...Option) Retry {
	base := []Option{
		WithDelay(1 * time.Millisecond),
		WithMaxDelay(5 * time.Millisecond),
	}
	return New(append(base, opts...)...)
}

func TestRetry_Execute(t *testing.T) {
	t.Run("successful operation", func(t *testing.T) {
		callCount := 0

		err := New().Execute(t.Context(), func() error {
			callCount++
			return nil
		})

		assert.NoError(t, err)
		assert.Equal(t, 1, callCount, "Operation should be called exactly once")
	})

	t.Run("retry until success", func(t *testing.T) {
		callCount := 0

		err := fastRetry(WithAttempts(3)).Execute(t.Context(), func() error {
			callCount++
			if callCount < 2 {
				return errors.New("temporary error")
			}
			return nil
		})

		assert.NoError(t, err)
		assert.Equal(t, 2, callCount, "Operation should be called exactly twice")
	})

	t.Run("retry exhausted returns last error", func(t *testing.T) {
		callCount := 0
		expectedErr := errors.New("persistent error")

		err := fastRetry(WithAttempts(3), WithName("eth_getLogs")).Execute(t.Context(), func() error {
			callCount++
			return expectedErr
		})

		assert.ErrorIs(t, err, expectedErr)
		assert.Equal(t, 3, callCount, "Operation should be called exactly 3 times")
	})

	t.Run("all errors when last error only is disabled", func(t *testing.T) {
		expectedErr := errors.New("persistent error")

		err := fastRetry(WithAttempts(2), WithLastErrorOnly(false)).Execute(t.Context(), func() error {
			return expectedErr
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, expectedErr)
		assert.Contains(t, err.Error(), "#2")
	})

	t.Run("non retryable errors stop immediately", func(t *testing.T) {
		fatal := errors.New("bad request")
		callCount := 0

		r := fastRetry(
			WithAttempts(5),
			WithRetryIf(func(err error) bool { return !errors.Is(err, fatal) }),
		)

		err := r.Execute(t.Context(), func() error {
			callCount++
			return fatal
		})

		assert.ErrorIs(t, err, fatal)
		assert.Equal(t, 1, callCount)
	})

	t.Run("canceled context stops retrying", func(t *testing.T) {
		ctx, cancel := context.WithCancel(t.Context())
		callCount := 0

		err := New(WithAttempts(10), WithDelay(50*time.Millisecond)).Execute(ctx, func() error {
			callCount++
			cancel()
			return errors.New("temporary error")
		})

		assert.Error(t, err)
		assert.Equal(t, 1, callCount)
	})
}

func TestOptions(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		r := New().(*retrier)

		assert.Equal(t, uint(3), r.cfg.attempts)
		assert.Equal(t, 1*time.Second, r.cfg.delay)
		assert.Equal(t, 5*time.Second, r.cfg.maxDelay)
		assert.True(t, r.cfg.lastErrOnly)
		assert.True(t, r.cfg.retryIf(errors.New("any")))
	})

	t.Run("custom values", func(t *testing.T) {
		r := New(
			WithAttempts(5),
			WithDelay(2*time.Second),
			WithMaxDelay(10*time.Second),
			WithLastErrorOnly(false),
			WithName("op"),
		).(*retrier)

		assert.Equal(t, uint(5), r.cfg.attempts)
		assert.Equal(t, 2*time.Second, r.cfg.delay)
		assert.Equal(t, 10*time.Second, r.cfg.maxDelay)
		assert.False(t, r.cfg.lastErrOnly)
		assert.Equal(t, "op", r.cfg.name)
	})
}
