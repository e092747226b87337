package chflow

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestReceive(t *testing.T) {
	t.Run("receives a value", func(t *testing.T) {
		ch := make(chan int, 1)
		ch <- 42

		v, ok := Receive(t.Context(), ch)
		assert.True(t, ok)
		assert.Equal(t, 42, v)
	})

	t.Run("closed channel", func(t *testing.T) {
		ch := make(chan string)
		close(ch)

		v, ok := Receive(t.Context(), ch)
		assert.False(t, ok)
		assert.Empty(t, v)
	})

	t.Run("canceled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(t.Context())
		cancel()

		v, ok := Receive(ctx, make(chan int))
		assert.False(t, ok)
		assert.Zero(t, v)
	})
}

func TestSend(t *testing.T) {
	t.Run("sends a value", func(t *testing.T) {
		ch := make(chan int, 1)

		assert.True(t, Send(t.Context(), ch, 7))
		assert.Equal(t, 7, <-ch)
	})

	t.Run("canceled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(t.Context())
		cancel()

		assert.False(t, Send(ctx, make(chan int), 7))
	})
}

func TestEvery(t *testing.T) {
	t.Run("calls fn repeatedly until canceled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(t.Context())

		var calls atomic.Int32
		done := make(chan struct{})
		go func() {
			defer close(done)
			Every(ctx, 5*time.Millisecond, func(context.Context) {
				if calls.Add(1) == 3 {
					cancel()
				}
			})
		}()

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("Every did not return after cancel")
		}

		assert.GreaterOrEqual(t, calls.Load(), int32(3))
	})

	t.Run("returns immediately on canceled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(t.Context())
		cancel()

		called := false
		Every(ctx, time.Hour, func(context.Context) { called = true })

		assert.False(t, called)
	})
}
