// Package chflow provides context-aware helpers for channel operations and
// ticker-driven loops, so that long-running goroutines stop promptly when
// their context is canceled.
package chflow

import (
	"context"
	"time"
)

// Receive waits to receive a value from the provided channel or for the context to be canceled.
// It returns the value (zero value if canceled) and a boolean indicating if the receive was successful.
func Receive[T any](ctx context.Context, ch <-chan T) (T, bool) {
	var data T
	select {
	case <-ctx.Done():
		return data, false
	case data, ok := <-ch:
		return data, ok
	}
}

// Send attempts to send a value to the provided channel unless the context is canceled first.
// It returns true if the send was successful, false if the context was done before sent.
func Send[T any](ctx context.Context, ch chan<- T, data T) bool {
	select {
	case <-ctx.Done():
		return false
	case ch <- data:
		return true
	}
}

// Every calls fn once per interval until ctx is canceled. Calls never
// overlap: a tick that fires while fn is still running is dropped by the
// underlying ticker. Every blocks and returns when ctx is done.
func Every(ctx context.Context, interval time.Duration, fn func(ctx context.Context)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if _, ok := Receive(ctx, ticker.C); !ok {
			return
		}

		fn(ctx)
	}
}
