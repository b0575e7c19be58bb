// Package async holds the timeout and retry decorators applied around calls
// to the platform.
package async

import (
	"context"
	"errors"
	"time"

	"github.com/sethvargo/go-retry"
)

var ErrTimeout = errors.New("operation timed out")

type Func[T any] func(ctx context.Context) (T, error)

// WithTimeout runs fn and stops waiting for it after d. The context passed to
// fn is cancelled as soon as WithTimeout returns, so a late result is dropped
// and the underlying request aborted.
func WithTimeout[T any](ctx context.Context, d time.Duration, fn Func[T]) (T, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	type result struct {
		val T
		err error
	}
	done := make(chan result, 1)
	go func() {
		val, err := fn(ctx)
		done <- result{val: val, err: err}
	}()

	timer := time.NewTimer(d)
	defer timer.Stop()

	var zero T
	select {
	case r := <-done:
		return r.val, r.err
	case <-timer.C:
		return zero, ErrTimeout
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}

// Retryable marks err as worth another attempt inside WithRetry.
func Retryable(err error) error {
	return retry.RetryableError(err)
}

// Linear waits step, 2*step, 3*step... between attempts and gives up after
// maxRetries retries. A Backoff must not be shared between WithRetry calls.
func Linear(step time.Duration, maxRetries uint64) retry.Backoff {
	var attempt int64
	next := retry.BackoffFunc(func() (time.Duration, bool) {
		attempt++
		return step * time.Duration(attempt), false
	})
	return retry.WithMaxRetries(maxRetries, next)
}

// WithRetry calls fn until it succeeds, returns an error not marked with
// Retryable, or the backoff stops. The value of the last attempt is returned
// together with its unwrapped error.
func WithRetry[T any](ctx context.Context, b retry.Backoff, fn Func[T]) (T, error) {
	var out T
	err := retry.Do(ctx, b, func(ctx context.Context) error {
		val, err := fn(ctx)
		out = val
		return err
	})
	return out, err
}
