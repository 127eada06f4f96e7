package shared

import (
	"context"
	"fmt"
	"time"
)

// RetryOptions configures Retry. Exponential doubles the delay after every
// failed attempt; otherwise the delay between attempts is constant.
type RetryOptions struct {
	MaxAttempts int
	BaseDelay   time.Duration
	Exponential bool
}

// Retry runs fn up to opts.MaxAttempts times and returns the first success.
// When every attempt fails it returns the last observed error. The wait
// between attempts honours ctx, so callers can bound the total delay. Retry
// must not be called while holding locks that fn or other goroutines need.
func Retry[T any](ctx context.Context, opts RetryOptions, fn func() (T, error)) (T, error) {
	var zero T

	if opts.MaxAttempts < 1 {
		return zero, fmt.Errorf("retry: max attempts must be at least 1, got %d", opts.MaxAttempts)
	}

	var lastErr error
	for attempt := 1; attempt <= opts.MaxAttempts; attempt++ {
		result, err := fn()
		if err == nil {
			return result, nil
		}
		lastErr = err

		if attempt == opts.MaxAttempts {
			break
		}

		delay := opts.BaseDelay
		if opts.Exponential {
			delay = opts.BaseDelay << (attempt - 1)
		}

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return zero, ctx.Err()
		}
	}

	return zero, lastErr
}
