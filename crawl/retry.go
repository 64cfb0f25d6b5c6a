package crawl

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/fwojciec/xwrap"
)

// LogFunc is the signature for a logging function.
type LogFunc func(format string, args ...any)

// DefaultRetryDelays returns the backoff delays for fetch retries: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// WithRetry calls fn until it succeeds, retrying after each delay in delays
// (len(delays)+1 attempts in total). Errors that cannot succeed on retry,
// such as invalid input or client-error statuses, are returned immediately.
// The logger, if provided, is called for each retry attempt.
func WithRetry[T any](ctx context.Context, url string, fn func(ctx context.Context, url string) (T, error), logger LogFunc, delays []time.Duration) (T, error) {
	var zero T
	maxAttempts := len(delays) + 1

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		v, err := fn(ctx, url)
		if err == nil {
			return v, nil
		}
		lastErr = err

		if attempt >= maxAttempts-1 || !Retryable(err) {
			break
		}

		if logger != nil {
			logger("  retry %s (attempt %d): %v", url, attempt+2, err)
		}

		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return zero, lastErr
}

// Retryable reports whether a failed fetch may succeed when attempted again.
func Retryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var fetchErr *xwrap.FetchError
	if errors.As(err, &fetchErr) {
		return fetchErr.StatusCode == http.StatusTooManyRequests || fetchErr.StatusCode >= 500
	}

	return xwrap.ErrorCode(err) != xwrap.EINVALID
}
