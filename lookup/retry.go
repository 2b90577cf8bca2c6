package lookup

import (
	"context"
	"time"

	"github.com/fwojciec/palabras"
)

// FetchFunc is the signature for a fetch function.
type FetchFunc func(ctx context.Context, word string, revision int) (string, error)

// LogFunc is the signature for a logging function.
type LogFunc func(format string, args ...any)

// DefaultRetryDelays returns the backoff delays for fetch retries: 500ms, 1s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{500 * time.Millisecond, 1 * time.Second}
}

// Retryable reports whether a fetch error is transient.
// Only network failures and timeouts are retried.
func Retryable(err error) bool {
	switch palabras.ErrorCode(err) {
	case palabras.ENETWORK, palabras.ETIMEOUT:
		return true
	}
	return false
}

// FetchWithRetryDelays calls fetch until it succeeds, fails with an error
// that is not Retryable, or every delay has been used. The logger, if not
// nil, is called for each retry attempt.
func FetchWithRetryDelays(ctx context.Context, word string, revision int, fetch FetchFunc, logger LogFunc, delays []time.Duration) (string, error) {
	maxAttempts := len(delays) + 1

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		markup, err := fetch(ctx, word, revision)
		if err == nil {
			return markup, nil
		}
		lastErr = err

		if !Retryable(err) || attempt >= maxAttempts-1 {
			break
		}

		if logger != nil {
			logger("retry %s (attempt %d): %v", word, attempt+2, err)
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return "", lastErr
}
