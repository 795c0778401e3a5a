package analyze

import (
	"context"
	"time"
)

// FetchFunc is the signature for a single fetch attempt.
type FetchFunc func(ctx context.Context, url string) (string, error)

// LogFunc is the signature for a logging function.
type LogFunc func(format string, args ...any)

const (
	// DefaultMaxFetchRetries is the total number of fetch attempts.
	DefaultMaxFetchRetries = 3

	// DefaultRetryBaseDelay is multiplied by the attempt number to get
	// the backoff before the next attempt: 2s, 4s.
	DefaultRetryBaseDelay = 2 * time.Second
)

// fetchWithRetry attempts to fetch a URL up to maxAttempts times, waiting
// baseDelay×attempt between attempts. There is no sleep after the final
// attempt. The logger function, if provided, is called for each failure.
func fetchWithRetry(ctx context.Context, url string, fetch FetchFunc, logger LogFunc, maxAttempts int, baseDelay time.Duration) (string, error) {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxFetchRetries
	}
	if baseDelay <= 0 {
		baseDelay = DefaultRetryBaseDelay
	}

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		html, err := fetch(ctx, url)
		if err == nil {
			return html, nil
		}
		lastErr = err

		if logger != nil {
			logger("attempt %d failed for %s: %v", attempt, url, err)
		}

		if attempt == maxAttempts {
			break
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(baseDelay * time.Duration(attempt)):
		}
	}

	return "", lastErr
}
