package analyze

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchWithRetry(t *testing.T) {
	t.Parallel()

	t.Run("succeeds on the first attempt without retrying", func(t *testing.T) {
		t.Parallel()

		attempts := 0
		fetch := func(ctx context.Context, url string) (string, error) {
			attempts++
			return "<html></html>", nil
		}

		html, err := fetchWithRetry(context.Background(), "https://www.example.com", fetch, nil, 3, time.Millisecond)

		require.NoError(t, err)
		assert.Equal(t, "<html></html>", html)
		assert.Equal(t, 1, attempts)
	})

	t.Run("succeeds on the final attempt after two failures", func(t *testing.T) {
		t.Parallel()

		attempts := 0
		fetch := func(ctx context.Context, url string) (string, error) {
			attempts++
			if attempts < 3 {
				return "", errors.New("connection reset")
			}
			return "<html></html>", nil
		}

		html, err := fetchWithRetry(context.Background(), "https://www.example.com", fetch, nil, 3, time.Millisecond)

		require.NoError(t, err)
		assert.Equal(t, "<html></html>", html)
		assert.Equal(t, 3, attempts)
	})

	t.Run("returns the last error after exhausting attempts", func(t *testing.T) {
		t.Parallel()

		attempts := 0
		fetch := func(ctx context.Context, url string) (string, error) {
			attempts++
			return "", errors.New("HTTP 503")
		}

		_, err := fetchWithRetry(context.Background(), "https://www.example.com", fetch, nil, 3, time.Millisecond)

		require.Error(t, err)
		assert.Equal(t, "HTTP 503", err.Error())
		assert.Equal(t, 3, attempts)
	})

	t.Run("backs off by base delay times attempt number", func(t *testing.T) {
		t.Parallel()

		fetch := func(ctx context.Context, url string) (string, error) {
			return "", errors.New("down")
		}

		begin := time.Now()
		_, err := fetchWithRetry(context.Background(), "https://www.example.com", fetch, nil, 3, 20*time.Millisecond)

		require.Error(t, err)
		// Delays are 20ms after attempt 1 and 40ms after attempt 2;
		// no sleep follows the final attempt.
		assert.GreaterOrEqual(t, time.Since(begin), 60*time.Millisecond)
	})

	t.Run("logs each failed attempt", func(t *testing.T) {
		t.Parallel()

		var logged []string
		logger := func(format string, args ...any) {
			logged = append(logged, format)
		}
		fetch := func(ctx context.Context, url string) (string, error) {
			return "", errors.New("down")
		}

		_, _ = fetchWithRetry(context.Background(), "https://www.example.com", fetch, logger, 3, time.Millisecond)

		assert.Len(t, logged, 3)
	})

	t.Run("stops when the context is canceled between attempts", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		attempts := 0
		fetch := func(ctx context.Context, url string) (string, error) {
			attempts++
			cancel()
			return "", errors.New("down")
		}

		_, err := fetchWithRetry(ctx, "https://www.example.com", fetch, nil, 3, time.Hour)

		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 1, attempts)
	})

	t.Run("applies defaults for non-positive settings", func(t *testing.T) {
		t.Parallel()

		attempts := 0
		fetch := func(ctx context.Context, url string) (string, error) {
			attempts++
			return "<html></html>", nil
		}

		_, err := fetchWithRetry(context.Background(), "https://www.example.com", fetch, nil, 0, 0)

		require.NoError(t, err)
		assert.Equal(t, 1, attempts)
	})
}
