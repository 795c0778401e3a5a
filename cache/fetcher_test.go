package cache_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/emezenwere/sift/cache"
	"github.com/emezenwere/sift/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher(t *testing.T) {
	t.Parallel()

	t.Run("fetches a URL only once", func(t *testing.T) {
		t.Parallel()

		var calls int
		next := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				calls++
				return "<html></html>", nil
			},
		}

		f := cache.NewFetcher(next, time.Minute)
		defer f.Close()

		for i := 0; i < 3; i++ {
			html, err := f.Fetch(context.Background(), "https://www.example.com")
			require.NoError(t, err)
			assert.Equal(t, "<html></html>", html)
		}

		assert.Equal(t, 1, calls)
	})

	t.Run("caches per URL", func(t *testing.T) {
		t.Parallel()

		next := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return url, nil
			},
		}

		f := cache.NewFetcher(next, time.Minute)
		defer f.Close()

		a, err := f.Fetch(context.Background(), "https://a.example.com")
		require.NoError(t, err)
		b, err := f.Fetch(context.Background(), "https://b.example.com")
		require.NoError(t, err)

		assert.NotEqual(t, a, b)
	})

	t.Run("does not cache failures", func(t *testing.T) {
		t.Parallel()

		var calls int
		next := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				calls++
				if calls == 1 {
					return "", errors.New("connection refused")
				}
				return "<html></html>", nil
			},
		}

		f := cache.NewFetcher(next, time.Minute)
		defer f.Close()

		_, err := f.Fetch(context.Background(), "https://www.example.com")
		require.Error(t, err)

		html, err := f.Fetch(context.Background(), "https://www.example.com")
		require.NoError(t, err)
		assert.Equal(t, "<html></html>", html)
		assert.Equal(t, 2, calls)
	})

	t.Run("close closes the wrapped fetcher", func(t *testing.T) {
		t.Parallel()

		closed := false
		next := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) { return "", nil },
			CloseFn: func() error {
				closed = true
				return nil
			},
		}

		require.NoError(t, cache.NewFetcher(next, time.Minute).Close())
		assert.True(t, closed)
	})
}
