// Package cache provides a TTL-caching decorator for sift.Fetcher, so a URL
// shared across a batch (or revisited as an about page) is fetched once.
package cache

import (
	"context"
	"time"

	"github.com/emezenwere/sift"
	gocache "github.com/patrickmn/go-cache"
)

// DefaultTTL is how long fetched pages stay cached.
const DefaultTTL = 15 * time.Minute

// Ensure Fetcher implements sift.Fetcher at compile time.
var _ sift.Fetcher = (*Fetcher)(nil)

// Fetcher wraps another Fetcher with an in-memory TTL cache keyed by URL.
// Only successful fetches are cached; failures always go back to the
// wrapped Fetcher.
type Fetcher struct {
	next  sift.Fetcher
	cache *gocache.Cache
}

// NewFetcher creates a caching Fetcher around next. A non-positive ttl
// falls back to DefaultTTL.
func NewFetcher(next sift.Fetcher, ttl time.Duration) *Fetcher {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Fetcher{
		next:  next,
		cache: gocache.New(ttl, ttl),
	}
}

// Fetch returns the cached HTML for the URL, or delegates to the wrapped
// Fetcher and caches its result.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if html, ok := f.cache.Get(url); ok {
		return html.(string), nil
	}

	html, err := f.next.Fetch(ctx, url)
	if err != nil {
		return "", err
	}

	f.cache.SetDefault(url, html)
	return html, nil
}

// Close flushes the cache and closes the wrapped Fetcher.
func (f *Fetcher) Close() error {
	f.cache.Flush()
	return f.next.Close()
}
