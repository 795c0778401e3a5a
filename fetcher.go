package sift

import "context"

// Fetcher retrieves raw HTML from URLs.
// Transport details (redirects, TLS, timeouts) belong to implementations.
type Fetcher interface {
	// Fetch performs a single retrieval attempt for the URL and returns
	// the raw HTML. The context controls timeout and cancellation.
	// Retry policy is the caller's concern, not the Fetcher's.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the Fetcher.
	Close() error
}
