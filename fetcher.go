package bard

import "context"

// Fetcher retrieves raw markup from archive URLs.
type Fetcher interface {
	// Fetch returns the page body for the URL.
	// The context controls timeout and cancellation.
	// Network and HTTP failures surface as EUNAVAILABLE errors.
	Fetch(ctx context.Context, url string) (string, error)

	// Close releases any resources held by the fetcher.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}

// HostLimiter throttles requests per host for polite scraping.
type HostLimiter interface {
	// Wait blocks until the rate limit allows a request to the URL's host.
	// Returns an error if the context is canceled before the wait completes.
	Wait(ctx context.Context, url string) error
}
