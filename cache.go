package bard

import "context"

// PageCache stores fetched pages keyed by URL. The archive's plays are
// static, so a cached page never expires.
type PageCache interface {
	// Page returns the cached body for the URL.
	// Returns ENOTFOUND if the URL has not been cached.
	Page(ctx context.Context, url string) (string, error)

	// SavePage stores the body for the URL, replacing any previous entry.
	SavePage(ctx context.Context, url string, body string) error
}

// Ensure CachingFetcher implements Fetcher at compile time.
var _ Fetcher = (*CachingFetcher)(nil)

// CachingFetcher serves fetches from a PageCache, falling back to the
// wrapped Fetcher on a miss and saving the result. Cache write failures
// are not fatal: the fetched body is still returned.
type CachingFetcher struct {
	Next  Fetcher
	Cache PageCache
}

// Fetch returns the cached body if present, otherwise delegates to the
// wrapped fetcher and caches the result.
func (f *CachingFetcher) Fetch(ctx context.Context, url string) (string, error) {
	body, err := f.Cache.Page(ctx, url)
	if err == nil {
		return body, nil
	}
	if ErrorCode(err) != ENOTFOUND {
		return "", err
	}

	body, err = f.Next.Fetch(ctx, url)
	if err != nil {
		return "", err
	}
	_ = f.Cache.SavePage(ctx, url, body)
	return body, nil
}

// Close closes the wrapped fetcher.
func (f *CachingFetcher) Close() error {
	return f.Next.Close()
}
