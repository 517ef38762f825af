package mock

import (
	"context"

	"github.com/tdanford/bard"
)

var _ bard.PageCache = (*PageCache)(nil)

// PageCache is a mock implementation of bard.PageCache.
type PageCache struct {
	PageFn     func(ctx context.Context, url string) (string, error)
	SavePageFn func(ctx context.Context, url string, body string) error
}

func (c *PageCache) Page(ctx context.Context, url string) (string, error) {
	return c.PageFn(ctx, url)
}

func (c *PageCache) SavePage(ctx context.Context, url string, body string) error {
	return c.SavePageFn(ctx, url, body)
}
