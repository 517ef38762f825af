package mock

import (
	"context"

	"github.com/tdanford/bard"
)

var _ bard.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of bard.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}

var _ bard.HostLimiter = (*HostLimiter)(nil)

// HostLimiter is a mock implementation of bard.HostLimiter.
type HostLimiter struct {
	WaitFn func(ctx context.Context, url string) error
}

func (l *HostLimiter) Wait(ctx context.Context, url string) error {
	if l.WaitFn == nil {
		return nil
	}
	return l.WaitFn(ctx, url)
}
