package archive

import (
	"context"
	"net/url"
	"sync"

	"github.com/tdanford/bard"
	"golang.org/x/time/rate"
)

var _ bard.HostLimiter = (*Limiter)(nil)

// Limiter provides per-host rate limiting using token buckets, so the
// scraper stays polite to the archive no matter how many plays are
// harvested concurrently.
type Limiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      float64
}

// NewLimiter creates a Limiter allowing rps requests per second per host,
// with a burst of 1 (no bursting).
func NewLimiter(rps float64) *Limiter {
	return &Limiter{
		limiters: make(map[string]*rate.Limiter),
		rps:      rps,
	}
}

// Wait blocks until the rate limit allows a request to the URL's host.
// Returns an error if the context is canceled before the wait completes.
func (l *Limiter) Wait(ctx context.Context, rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return bard.Errorf(bard.EINVALID, "invalid URL %q: %v", rawURL, err)
	}

	l.mu.Lock()
	limiter, ok := l.limiters[u.Host]
	if !ok {
		limiter = rate.NewLimiter(rate.Limit(l.rps), 1)
		l.limiters[u.Host] = limiter
	}
	l.mu.Unlock()

	return limiter.Wait(ctx)
}
