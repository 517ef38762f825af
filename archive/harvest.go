// Package archive orchestrates scraping the play archive: discovering the
// catalog, resolving full-text pages, and parsing plays into models.
package archive

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/tdanford/bard"
	"github.com/tdanford/bard/goquery"
	"golang.org/x/sync/errgroup"
)

// Harvester fetches and parses plays from the archive.
type Harvester struct {
	Fetcher     bard.Fetcher
	Indexer     bard.Indexer
	Limiter     bard.HostLimiter
	Concurrency int
}

// Result holds the outcome of a batch harvest.
type Result struct {
	Parsed int
	Failed int
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressEvent reports progress during a batch harvest.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Play      *bard.Play
	Error     error
}

// ProgressFunc is a callback for reporting harvest progress.
type ProgressFunc func(event ProgressEvent)

// DiscoverPlays fetches the archive's index page and extracts its play
// catalog.
func (h *Harvester) DiscoverPlays(ctx context.Context, indexURL string) ([]*bard.Play, error) {
	body, err := h.fetch(ctx, indexURL)
	if err != nil {
		return nil, err
	}
	return goquery.ExtractPlays(body, indexURL)
}

// ResolveFullText resolves the play's "entire play" URL by following the
// link on its catalog page. The result is memoized on the play, so
// repeated calls fetch at most once.
func (h *Harvester) ResolveFullText(ctx context.Context, play *bard.Play) (string, error) {
	if url, ok := play.FullTextURL(); ok {
		return url, nil
	}
	body, err := h.fetch(ctx, play.URL)
	if err != nil {
		return "", err
	}
	url, err := goquery.ExtractFullTextURL(body, play.URL)
	if err != nil {
		return "", err
	}
	play.SetFullTextURL(url)
	return url, nil
}

// HarvestPlay fetches the play's full text and parses it into the play's
// entity tree. An error aborts only this play.
func (h *Harvester) HarvestPlay(ctx context.Context, play *bard.Play) error {
	url, err := h.ResolveFullText(ctx, play)
	if err != nil {
		return err
	}
	body, err := h.fetch(ctx, url)
	if err != nil {
		return err
	}
	events, err := bard.EventStream(h.Indexer, body)
	if err != nil {
		return err
	}
	return bard.ParseEvents(play, events)
}

// PlainText returns the play's reading text with all markup removed.
func (h *Harvester) PlainText(ctx context.Context, play *bard.Play) (string, error) {
	url, err := h.ResolveFullText(ctx, play)
	if err != nil {
		return "", err
	}
	body, err := h.fetch(ctx, url)
	if err != nil {
		return "", err
	}
	return goquery.ExtractText(body)
}

// HarvestAll harvests the given plays concurrently. Each play is parsed
// independently: a malformed play is reported through progress and counted
// as failed without aborting the batch.
func (h *Harvester) HarvestAll(ctx context.Context, plays []*bard.Play, progress ProgressFunc) (*Result, error) {
	concurrency := h.Concurrency
	if concurrency <= 0 {
		concurrency = 4
	}

	total := len(plays)

	// Workers run concurrently but the progress callback does not have to
	// cope with that; serialize calls to it.
	var progressMu sync.Mutex
	report := func(event ProgressEvent) {
		if progress == nil {
			return
		}
		progressMu.Lock()
		defer progressMu.Unlock()
		progress(event)
	}

	report(ProgressEvent{Type: ProgressStarted, Total: total})

	var completed, failed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for _, play := range plays {
		g.Go(func() error {
			err := h.HarvestPlay(gctx, play)
			done := int(completed.Add(1))
			if err != nil {
				failed.Add(1)
				report(ProgressEvent{
					Type:      ProgressFailed,
					Completed: done,
					Total:     total,
					Play:      play,
					Error:     err,
				})
				return nil
			}
			report(ProgressEvent{
				Type:      ProgressCompleted,
				Completed: done,
				Total:     total,
				Play:      play,
			})
			return nil
		})
	}
	_ = g.Wait()

	report(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})

	result := &Result{
		Parsed: total - int(failed.Load()),
		Failed: int(failed.Load()),
	}
	return result, ctx.Err()
}

// fetch applies the politeness limiter, if any, before delegating to the
// fetcher.
func (h *Harvester) fetch(ctx context.Context, url string) (string, error) {
	if h.Limiter != nil {
		if err := h.Limiter.Wait(ctx, url); err != nil {
			return "", err
		}
	}
	return h.Fetcher.Fetch(ctx, url)
}
