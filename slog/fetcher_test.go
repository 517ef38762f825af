package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tdanford/bard"
	"github.com/tdanford/bard/mock"
	bardslog "github.com/tdanford/bard/slog"
)

func TestLoggingFetcher(t *testing.T) {
	t.Parallel()

	t.Run("logs successful fetches", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))

		fetcher := bardslog.NewLoggingFetcher(&mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "<html/>", nil
			},
		}, logger)

		body, err := fetcher.Fetch(context.Background(), "http://example.com/hamlet")
		require.NoError(t, err)
		assert.Equal(t, "<html/>", body)
		assert.Contains(t, buf.String(), "fetched page")
		assert.Contains(t, buf.String(), "http://example.com/hamlet")
	})

	t.Run("logs failures and passes the error through", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))

		fetcher := bardslog.NewLoggingFetcher(&mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "", bard.Errorf(bard.EUNAVAILABLE, "connection refused")
			},
		}, logger)

		_, err := fetcher.Fetch(context.Background(), "http://example.com/hamlet")
		require.Error(t, err)
		assert.Equal(t, bard.EUNAVAILABLE, bard.ErrorCode(err))
		assert.Contains(t, buf.String(), "fetch failed")
	})
}
