package sqlite

import (
	"context"
	"database/sql"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/tdanford/bard"
)

// Compile-time interface verification.
var _ bard.PageCache = (*PageService)(nil)

// PageService implements bard.PageCache using SQLite.
type PageService struct {
	db *DB
}

// NewPageService creates a new PageService.
func NewPageService(db *DB) *PageService {
	return &PageService{db: db}
}

// hashContent computes xxHash of content and returns it as a hex string.
func hashContent(content string) string {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], xxhash.Sum64String(content))
	return hex.EncodeToString(b[:])
}

// Page returns the cached body for the URL.
// Returns ENOTFOUND if the URL has not been cached.
func (s *PageService) Page(ctx context.Context, url string) (string, error) {
	var content string
	err := s.db.QueryRowContext(ctx, `
		SELECT content FROM pages WHERE url = ?
	`, url).Scan(&content)

	if errors.Is(err, sql.ErrNoRows) {
		return "", bard.Errorf(bard.ENOTFOUND, "page not cached: %s", url)
	}
	if err != nil {
		return "", err
	}
	return content, nil
}

// SavePage stores the body for the URL. If the URL is already cached with
// identical content the row is left untouched, preserving the original
// fetch time.
func (s *PageService) SavePage(ctx context.Context, url string, body string) error {
	hash := hashContent(body)

	var existing string
	err := s.db.QueryRowContext(ctx, `
		SELECT content_hash FROM pages WHERE url = ?
	`, url).Scan(&existing)
	if err == nil && existing == hash {
		return nil
	}
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO pages (url, content, content_hash, fetched_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(url) DO UPDATE SET
			content = excluded.content,
			content_hash = excluded.content_hash,
			fetched_at = excluded.fetched_at
	`, url, body, hash, time.Now().UTC().Format(time.RFC3339))

	return err
}
