package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"

	"github.com/feedvault/feedvault/pkg/domain"
)

// feedRow represents a feed for SQL operations
type feedRow struct {
	ID           string     `db:"id"`
	URL          string     `db:"url"`
	Title        string     `db:"title"`
	ETag         *string    `db:"etag"`
	LastModified *string    `db:"last_modified"`
	LastSyncedAt *time.Time `db:"last_synced_at"`
	CreatedAt    time.Time  `db:"created_at"`
}

func (r *feedRow) toDomain() *domain.Feed {
	return &domain.Feed{
		ID:           r.ID,
		URL:          r.URL,
		Title:        r.Title,
		ETag:         r.ETag,
		LastModified: r.LastModified,
		LastSyncedAt: r.LastSyncedAt,
		CreatedAt:    r.CreatedAt,
	}
}

func newFeedRow(feed *domain.Feed) *feedRow {
	return &feedRow{
		ID:           feed.ID,
		URL:          feed.URL,
		Title:        feed.Title,
		ETag:         feed.ETag,
		LastModified: feed.LastModified,
		LastSyncedAt: feed.LastSyncedAt,
	}
}

const upsertFeedQuery = `
	INSERT INTO feeds (id, url, title, etag, last_modified, last_synced_at)
	VALUES (:id, :url, :title, :etag, :last_modified, :last_synced_at)
	ON CONFLICT(id) DO UPDATE SET
		url = excluded.url,
		title = excluded.title,
		etag = excluded.etag,
		last_modified = excluded.last_modified,
		last_synced_at = excluded.last_synced_at
`

// GetFeedMeta retrieves cached metadata for a feed by its identifier.
// Returns ErrFeedNotFound for feeds the cache has never seen.
func (s *Store) GetFeedMeta(ctx context.Context, feedID string) (*domain.Feed, error) {
	var row feedRow
	err := s.conn.GetContext(ctx, &row, "SELECT * FROM feeds WHERE id = ?", feedID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrFeedNotFound
	}
	if err != nil {
		return nil, storageErr("get feed meta", err)
	}
	return row.toDomain(), nil
}

// UpsertFeedMeta stores feed metadata, overwriting by identifier. Idempotent.
func (s *Store) UpsertFeedMeta(ctx context.Context, feed *domain.Feed) error {
	err := s.withRetry(ctx, func() error {
		if _, err := s.conn.NamedExecContext(ctx, upsertFeedQuery, newFeedRow(feed)); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return storageErr("upsert feed meta", err)
	}
	return nil
}

// withRetry runs a write with backoff retries on SQLite lock errors; any other
// failure is critical and stops the retry loop immediately
func (s *Store) withRetry(ctx context.Context, fn func() error) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	return retrier.Do(ctx, func() error {
		if err := fn(); err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("write: %w", err)}
		}
		return nil
	})
}
