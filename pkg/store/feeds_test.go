package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feedvault/feedvault/pkg/domain"
)

func TestFeedMetaOperations(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	t.Run("get unknown feed", func(t *testing.T) {
		_, err := s.GetFeedMeta(ctx, "no-such-feed")
		require.ErrorIs(t, err, ErrFeedNotFound)
	})

	t.Run("upsert and get", func(t *testing.T) {
		etag := `"abc123"`
		now := time.Now().UTC().Truncate(time.Second)
		feed := &domain.Feed{
			ID:           "feed-1",
			URL:          "https://example.com/feed.xml",
			Title:        "Example",
			ETag:         &etag,
			LastSyncedAt: &now,
		}

		err := s.UpsertFeedMeta(ctx, feed)
		require.NoError(t, err)

		got, err := s.GetFeedMeta(ctx, "feed-1")
		require.NoError(t, err)
		assert.Equal(t, "https://example.com/feed.xml", got.URL)
		assert.Equal(t, "Example", got.Title)
		require.NotNil(t, got.ETag)
		assert.Equal(t, etag, *got.ETag)
		assert.Nil(t, got.LastModified)
		require.NotNil(t, got.LastSyncedAt)
		assert.Equal(t, now, got.LastSyncedAt.UTC())
	})

	t.Run("upsert overwrites by identifier", func(t *testing.T) {
		lastMod := "Wed, 01 Jan 2025 00:00:00 GMT"
		feed := &domain.Feed{
			ID:           "feed-1",
			URL:          "https://example.com/feed.xml",
			Title:        "Renamed",
			LastModified: &lastMod,
		}

		err := s.UpsertFeedMeta(ctx, feed)
		require.NoError(t, err)

		got, err := s.GetFeedMeta(ctx, "feed-1")
		require.NoError(t, err)
		assert.Equal(t, "Renamed", got.Title)
		assert.Nil(t, got.ETag) // overwritten with nil
		require.NotNil(t, got.LastModified)
		assert.Equal(t, lastMod, *got.LastModified)
	})

	t.Run("upsert is idempotent", func(t *testing.T) {
		feed := &domain.Feed{ID: "feed-2", URL: "https://example.org/rss"}

		require.NoError(t, s.UpsertFeedMeta(ctx, feed))
		require.NoError(t, s.UpsertFeedMeta(ctx, feed))

		var count int
		err := s.conn.Get(&count, "SELECT COUNT(*) FROM feeds WHERE id = ?", "feed-2")
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})
}
