package store

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/feedvault/feedvault/pkg/domain"
)

// defaultListLimit bounds article reads when the caller does not care
const defaultListLimit = 100

// articleRow represents an article for SQL operations
type articleRow struct {
	FeedID    string     `db:"feed_id"`
	Key       string     `db:"key"`
	Title     string     `db:"title"`
	Link      string     `db:"link"`
	Published *time.Time `db:"published"`
	Summary   string     `db:"summary"`
	FirstSeen time.Time  `db:"first_seen"`
}

func (r *articleRow) toDomain() domain.Article {
	return domain.Article{
		FeedID:    r.FeedID,
		Key:       r.Key,
		Title:     r.Title,
		Link:      r.Link,
		Published: r.Published,
		Summary:   r.Summary,
		FirstSeen: r.FirstSeen,
	}
}

func newArticleRow(feedID string, a domain.Article) *articleRow {
	firstSeen := a.FirstSeen
	if firstSeen.IsZero() {
		firstSeen = time.Now().UTC()
	}
	return &articleRow{
		FeedID:    feedID,
		Key:       a.Key,
		Title:     a.Title,
		Link:      a.Link,
		Published: a.Published,
		Summary:   a.Summary,
		FirstSeen: firstSeen,
	}
}

const insertArticleQuery = `
	INSERT INTO articles (feed_id, key, title, link, published, summary, first_seen)
	VALUES (:feed_id, :key, :title, :link, :published, :summary, :first_seen)
	ON CONFLICT(feed_id, key) DO NOTHING
`

// ListArticles returns the cached articles for a feed, ordered by published
// time descending with ties broken by first-seen time descending. Reads never
// touch the network.
func (s *Store) ListArticles(ctx context.Context, feedID string, limit int) ([]domain.Article, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}

	var rows []articleRow
	query := `
		SELECT * FROM articles
		WHERE feed_id = ?
		ORDER BY published DESC, first_seen DESC
		LIMIT ?
	`
	if err := s.conn.SelectContext(ctx, &rows, query, feedID, limit); err != nil {
		return nil, storageErr("list articles", err)
	}

	articles := make([]domain.Article, len(rows))
	for i, r := range rows {
		articles[i] = r.toDomain()
	}
	return articles, nil
}

// InsertArticlesIfAbsent inserts each candidate whose (feed, key) pair is not
// already present and reports how many were actually new. Existing rows win
// and are never overwritten, so repeated refreshes cannot grow duplicates.
// The whole batch commits in one transaction.
func (s *Store) InsertArticlesIfAbsent(ctx context.Context, feedID string, articles []domain.Article) (int, error) {
	inserted := 0
	err := s.withRetry(ctx, func() error {
		inserted = 0
		return s.inTransaction(ctx, func(tx *sqlx.Tx) error {
			n, err := insertArticlesTx(ctx, tx, feedID, articles)
			if err != nil {
				return err
			}
			inserted = n
			return nil
		})
	})
	if err != nil {
		return 0, storageErr("insert articles", err)
	}
	return inserted, nil
}

// CommitRefresh stores freshly fetched articles together with the updated feed
// metadata in a single transaction. A crash or I/O failure cannot leave the
// validators ahead of the article set, or the other way around.
func (s *Store) CommitRefresh(ctx context.Context, feed *domain.Feed, articles []domain.Article) (int, error) {
	inserted := 0
	err := s.withRetry(ctx, func() error {
		inserted = 0
		return s.inTransaction(ctx, func(tx *sqlx.Tx) error {
			if _, err := tx.NamedExecContext(ctx, upsertFeedQuery, newFeedRow(feed)); err != nil {
				return err
			}
			n, err := insertArticlesTx(ctx, tx, feed.ID, articles)
			if err != nil {
				return err
			}
			inserted = n
			return nil
		})
	})
	if err != nil {
		return 0, storageErr("commit refresh", err)
	}
	return inserted, nil
}

// CountArticles returns the number of cached articles for a feed
func (s *Store) CountArticles(ctx context.Context, feedID string) (int, error) {
	var count int
	err := s.conn.GetContext(ctx, &count, "SELECT COUNT(*) FROM articles WHERE feed_id = ?", feedID)
	if err != nil {
		return 0, storageErr("count articles", err)
	}
	return count, nil
}

func insertArticlesTx(ctx context.Context, tx *sqlx.Tx, feedID string, articles []domain.Article) (int, error) {
	inserted := 0
	for _, a := range articles {
		res, err := tx.NamedExecContext(ctx, insertArticleQuery, newArticleRow(feedID, a))
		if err != nil {
			return 0, err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return 0, err
		}
		inserted += int(n)
	}
	return inserted, nil
}
