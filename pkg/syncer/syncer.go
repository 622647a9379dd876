package syncer

import (
	"context"
	"errors"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/feedvault/feedvault/pkg/domain"
	"github.com/feedvault/feedvault/pkg/feed"
	"github.com/feedvault/feedvault/pkg/store"
)

//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store
//go:generate moq -out mocks/fetcher.go -pkg mocks -skip-ensure -fmt goimports . Fetcher
//go:generate moq -out mocks/parser.go -pkg mocks -skip-ensure -fmt goimports . Parser

// Store is the durable cache the synchronizer reads from and merges into
type Store interface {
	GetFeedMeta(ctx context.Context, feedID string) (*domain.Feed, error)
	UpsertFeedMeta(ctx context.Context, feed *domain.Feed) error
	CommitRefresh(ctx context.Context, feed *domain.Feed, articles []domain.Article) (int, error)
}

// Fetcher performs one conditional HTTP GET per call
type Fetcher interface {
	Fetch(ctx context.Context, url string, etag, lastModified *string) (*feed.Result, error)
}

// Parser turns a raw feed payload into article records
type Parser interface {
	Parse(feedID string, payload []byte) ([]domain.Article, error)
}

// Synchronizer makes a single feed consistent with its remote source and the
// local cache. Its defining behavior: fetch-or-skip based on cached HTTP
// validators, merge without ever overwriting stored articles, and fail soft
// to the last good cached state.
type Synchronizer struct {
	store   Store
	fetcher Fetcher
	parser  Parser
	locks   *keyedLocks
	now     func() time.Time
}

// New creates a synchronizer on top of the given collaborators
func New(st Store, fetcher Fetcher, parser Parser) *Synchronizer {
	return &Synchronizer{
		store:   st,
		fetcher: fetcher,
		parser:  parser,
		locks:   newKeyedLocks(),
		now:     time.Now,
	}
}

// Sync refreshes one feed. At most one sync per feed identifier runs at a
// time; concurrent calls for the same feed queue behind the per-feed lock.
// src carries the configured identity (ID, URL, title); cached validators are
// read from the store.
func (s *Synchronizer) Sync(ctx context.Context, src domain.Feed) domain.SyncResult {
	lock := s.locks.get(src.ID)
	lock.Lock()
	defer lock.Unlock()

	res := domain.SyncResult{FeedID: src.ID, UsedNetwork: true}

	// prior validators; a storage failure here degrades to an unconditional
	// fetch instead of aborting the refresh
	current := src
	meta, err := s.store.GetFeedMeta(ctx, src.ID)
	switch {
	case err == nil:
		current.ETag = meta.ETag
		current.LastModified = meta.LastModified
		current.LastSyncedAt = meta.LastSyncedAt
	case errors.Is(err, store.ErrFeedNotFound):
		// first sync for this feed, no validators yet
	default:
		lgr.Printf("[WARN] feed %s: read meta failed, forcing full fetch: %v", src.ID, err)
	}

	out, err := s.fetcher.Fetch(ctx, current.URL, current.ETag, current.LastModified)
	if err != nil {
		res.Status = domain.StatusStale
		res.Err = err
		return res
	}

	if out.NotModified {
		// cache is current, record the successful sync time and nothing else
		now := s.now().UTC()
		current.LastSyncedAt = &now
		if err := s.store.UpsertFeedMeta(ctx, &current); err != nil {
			lgr.Printf("[WARN] feed %s: record sync time failed: %v", src.ID, err)
			res.Err = err
		}
		res.Status = domain.StatusUnchanged
		return res
	}

	articles, err := s.parser.Parse(src.ID, out.Body)
	if err != nil {
		res.Status = domain.StatusStale
		res.Err = err
		return res
	}

	now := s.now().UTC()
	current.LastSyncedAt = &now
	// a 200 that omits a previously known validator keeps the prior value,
	// tolerating servers that stop sending the header transiently
	if out.ETag != nil {
		current.ETag = out.ETag
	}
	if out.LastModified != nil {
		current.LastModified = out.LastModified
	}

	inserted, err := s.store.CommitRefresh(ctx, &current, articles)
	if err != nil {
		// the commit is a single transaction, nothing was applied
		res.Status = domain.StatusStale
		res.Err = err
		return res
	}

	if inserted > 0 {
		lgr.Printf("[INFO] feed %s: %d new articles", src.ID, inserted)
	}

	res.NewArticles = inserted
	res.Status = domain.StatusFresh
	return res
}
