package syncer

import (
	"context"
	"sync"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"

	"github.com/feedvault/feedvault/pkg/domain"
)

//go:generate moq -out mocks/feed_syncer.go -pkg mocks -skip-ensure -fmt goimports . FeedSyncer

// defaultMaxConcurrent bounds simultaneous outbound connections during a bulk refresh
const defaultMaxConcurrent = 5

// FeedSyncer refreshes a single feed
type FeedSyncer interface {
	Sync(ctx context.Context, src domain.Feed) domain.SyncResult
}

// Coordinator fans a refresh out across all configured feeds with bounded
// concurrency. Per-feed outcomes are captured independently; one feed failing
// never cancels or blocks its siblings.
type Coordinator struct {
	syncer        FeedSyncer
	maxConcurrent int
}

// NewCoordinator creates a coordinator with the given in-flight bound
func NewCoordinator(s FeedSyncer, maxConcurrent int) *Coordinator {
	if maxConcurrent <= 0 {
		maxConcurrent = defaultMaxConcurrent
	}
	return &Coordinator{syncer: s, maxConcurrent: maxConcurrent}
}

// SyncAll refreshes every feed concurrently and returns exactly one result per
// requested feed. The call returns only after all refreshes complete; the
// caller re-reads the store afterwards to refresh any display. Canceling ctx
// abandons in-flight fetches with their partial work discarded.
func (c *Coordinator) SyncAll(ctx context.Context, feeds []domain.Feed) map[string]domain.SyncResult {
	lgr.Printf("[INFO] refreshing %d feeds", len(feeds))

	results := make(map[string]domain.SyncResult, len(feeds))
	var mu sync.Mutex

	// plain group, not WithContext: a sibling failure must not cancel others
	var g errgroup.Group
	g.SetLimit(c.maxConcurrent)

	for _, f := range feeds {
		g.Go(func() error {
			res := c.syncer.Sync(ctx, f)
			if res.Err != nil {
				lgr.Printf("[WARN] refresh failed for feed %s (%s): %v", f.ID, f.URL, res.Err)
			}
			mu.Lock()
			results[f.ID] = res
			mu.Unlock()
			return nil
		})
	}

	_ = g.Wait() // workers never return errors, outcomes travel in the results map

	lgr.Printf("[INFO] refresh completed for %d feeds", len(results))
	return results
}
