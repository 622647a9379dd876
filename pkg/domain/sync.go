package domain

// SyncStatus tells the caller how to present a feed after a refresh attempt.
type SyncStatus string

const (
	// StatusFresh means the feed was fetched and merged into the cache.
	StatusFresh SyncStatus = "fresh"
	// StatusUnchanged means the server replied 304 and the cache is current.
	StatusUnchanged SyncStatus = "unchanged"
	// StatusStale means the refresh failed and the cached copy is served as-is.
	StatusStale SyncStatus = "stale"
)

// SyncResult is the outcome of refreshing a single feed.
type SyncResult struct {
	FeedID      string
	NewArticles int
	UsedNetwork bool
	Status      SyncStatus
	Err         error
}
