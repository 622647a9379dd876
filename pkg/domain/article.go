package domain

import (
	"crypto/sha1" //nolint:gosec // used for stable identifiers, not for security
	"encoding/hex"
	"time"
)

// Article is a single feed entry. Key is the natural key, unique within a feed;
// an article whose (feed, key) pair is already stored is never inserted again.
type Article struct {
	FeedID    string
	Key       string
	Title     string
	Link      string
	Published *time.Time
	Summary   string
	FirstSeen time.Time
}

// ArticleKey derives the natural key for an article: the feed-provided GUID
// when present, the link otherwise, and a hash of link+title as the last
// resort. Stable across refreshes and process restarts.
func ArticleKey(guid, link, title string) string {
	if guid != "" {
		return guid
	}
	if link != "" {
		return link
	}
	sum := sha1.Sum([]byte(link + "\n" + title)) //nolint:gosec // identifier derivation, not crypto
	return hex.EncodeToString(sum[:])
}
