package domain

import (
	"crypto/sha1" //nolint:gosec // used for stable identifiers, not for security
	"encoding/hex"
	"time"
)

// Feed represents a configured news source together with the HTTP validators
// cached from the last successful fetch. ETag and LastModified are nil when the
// server never sent them; their presence drives conditional requests.
type Feed struct {
	ID           string
	URL          string
	Title        string
	ETag         *string
	LastModified *string
	LastSyncedAt *time.Time
	CreatedAt    time.Time
}

// DeriveFeedID produces a stable identifier for a feed from its source URL.
// The same URL always yields the same ID, across process restarts.
func DeriveFeedID(url string) string {
	sum := sha1.Sum([]byte(url)) //nolint:gosec // identifier derivation, not crypto
	return hex.EncodeToString(sum[:])[:12]
}
