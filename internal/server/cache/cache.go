// Package cache provides the bounded in-memory member-list cache shared by
// the banner and avatar handlers. Entries expire after a TTL and the least
// recently used entry is evicted once the capacity is reached. The cache is
// an injected service owned by the server, not a process global.
package cache

import (
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/opencollective/images/internal/graph"
)

// Defaults for the member cache.
const (
	DefaultSize = 5000
	DefaultTTL  = 10 * time.Minute
)

// MembersKey identifies one cached member list. The full request parameter
// set participates in the key so different selectors never collide.
type MembersKey struct {
	CollectiveSlug string
	BackerType     string
	TierSlug       string
	IsActive       bool
}

// String serializes the key for storage.
func (k MembersKey) String() string {
	return fmt.Sprintf("%s/%s/%s/%t", k.CollectiveSlug, k.BackerType, k.TierSlug, k.IsActive)
}

// Members is a TTL- and capacity-bounded member-list cache safe for
// concurrent use. Racing writers for the same key are last-writer-wins;
// entries are idempotent and short-lived so no fetch de-duplication is done.
type Members struct {
	lru *expirable.LRU[string, []graph.Member]
}

// NewMembers creates a member cache. Non-positive size or ttl fall back to
// the defaults.
func NewMembers(size int, ttl time.Duration) *Members {
	if size <= 0 {
		size = DefaultSize
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Members{
		lru: expirable.NewLRU[string, []graph.Member](size, nil, ttl),
	}
}

// Get returns the cached member list for the key, if present and fresh.
func (c *Members) Get(key MembersKey) ([]graph.Member, bool) {
	return c.lru.Get(key.String())
}

// Set stores the member list for the key, evicting the least recently used
// entry when at capacity.
func (c *Members) Set(key MembersKey, members []graph.Member) {
	c.lru.Add(key.String(), members)
}

// Len returns the number of live entries.
func (c *Members) Len() int {
	return c.lru.Len()
}
