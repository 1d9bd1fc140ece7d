// Package treecache caches assembled subtrees keyed by their root node id.
// It replaces a fetched-once flag with an explicit invalidation protocol:
// any write beneath a node must invalidate the node and its whole ancestor
// chain, since every cached ancestor subtree embeds the changed node.
package treecache

import (
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"studyhub-be/pkg/tree"
)

type SubtreeCache struct {
	cache *cache.Cache
}

func New(ttl time.Duration) *SubtreeCache {
	// Purge interval at twice the TTL keeps the sweeper cheap; correctness
	// comes from per-entry expiry, not the sweep.
	return &SubtreeCache{
		cache: cache.New(ttl, 2*ttl),
	}
}

func (c *SubtreeCache) Get(rootId uuid.UUID) ([]*tree.Node, bool) {
	if x, found := c.cache.Get(rootId.String()); found {
		return x.([]*tree.Node), true
	}
	return nil, false
}

func (c *SubtreeCache) Set(rootId uuid.UUID, subtree []*tree.Node) {
	c.cache.Set(rootId.String(), subtree, cache.DefaultExpiration)
}

// Invalidate drops the entries for the given node ids. Callers pass the
// written node together with its ancestor chain (tree.AncestorIDs).
func (c *SubtreeCache) Invalidate(ids ...uuid.UUID) {
	for _, id := range ids {
		c.cache.Delete(id.String())
	}
}

// Flush drops every cached subtree. Cascade delete uses this instead of
// enumerating the deleted subtree's ancestors after the rows are gone.
func (c *SubtreeCache) Flush() {
	c.cache.Flush()
}
