// Package cache keeps query results keyed by logical identity so every
// consumer of the same data shares one fetch. Consumers read through Get;
// mutation sites call Invalidate with the keys they affect.
package cache

import (
	"context"
	"sync"

	"github.com/sarthakbiswas97/X-clone/internal/metrics"
	"golang.org/x/sync/singleflight"
)

// Fetcher loads the value for a key from the remote API.
type Fetcher func(ctx context.Context) (any, error)

// Cache is a keyed query cache. Identical in-flight fetches for one key
// coalesce into a single call; a fetch that completes after its key was
// invalidated is discarded so a stale result never overwrites newer state.
type Cache struct {
	mu       sync.Mutex
	entries  map[string]any
	versions map[string]uint64
	group    singleflight.Group
}

func New() *Cache {
	return &Cache{
		entries:  make(map[string]any),
		versions: make(map[string]uint64),
	}
}

// Get returns the cached value for key, fetching it if absent. All callers
// that arrive while a fetch for key is in flight receive that fetch's
// result. Fetch errors are not cached; the next Get tries again.
func (c *Cache) Get(ctx context.Context, key string, fetch Fetcher) (any, error) {
	c.mu.Lock()
	if v, ok := c.entries[key]; ok {
		c.mu.Unlock()
		metrics.IncCacheHit(key)
		return v, nil
	}
	ver := c.versions[key]
	c.mu.Unlock()
	metrics.IncCacheMiss(key)

	v, err, _ := c.group.Do(key, func() (any, error) {
		v, err := fetch(ctx)
		if err != nil {
			return nil, err
		}
		c.store(key, ver, v)
		return v, nil
	})
	return v, err
}

// Peek returns the cached value without triggering a fetch. The second
// return is false while the value is not yet available.
func (c *Cache) Peek(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.entries[key]
	return v, ok
}

// Invalidate marks keys stale. It never blocks on network work: the next
// Get for each key refetches. A fetch in flight at invalidation time still
// resolves for its waiters but its result is not stored.
func (c *Cache) Invalidate(keys ...string) {
	c.mu.Lock()
	for _, k := range keys {
		delete(c.entries, k)
		c.versions[k]++
		c.group.Forget(k)
	}
	c.mu.Unlock()
	for _, k := range keys {
		metrics.IncCacheInvalidation(k)
	}
}

func (c *Cache) store(key string, ver uint64, v any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.versions[key] != ver {
		// invalidated while the fetch was in flight
		return
	}
	c.entries[key] = v
}
