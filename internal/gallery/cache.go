package gallery

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// DefaultCacheTTL is how long fetched collections are served from memory.
const DefaultCacheTTL = time.Hour

// Cache serves collections from memory and refreshes them after ttl.
// Concurrent misses share a single fetch. Empty or partial results are not
// cached.
type Cache struct {
	fetcher Fetcher
	ttl     time.Duration
	now     func() time.Time

	mu      sync.RWMutex
	data    []Collection
	expires time.Time

	group singleflight.Group
}

var _ Fetcher = (*Cache)(nil)

// completeFetcher reports whether a fetch saw no failed call.
type completeFetcher interface {
	Fetch(ctx context.Context) ([]Collection, bool)
}

// NewCache wraps fetcher. ttl <= 0 uses DefaultCacheTTL.
func NewCache(fetcher Fetcher, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}

	return &Cache{fetcher: fetcher, ttl: ttl, now: time.Now}
}

// Collections implements Fetcher.
func (c *Cache) Collections(ctx context.Context) []Collection {
	c.mu.RLock()
	data, expires := c.data, c.expires
	c.mu.RUnlock()

	if data != nil && c.now().Before(expires) {
		return data
	}

	v, _, _ := c.group.Do("collections", func() (any, error) {
		// one caller going away must not fail the others
		fetched, complete := c.fetch(context.WithoutCancel(ctx))

		if complete && len(fetched) > 0 {
			c.mu.Lock()
			c.data = fetched
			c.expires = c.now().Add(c.ttl)
			c.mu.Unlock()
		}

		return fetched, nil
	})

	return v.([]Collection) //nolint:forcetypeassert
}

func (c *Cache) fetch(ctx context.Context) ([]Collection, bool) {
	if f, ok := c.fetcher.(completeFetcher); ok {
		return f.Fetch(ctx)
	}

	return c.fetcher.Collections(ctx), true
}

// Invalidate drops the cached collections.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	c.data = nil
	c.expires = time.Time{}
	c.mu.Unlock()
}
