package monitoring

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

const snapshotCacheKey = "snapshot"

// CachedSection memoizes the last successful snapshot of another section for a TTL.
// Errors are never cached. Expiry is checked on read, so no janitor goroutine runs.
type CachedSection struct {
	inner Section
	ttl   time.Duration
	cache *gocache.Cache
}

var _ Section = (*CachedSection)(nil)

// NewCachedSection wraps inner. A non-positive ttl disables caching.
func NewCachedSection(inner Section, ttl time.Duration) *CachedSection {
	return &CachedSection{
		inner: inner,
		ttl:   ttl,
		cache: gocache.New(ttl, 0),
	}
}

// Identifier delegates to the wrapped section.
func (c *CachedSection) Identifier() Identifier { return c.inner.Identifier() }

// Snapshot returns a copy of the cached attributes, refreshing them when expired.
func (c *CachedSection) Snapshot() ([]Attribute, error) {
	if c.ttl <= 0 {
		return c.inner.Snapshot()
	}
	if v, found := c.cache.Get(snapshotCacheKey); found {
		if attrs, ok := v.([]Attribute); ok {
			return copyAttributes(attrs), nil
		}
	}
	attrs, err := c.inner.Snapshot()
	if err != nil {
		return nil, err
	}
	c.cache.SetDefault(snapshotCacheKey, copyAttributes(attrs))
	return attrs, nil
}

// Invalidate drops the cached snapshot.
func (c *CachedSection) Invalidate() { c.cache.Delete(snapshotCacheKey) }
