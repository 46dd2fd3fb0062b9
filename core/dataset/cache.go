package dataset

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// LoadFunc loads a dataset on a cache miss.
type LoadFunc func(ctx context.Context) (*Dataset, error)

type cacheEntry struct {
	dataset *Dataset
	built   time.Time
}

// Cache keeps loaded datasets for a TTL so repeated comparisons against the
// same location skip the reload. Cached datasets are shared and must not be mutated.
type Cache struct {
	ttl     time.Duration
	mu      sync.RWMutex
	entries map[string]*cacheEntry
	sf      singleflight.Group
	now     func() time.Time
}

// NewCache creates a cache. A zero TTL disables caching.
func NewCache(ttl time.Duration) *Cache {
	return &Cache{
		ttl:     ttl,
		entries: make(map[string]*cacheEntry),
		now:     time.Now,
	}
}

func (c *Cache) expired(e *cacheEntry) bool {
	return c.now().Sub(e.built) > c.ttl
}

// GetOrLoad returns the cached dataset for key, or calls load.
// Concurrent misses for the same key share a single load.
func (c *Cache) GetOrLoad(ctx context.Context, key string, load LoadFunc) (*Dataset, error) {
	if c.ttl <= 0 {
		return load(ctx)
	}

	// Fast path
	c.mu.RLock()
	entry, exists := c.entries[key]
	c.mu.RUnlock()
	if exists && !c.expired(entry) {
		return entry.dataset, nil
	}

	result, err, _ := c.sf.Do(key, func() (interface{}, error) {
		// Double-check after acquiring the singleflight slot
		c.mu.RLock()
		entry, exists := c.entries[key]
		c.mu.RUnlock()
		if exists && !c.expired(entry) {
			return entry.dataset, nil
		}

		ds, err := load(ctx)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.entries[key] = &cacheEntry{dataset: ds, built: c.now()}
		c.mu.Unlock()

		return ds, nil
	})
	if err != nil {
		return nil, err
	}

	return result.(*Dataset), nil
}

// Invalidate drops the cached dataset for key.
func (c *Cache) Invalidate(key string) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}

// Len returns the number of cached datasets, expired ones included.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
