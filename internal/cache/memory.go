package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// MemoryCache holds recently extracted text for the lifetime of a batch run
type MemoryCache struct {
	store *gocache.Cache
}

// NewMemoryCache creates a memory cache with the given default TTL
func NewMemoryCache(defaultTTL, cleanupInterval time.Duration) *MemoryCache {
	return &MemoryCache{store: gocache.New(defaultTTL, cleanupInterval)}
}

// Get returns the cached text for a document key
func (c *MemoryCache) Get(key string) (string, bool) {
	val, found := c.store.Get(key)
	if !found {
		return "", false
	}
	text, ok := val.(string)
	return text, ok
}

// Set stores document text under key. A zero ttl uses the cache default.
func (c *MemoryCache) Set(key, text string, ttl time.Duration) error {
	c.store.Set(key, text, ttl)
	return nil
}

// Delete removes one document's text
func (c *MemoryCache) Delete(key string) error {
	c.store.Delete(key)
	return nil
}

// Clear drops everything
func (c *MemoryCache) Clear() error {
	c.store.Flush()
	return nil
}
