package cache

import "time"

// LayeredCache fronts the disk cache with a memory layer. A batch run that
// revisits a document within one process reads the disk at most once; the
// disk layer is what survives between runs.
type LayeredCache struct {
	memory Cache
	disk   Cache
}

// NewLayeredCache creates the standard two-layer document text cache
func NewLayeredCache(memoryTTL time.Duration, diskDir string, diskTTL time.Duration) *LayeredCache {
	return &LayeredCache{
		memory: NewMemoryCache(memoryTTL, 10*time.Minute),
		disk:   NewDiskCache(diskDir, diskTTL),
	}
}

// Get checks memory first, then disk. A disk hit is promoted into memory
// with the memory layer's default TTL.
func (c *LayeredCache) Get(key string) (string, bool) {
	if text, found := c.memory.Get(key); found {
		return text, true
	}

	text, found := c.disk.Get(key)
	if !found {
		return "", false
	}
	_ = c.memory.Set(key, text, 0)
	return text, true
}

// Set writes through both layers. The disk write happens first so a
// reported success means the text survives the process.
func (c *LayeredCache) Set(key, text string, ttl time.Duration) error {
	if err := c.disk.Set(key, text, ttl); err != nil {
		return err
	}
	return c.memory.Set(key, text, ttl)
}

// Delete removes the document from both layers
func (c *LayeredCache) Delete(key string) error {
	_ = c.memory.Delete(key)
	return c.disk.Delete(key)
}

// Clear empties both layers
func (c *LayeredCache) Clear() error {
	_ = c.memory.Clear()
	return c.disk.Clear()
}
