package cache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// DiskCache persists extracted document text between runs, one JSON file per
// document under a single directory.
type DiskCache struct {
	dir        string
	defaultTTL time.Duration
}

// diskEntry is the on-disk representation of one cached document text
type diskEntry struct {
	Text      string    `json:"text"`
	SavedAt   time.Time `json:"saved_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// NewDiskCache creates a disk cache rooted at dir
func NewDiskCache(dir string, defaultTTL time.Duration) *DiskCache {
	return &DiskCache{dir: dir, defaultTTL: defaultTTL}
}

// Get returns the cached text for a document key. Expired entries are
// removed on read.
func (c *DiskCache) Get(key string) (string, bool) {
	path := c.entryPath(key)

	raw, err := os.ReadFile(path)
	if err != nil {
		return "", false
	}

	var entry diskEntry
	if err := json.Unmarshal(raw, &entry); err != nil {
		// An unreadable entry is treated as a miss and rewritten on Set
		return "", false
	}
	if time.Now().After(entry.ExpiresAt) {
		_ = os.Remove(path)
		return "", false
	}

	return entry.Text, true
}

// Set stores document text under key. A zero ttl uses the cache default.
func (c *DiskCache) Set(key, text string, ttl time.Duration) error {
	if ttl == 0 {
		ttl = c.defaultTTL
	}

	if err := os.MkdirAll(c.dir, 0755); err != nil {
		return fmt.Errorf("create cache dir: %w", err)
	}

	now := time.Now()
	raw, err := json.Marshal(diskEntry{
		Text:      text,
		SavedAt:   now,
		ExpiresAt: now.Add(ttl),
	})
	if err != nil {
		return fmt.Errorf("marshal entry: %w", err)
	}

	if err := os.WriteFile(c.entryPath(key), raw, 0644); err != nil {
		return fmt.Errorf("write cache entry: %w", err)
	}
	return nil
}

// Delete removes one document's entry
func (c *DiskCache) Delete(key string) error {
	return os.Remove(c.entryPath(key))
}

// Clear removes the whole cache directory
func (c *DiskCache) Clear() error {
	return os.RemoveAll(c.dir)
}

// entryPath maps a document key to its file. Keys carry a "polsched:v1:"
// prefix; colons are not portable filename characters.
func (c *DiskCache) entryPath(key string) string {
	name := strings.ReplaceAll(key, ":", "_") + ".json"
	return filepath.Join(c.dir, name)
}
