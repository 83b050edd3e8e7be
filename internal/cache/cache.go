// Package cache stores extracted schedule text keyed by document content,
// so repeated runs over the same file skip PDF text extraction.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache stores extraction-ready document text. Values are text, not blobs;
// whatever went through normalization comes back out unchanged.
type Cache interface {
	Get(key string) (text string, found bool)
	Set(key, text string, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// DocumentKey derives a cache key from the raw bytes of a source document.
// Keying on content rather than path means a renamed schedule still hits
// and an edited one misses.
func DocumentKey(data []byte) string {
	hash := sha256.Sum256(data)
	return "polsched:v1:" + hex.EncodeToString(hash[:])
}
