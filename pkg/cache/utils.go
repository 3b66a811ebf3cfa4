package cache

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
)

// GenerateKey creates a cache key with prefix and ID.
func GenerateKey(prefix string, id string) string {
	return fmt.Sprintf("%s:%s", prefix, id)
}

// SourceKey derives a stable cache key for a source identifier. URLs carry
// characters that are awkward in Redis keys, so the identifier is hashed.
func SourceKey(prefix, sourceID string) string {
	h := sha1.Sum([]byte(sourceID))
	return GenerateKey(prefix, hex.EncodeToString(h[:]))
}
