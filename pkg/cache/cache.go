// Package cache provides a content-addressed cache for rendered graph
// artifacts (SVG, PNG, DOT).
//
// Keys are derived from the canonical relation encoding, so two
// structurally equal graphs - regardless of expression shape - share cache
// entries. Rendering is the only superlinear step in the CLI pipeline,
// which makes it the one worth caching.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
)

// Sentinel errors for caching operations.
var (
	// ErrCacheMiss is returned by backends that want to distinguish a miss
	// from an empty entry.
	ErrCacheMiss = errors.New("cache miss")
)

// Cache stores rendered artifacts by content-addressed key.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key was
	// present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with the given time-to-live. A non-positive ttl
	// stores the value without expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}

// Key derives a cache key from a prefix (artifact format) and content
// bytes, typically the deterministic canonical-relation encoding. The key
// format is prefix:xxhash(content).
func Key(prefix string, content []byte) string {
	return fmt.Sprintf("%s:%016x", prefix, xxhash.Sum64(content))
}
