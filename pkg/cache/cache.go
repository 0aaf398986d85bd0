// Package cache provides the artifact cache used by the CLI to skip
// re-rendering unchanged scenes.
//
// Rendered images are keyed by a hash of everything that influences the
// output: the bathtub specs, the shower geometry, the render options, and
// the output format. A [FileCache] stores entries under the user cache
// directory; [NullCache] disables caching without changing call sites.
package cache

import (
	"context"
	"time"
)

// DefaultTTL is how long cached artifacts stay valid. Rendering is fully
// deterministic, so the TTL exists only to bound stale disk usage.
const DefaultTTL = 30 * 24 * time.Hour

// Cache stores rendered artifacts as opaque bytes.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key was
	// present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with the given time-to-live. A non-positive ttl
	// stores the entry without expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}

// ArtifactKey derives a cache key for a rendered artifact from the parts
// that determine its content. Parts are JSON-marshaled and hashed, so any
// JSON-serializable value may be passed.
func ArtifactKey(format string, parts ...any) string {
	return hashKey("artifact:"+format, parts...)
}
