// Package cache stores computed tiling counts across runs.
//
// A count for a given board/tile configuration never changes, so entries
// are content-addressed by a hash of the full geometry description and
// can live forever (callers may still pass a TTL). Backends: file (CLI
// default), redis (shared between machines), and null (disabled).
package cache

import (
	"context"
	"time"
)

// Cache is the interface all backends implement.
type Cache interface {
	// Get retrieves a value. The second return reports a hit.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. ttl <= 0 means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}
