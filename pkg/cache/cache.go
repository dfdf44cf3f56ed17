// Package cache stores rendered DOT output keyed by graph content.
//
// Rendering is cheap but not free for very large graphs, and the HTTP
// service may see the same graph repeatedly. The cache maps a content
// hash of the graph (plus render options) to the rendered bytes.
//
// Three backends are provided:
//   - [FileCache]: directory-based, for the CLI
//   - [RedisCache]: shared cache for server deployments
//   - [NullCache]: disables caching
//
// Keys are built with [RenderKey]; use [Scoped] to namespace keys in
// multi-tenant deployments.
package cache

import (
	"context"
	"time"
)

// Cache is a byte store with per-entry TTL. Implementations must treat
// an expired or missing entry as a miss, not an error.
type Cache interface {
	// Get retrieves the value for key. The second result reports
	// whether the key was present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// NullCache is a no-op cache that never stores anything. Useful for
// tests or when caching is disabled.
type NullCache struct{}

// NewNullCache creates a null cache.
func NewNullCache() Cache { return &NullCache{} }

// Get always reports a miss.
func (c *NullCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return nil, false, nil
}

// Set does nothing.
func (c *NullCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return nil
}

// Delete does nothing.
func (c *NullCache) Delete(ctx context.Context, key string) error { return nil }

// Close does nothing.
func (c *NullCache) Close() error { return nil }

var _ Cache = (*NullCache)(nil)
