package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"
)

// TTLRender is the default lifetime of cached render output. Rendering
// is deterministic for a given graph, so entries never go stale; the TTL
// only bounds disk usage for file-backed caches.
const TTLRender = 24 * time.Hour

// Hash computes the SHA-256 hash of data as a 64-character hex string.
// Used as the content identity of a graph document.
func Hash(data []byte) string {
	h := sha256.Sum256(data)
	return hex.EncodeToString(h[:])
}

// RenderKey builds the cache key for a rendered graph. graphHash is the
// content hash of the serialized graph; opts captures anything that
// changes the output for the same graph.
func RenderKey(graphHash string, opts RenderKeyOpts) string {
	return hashKey("render", graphHash, opts)
}

// RenderKeyOpts are the render settings folded into the cache key.
type RenderKeyOpts struct {
	Format string `json:"format"` // output format, currently always "dot"
}

// hashKey generates a key of the form prefix:hash(parts...).
func hashKey(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	h := sha256.Sum256(data)
	return fmt.Sprintf("%s:%s", prefix, hex.EncodeToString(h[:]))
}

// Scoped wraps a cache so all keys share a prefix, isolating tenants or
// users that share one backend.
type Scoped struct {
	inner  Cache
	prefix string
}

// NewScoped creates a cache whose keys are namespaced with prefix.
func NewScoped(inner Cache, prefix string) Cache {
	return &Scoped{inner: inner, prefix: prefix}
}

// Get retrieves the value stored under the prefixed key.
func (s *Scoped) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return s.inner.Get(ctx, s.prefix+key)
}

// Set stores data under the prefixed key.
func (s *Scoped) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return s.inner.Set(ctx, s.prefix+key, data, ttl)
}

// Delete removes the prefixed key.
func (s *Scoped) Delete(ctx context.Context, key string) error {
	return s.inner.Delete(ctx, s.prefix+key)
}

// Close closes the underlying cache.
func (s *Scoped) Close() error { return s.inner.Close() }

var _ Cache = (*Scoped)(nil)
