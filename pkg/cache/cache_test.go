package cache

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestFileCacheRoundTrip(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache() error = %v", err)
	}
	defer c.Close()

	ctx := context.Background()
	key := RenderKey("abc123", RenderKeyOpts{Format: "dot"})

	if err := c.Set(ctx, key, []byte("digraph {}\n"), 0); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	data, ok, err := c.Get(ctx, key)
	if err != nil || !ok {
		t.Fatalf("Get() = %v, %v, %v", data, ok, err)
	}
	if string(data) != "digraph {}\n" {
		t.Errorf("Get() data = %q", data)
	}
}

func TestFileCacheMiss(t *testing.T) {
	c, _ := NewFileCache(t.TempDir())
	defer c.Close()

	_, ok, err := c.Get(context.Background(), "nope")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if ok {
		t.Error("Get() on empty cache should miss")
	}
}

func TestFileCacheExpiry(t *testing.T) {
	c, _ := NewFileCache(t.TempDir())
	defer c.Close()

	ctx := context.Background()
	if err := c.Set(ctx, "k", []byte("v"), time.Nanosecond); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	time.Sleep(10 * time.Millisecond)

	_, ok, err := c.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if ok {
		t.Error("expired entry should miss")
	}
}

func TestFileCacheDelete(t *testing.T) {
	c, _ := NewFileCache(t.TempDir())
	defer c.Close()

	ctx := context.Background()
	c.Set(ctx, "k", []byte("v"), 0)
	if err := c.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, ok, _ := c.Get(ctx, "k"); ok {
		t.Error("deleted entry should miss")
	}
	// Deleting again must not error.
	if err := c.Delete(ctx, "k"); err != nil {
		t.Errorf("Delete() of missing key error = %v", err)
	}
}

func TestNullCache(t *testing.T) {
	c := NewNullCache()
	ctx := context.Background()

	if err := c.Set(ctx, "k", []byte("v"), 0); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if _, ok, _ := c.Get(ctx, "k"); ok {
		t.Error("NullCache should never hit")
	}
}

func TestScoped(t *testing.T) {
	backing, _ := NewFileCache(t.TempDir())
	a := NewScoped(backing, "tenant-a:")
	b := NewScoped(backing, "tenant-b:")

	ctx := context.Background()
	a.Set(ctx, "k", []byte("from a"), 0)

	if _, ok, _ := b.Get(ctx, "k"); ok {
		t.Error("scoped caches should not see each other's keys")
	}
	data, ok, _ := a.Get(ctx, "k")
	if !ok || string(data) != "from a" {
		t.Errorf("scoped Get() = %q, %v", data, ok)
	}
}

func TestRenderKeyStable(t *testing.T) {
	k1 := RenderKey("h", RenderKeyOpts{Format: "dot"})
	k2 := RenderKey("h", RenderKeyOpts{Format: "dot"})
	if k1 != k2 {
		t.Error("RenderKey() should be deterministic")
	}
	if k1 == RenderKey("other", RenderKeyOpts{Format: "dot"}) {
		t.Error("different hashes should yield different keys")
	}
}

func TestRetryWithBackoff(t *testing.T) {
	calls := 0
	err := RetryWithBackoff(context.Background(), func() error {
		calls++
		return errors.New("fatal")
	})
	if err == nil || calls != 1 {
		t.Errorf("non-retryable error retried: calls = %d, err = %v", calls, err)
	}
}
