package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/dotgen/pkg/cache"
	"github.com/matzehuels/dotgen/pkg/graph"
)

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"dot", false},
		{"json", false},
		{"invalid", true},
		{"DOT", true}, // case-sensitive
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
	}
}

func TestOptionsDefaults(t *testing.T) {
	opts := Options{Input: "deps.json"}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults() error = %v", err)
	}
	if opts.Format != FormatDOT {
		t.Errorf("Format = %q, want %q", opts.Format, FormatDOT)
	}
	if opts.TTL != DefaultTTL {
		t.Errorf("TTL = %v, want %v", opts.TTL, DefaultTTL)
	}
	if opts.Logger == nil {
		t.Error("Logger should default to a discard logger")
	}
}

func TestOptionsMissingInput(t *testing.T) {
	opts := Options{}
	if err := opts.ValidateAndSetDefaults(); err == nil {
		t.Error("empty input should fail validation")
	}
}

func testGraph(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.New("deps")
	if err := g.AddNode(graph.Node{ID: "app", Attrs: graph.Attrs{"label": "my app"}}); err != nil {
		t.Fatal(err)
	}
	if err := g.AddNode(graph.Node{ID: "lib"}); err != nil {
		t.Fatal(err)
	}
	if err := g.AddEdge(graph.Edge{From: "app", To: "lib"}); err != nil {
		t.Fatal(err)
	}
	return g
}

func TestRenderGraphDOT(t *testing.T) {
	runner := NewRunner(nil, nil)
	defer runner.Close()

	result, err := runner.RenderGraph(context.Background(), testGraph(t), Options{})
	if err != nil {
		t.Fatalf("RenderGraph() error = %v", err)
	}
	out := string(result.Output)
	if !strings.HasPrefix(out, "digraph deps {") {
		t.Errorf("output should start with digraph header, got %q", out)
	}
	if !strings.Contains(out, "app -> lib;") {
		t.Errorf("output should contain the edge, got %q", out)
	}
	if result.Hash == "" {
		t.Error("result should carry a graph hash")
	}
	if result.Cached {
		t.Error("first render should not be cached")
	}
	if result.Stats.NodeCount != 2 || result.Stats.EdgeCount != 1 {
		t.Errorf("stats = %d nodes %d edges, want 2/1", result.Stats.NodeCount, result.Stats.EdgeCount)
	}
}

func TestRenderGraphJSON(t *testing.T) {
	runner := NewRunner(nil, nil)
	defer runner.Close()

	result, err := runner.RenderGraph(context.Background(), testGraph(t), Options{Format: FormatJSON})
	if err != nil {
		t.Fatalf("RenderGraph() error = %v", err)
	}
	var decoded graph.Graph
	if err := json.Unmarshal(result.Output, &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.Name != "deps" {
		t.Errorf("decoded name = %q, want deps", decoded.Name)
	}
}

func TestRenderGraphCaching(t *testing.T) {
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	runner := NewRunner(fc, nil)
	defer runner.Close()

	ctx := context.Background()
	g := testGraph(t)

	first, err := runner.RenderGraph(ctx, g, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if first.Cached {
		t.Error("first render should miss the cache")
	}

	second, err := runner.RenderGraph(ctx, g, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if !second.Cached {
		t.Error("second render should hit the cache")
	}
	if string(first.Output) != string(second.Output) {
		t.Error("cached output should match the rendered output")
	}

	// Refresh bypasses the cache.
	third, err := runner.RenderGraph(ctx, g, Options{Refresh: true})
	if err != nil {
		t.Fatal(err)
	}
	if third.Cached {
		t.Error("refresh should bypass the cache")
	}
}

// flakyCache fails its first getFails Gets and setFails Sets with a
// retryable error, then delegates to the wrapped cache.
type flakyCache struct {
	inner    cache.Cache
	getFails int
	setFails int
	getCalls int
	setCalls int
}

func (c *flakyCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	c.getCalls++
	if c.getFails > 0 {
		c.getFails--
		return nil, false, cache.Retryable(errors.New("connection reset"))
	}
	return c.inner.Get(ctx, key)
}

func (c *flakyCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	c.setCalls++
	if c.setFails > 0 {
		c.setFails--
		return cache.Retryable(errors.New("connection reset"))
	}
	return c.inner.Set(ctx, key, data, ttl)
}

func (c *flakyCache) Delete(ctx context.Context, key string) error {
	return c.inner.Delete(ctx, key)
}

func (c *flakyCache) Close() error { return c.inner.Close() }

func TestRenderGraphRetriesTransientCacheErrors(t *testing.T) {
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	flaky := &flakyCache{inner: fc, getFails: 1, setFails: 1}
	runner := NewRunner(flaky, nil)
	defer runner.Close()

	ctx := context.Background()
	g := testGraph(t)

	// First render: the flaky Get and Set each fail once and are retried,
	// so the output still lands in the underlying cache.
	first, err := runner.RenderGraph(ctx, g, Options{})
	if err != nil {
		t.Fatalf("RenderGraph() error = %v", err)
	}
	if first.Cached {
		t.Error("first render should miss the cache")
	}
	if flaky.getCalls != 2 {
		t.Errorf("Get calls = %d, want 2 (one failure, one retry)", flaky.getCalls)
	}
	if flaky.setCalls != 2 {
		t.Errorf("Set calls = %d, want 2 (one failure, one retry)", flaky.setCalls)
	}

	second, err := runner.RenderGraph(ctx, g, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if !second.Cached {
		t.Error("second render should hit the cache written through the retry")
	}
}

func TestRenderGraphTreatsCacheFailureAsMiss(t *testing.T) {
	// Errors not marked retryable are not retried; the render proceeds
	// as if the cache missed.
	flaky := &flakyCache{inner: brokenCache{}, getFails: 0}
	runner := NewRunner(flaky, nil)
	defer runner.Close()

	result, err := runner.RenderGraph(context.Background(), testGraph(t), Options{})
	if err != nil {
		t.Fatalf("RenderGraph() error = %v", err)
	}
	if result.Cached {
		t.Error("render against a broken cache should not report cached")
	}
	if flaky.getCalls != 1 {
		t.Errorf("Get calls = %d, want 1 (no retry for plain errors)", flaky.getCalls)
	}
	if len(result.Output) == 0 {
		t.Error("render should still produce output")
	}
}

// brokenCache fails every operation with a plain, non-retryable error.
type brokenCache struct{}

func (brokenCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return nil, false, errors.New("cache offline")
}

func (brokenCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return errors.New("cache offline")
}

func (brokenCache) Delete(ctx context.Context, key string) error { return errors.New("cache offline") }

func (brokenCache) Close() error { return nil }

func TestExecute(t *testing.T) {
	doc := `{"name":"deps","directed":true,"nodes":[{"id":"app"},{"id":"lib"}],"edges":[{"from":"app","to":"lib"}]}`
	path := filepath.Join(t.TempDir(), "deps.json")
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	runner := NewRunner(nil, nil)
	defer runner.Close()

	result, err := runner.Execute(context.Background(), Options{Input: path})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(string(result.Output), "app -> lib;") {
		t.Errorf("output should contain the edge, got %q", result.Output)
	}
	if result.Graph == nil || result.Graph.Name != "deps" {
		t.Error("result should carry the imported graph")
	}
}

func TestExecuteInvalidFormat(t *testing.T) {
	runner := NewRunner(nil, nil)
	defer runner.Close()

	_, err := runner.Execute(context.Background(), Options{Input: "deps.json", Format: "svg"})
	if err == nil {
		t.Error("invalid format should fail before touching the input")
	}
}
