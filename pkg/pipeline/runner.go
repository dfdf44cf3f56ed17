package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/dotgen/pkg/cache"
	"github.com/matzehuels/dotgen/pkg/graph"
	gio "github.com/matzehuels/dotgen/pkg/io"
	"github.com/matzehuels/dotgen/pkg/observability"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API can use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Logger: logger,
	}
}

// Execute runs the complete import → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	// Stage 1: Import
	importStart := time.Now()
	observability.Render().OnImportStart(ctx, opts.Input)
	g, err := gio.Import(opts.Input)
	importTime := time.Since(importStart)
	observability.Render().OnImportComplete(ctx, opts.Input, nodeCount(g), importTime, err)
	if err != nil {
		return nil, fmt.Errorf("import: %w", err)
	}

	opts.Logger.Info("imported graph",
		"input", opts.Input,
		"nodes", g.NodeCount(),
		"edges", g.EdgeCount(),
		"duration", importTime)

	result, err := r.RenderGraph(ctx, g, opts)
	if err != nil {
		return nil, err
	}
	result.Stats.ImportTime = importTime
	return result, nil
}

// RenderGraph serializes an already-loaded graph with caching.
func (r *Runner) RenderGraph(ctx context.Context, g *graph.Graph, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForRender(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	graphData, err := json.Marshal(g)
	if err != nil {
		return nil, fmt.Errorf("marshal graph: %w", err)
	}

	result := &Result{
		Graph: g,
		Hash:  cache.Hash(graphData),
	}
	result.Stats.NodeCount = g.NodeCount()
	result.Stats.EdgeCount = g.EdgeCount()

	cacheKey := cache.RenderKey(result.Hash, cache.RenderKeyOpts{Format: opts.Format})

	if !opts.Refresh {
		if data, ok, err := r.cacheGet(ctx, cacheKey); err == nil && ok {
			observability.Cache().OnCacheHit(ctx, "render")
			opts.Logger.Debug("render cache hit", "key", cacheKey)
			result.Output = data
			result.Cached = true
			return result, nil
		}
		observability.Cache().OnCacheMiss(ctx, "render")
	}

	renderStart := time.Now()
	observability.Render().OnRenderStart(ctx, opts.Format, result.Stats.NodeCount)
	output, err := r.render(g, opts.Format)
	result.Stats.RenderTime = time.Since(renderStart)
	observability.Render().OnRenderComplete(ctx, opts.Format, result.Stats.RenderTime, err)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Output = output

	if err := r.cacheSet(ctx, cacheKey, output, opts.TTL); err == nil {
		observability.Cache().OnCacheSet(ctx, "render", len(output))
	} else {
		opts.Logger.Warn("render cache write failed", "key", cacheKey, "err", err)
	}

	opts.Logger.Info("rendered graph",
		"format", opts.Format,
		"bytes", len(output),
		"duration", result.Stats.RenderTime)

	return result, nil
}

func (r *Runner) render(g *graph.Graph, format string) ([]byte, error) {
	switch format {
	case FormatDOT:
		return []byte(g.DOT()), nil
	case FormatJSON:
		var buf bytes.Buffer
		if err := gio.WriteJSON(g, &buf); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("invalid format: %q", format)
	}
}

// Close releases resources held by the runner.
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// cacheGet reads through the cache with retries, so a transient backend
// error (a dropped redis connection, say) does not force a re-render.
func (r *Runner) cacheGet(ctx context.Context, key string) ([]byte, bool, error) {
	var (
		data []byte
		ok   bool
	)
	err := cache.RetryWithBackoff(ctx, func() error {
		var err error
		data, ok, err = r.Cache.Get(ctx, key)
		return err
	})
	return data, ok, err
}

// cacheSet writes through the cache with the same retry policy as cacheGet.
func (r *Runner) cacheSet(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return cache.RetryWithBackoff(ctx, func() error {
		return r.Cache.Set(ctx, key, data, ttl)
	})
}

// applyLogger prefers an explicit per-call logger, falling back to the
// runner's logger.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

func nodeCount(g *graph.Graph) int {
	if g == nil {
		return 0
	}
	return g.NodeCount()
}
