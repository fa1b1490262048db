// Package analysis runs centrality from many sources over one graph and keeps
// recent results in an LRU cache.
//
// Concurrency: an Analyzer is safe for concurrent use. Runs over the shared
// graph are serialised by the engine; two concurrent misses for the same
// source may both run, and the later result replaces the earlier one.
package analysis

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"

	"github.com/katalvlaran/gasgraph/centrality"
	"github.com/katalvlaran/gasgraph/core"
)

// ErrNoVertices indicates the graph has no vertex to pick as a source.
var ErrNoVertices = errors.New("analysis: graph has no vertices")

// DefaultCacheSize is the number of results kept when no size is configured.
const DefaultCacheSize = 128

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithMode sets the accumulation mode used for every run.
func WithMode(m centrality.Mode) Option {
	return func(a *Analyzer) {
		a.mode = m
	}
}

// WithCacheSize sets the number of cached results; values < 1 keep the default.
func WithCacheSize(n int) Option {
	return func(a *Analyzer) {
		if n > 0 {
			a.cacheSize = n
		}
	}
}

// WithLogger sets the logger passed to the engine; nil keeps the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(a *Analyzer) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithMetrics sets the collectors updated by runs and cache lookups.
func WithMetrics(m *Metrics) Option {
	return func(a *Analyzer) {
		a.metrics = m
	}
}

// Analyzer caches centrality results per source vertex of one graph.
type Analyzer struct {
	g         *core.Graph
	mode      centrality.Mode
	cacheSize int
	cache     *lru.Cache[string, *centrality.Result]
	logger    *zap.Logger
	metrics   *Metrics

	hits   atomic.Int64
	misses atomic.Int64
}

// New creates an Analyzer over g.
func New(g *core.Graph, opts ...Option) (*Analyzer, error) {
	if g == nil {
		return nil, centrality.ErrNilGraph
	}
	a := &Analyzer{
		g:         g,
		mode:      centrality.ModeShortestPaths,
		cacheSize: DefaultCacheSize,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(a)
	}

	cache, err := lru.New[string, *centrality.Result](a.cacheSize)
	if err != nil {
		return nil, fmt.Errorf("analysis: create cache: %w", err)
	}
	a.cache = cache

	return a, nil
}

// Graph returns the analysed graph.
func (a *Analyzer) Graph() *core.Graph { return a.g }

// Mode returns the accumulation mode used for runs.
func (a *Analyzer) Mode() centrality.Mode { return a.mode }

// cacheKey ties a result to the graph's size so growth invalidates it.
func (a *Analyzer) cacheKey(source string) string {
	return fmt.Sprintf("%s|%d|%d", source, a.g.VertexCount(), a.g.EdgeCount())
}

// Analyze returns the result for source, running the engine on a cache miss.
func (a *Analyzer) Analyze(ctx context.Context, source string) (*centrality.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	key := a.cacheKey(source)
	if res, ok := a.cache.Get(key); ok {
		a.hits.Add(1)
		a.metrics.cacheRequest("hit")
		return res, nil
	}
	a.misses.Add(1)
	a.metrics.cacheRequest("miss")

	opts := []centrality.Option{
		centrality.Source(source),
		centrality.WithMode(a.mode),
		centrality.WithLogger(a.logger),
	}
	if a.metrics != nil {
		opts = append(opts, centrality.WithMetrics(a.metrics.Engine))
	}
	res, err := centrality.Run(a.g, opts...)
	if err != nil {
		return nil, err
	}
	if evicted := a.cache.Add(key, res); evicted {
		a.logger.Debug("analysis cache evicted oldest result", zap.Int("size", a.cacheSize))
	}

	return res, nil
}

// AnalyzeAll runs Analyze for every source in order and stops at the first error.
func (a *Analyzer) AnalyzeAll(ctx context.Context, sources []string) ([]*centrality.Result, error) {
	out := make([]*centrality.Result, 0, len(sources))
	for _, src := range sources {
		res, err := a.Analyze(ctx, src)
		if err != nil {
			return out, fmt.Errorf("analysis: source %q: %w", src, err)
		}
		out = append(out, res)
	}

	return out, nil
}

// DefaultSource returns the address with the most incident edges, ties broken
// by address ascending.
func (a *Analyzer) DefaultSource() (string, error) {
	return HighestDegree(a.g)
}

// HighestDegree returns the address of g with the most incident edges, ties
// broken by address ascending.
func HighestDegree(g *core.Graph) (string, error) {
	vertices := g.Vertices()
	if len(vertices) == 0 {
		return "", ErrNoVertices
	}
	sort.Slice(vertices, func(i, j int) bool {
		di, dj := len(vertices[i].IncidentEdges()), len(vertices[j].IncidentEdges())
		if di != dj {
			return di > dj
		}
		return vertices[i].Address() < vertices[j].Address()
	})

	return vertices[0].Address(), nil
}

// CacheStats reports cache hits and misses since creation or the last Purge.
func (a *Analyzer) CacheStats() (hits, misses int64) {
	return a.hits.Load(), a.misses.Load()
}

// Len returns the number of cached results.
func (a *Analyzer) Len() int { return a.cache.Len() }

// Purge drops every cached result and resets the hit counters.
func (a *Analyzer) Purge() {
	a.cache.Purge()
	a.hits.Store(0)
	a.misses.Store(0)
}
