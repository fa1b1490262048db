// Package centrality implements a modified Dijkstra that computes gas-weighted
// single-source shortest paths and, in the same pass, accumulates a
// betweenness-style centrality score for every vertex reachable from the source.
//
// Complexity:
//
//   - Time:  O((V + E) log E)
//   - Each vertex is finalised at most once.
//   - Each accepted relaxation pushes one heap entry; ties push too, so up to E pushes.
//   - Space: O(V + E) for the Traversal plus O(E) worst-case heap entries.
//
// Notes on implementation choices:
//
//   - Relaxation accepts candidate <= distance, not <. Every equal-cost
//     predecessor is recorded and contributes its centrality.
//   - "Lazy" decrease-key: relaxed vertices are pushed again and stale entries
//     are skipped on pop because the vertex is already explored.
//   - Per-vertex state lives in a core.Traversal owned by the Result; the graph
//     only records the finalisation order of the most recent run.
//   - Runs over one graph are serialised through core.Graph.Exclusive.
package centrality

import (
	"container/heap"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/gasgraph/core"
)

// Run computes distances, parents and centrality from the configured source.
//
// Preconditions and validation (in order):
//  1. A source must be given (ErrEmptySource).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must contain the source (ErrVertexNotFound).
//
// On success the source has distance 0 and centrality 1.0, every reachable
// vertex is explored, and unreachable vertices keep core.Infinity and 0.
// A candidate whose gas sum would reach core.Infinity is not representable and
// is rejected like any other losing candidate (counted in Stats.Saturated).
// The graph's vertices and edges are never modified.
func Run(g *core.Graph, opts ...Option) (*Result, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Source == "" && cfg.SourceID == core.NoVertex {
		return nil, ErrEmptySource
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	src, err := resolveSource(g, cfg)
	if err != nil {
		return nil, err
	}

	// 2) Prepare per-run state.
	tr := cfg.Traversal
	if tr == nil {
		tr = &core.Traversal{}
	}
	r := &runner{
		g:     g,
		opts:  cfg,
		tr:    tr,
		src:   src,
		pq:    make(vertexPQ, 0, g.VertexCount()),
		order: make([]core.VertexID, 0, g.VertexCount()),
	}

	// 3) Run under the graph's run lock.
	start := time.Now()
	err = g.Exclusive(func() error {
		r.init()
		return r.process()
	})
	elapsed := time.Since(start)
	r.stats.Reached = len(r.order)

	if cfg.Metrics != nil {
		cfg.Metrics.observe(cfg.Mode, r.stats, elapsed, err)
	}
	if err != nil {
		cfg.Logger.Warn("centrality run aborted",
			zap.String("source", g.Address(src)),
			zap.Error(err),
		)
		return nil, err
	}

	cfg.Logger.Debug("centrality run finished",
		zap.String("source", g.Address(src)),
		zap.Stringer("mode", cfg.Mode),
		zap.Int("reached", r.stats.Reached),
		zap.Int("pops", r.stats.Pops),
		zap.Int("stale_pops", r.stats.StalePops),
		zap.Int("relaxations", r.stats.Relaxations),
		zap.Int("saturated", r.stats.Saturated),
		zap.Duration("elapsed", elapsed),
	)

	return &Result{
		Source:    src,
		Mode:      cfg.Mode,
		Traversal: tr,
		Order:     r.order,
		Stats:     r.stats,
		Elapsed:   elapsed,
	}, nil
}

func resolveSource(g *core.Graph, cfg Options) (core.VertexID, error) {
	if cfg.SourceID != core.NoVertex {
		if _, err := g.Vertex(cfg.SourceID); err != nil {
			return core.NoVertex, fmt.Errorf("%w: id %d", ErrVertexNotFound, cfg.SourceID)
		}
		return cfg.SourceID, nil
	}
	id, ok := g.Lookup(cfg.Source)
	if !ok {
		return core.NoVertex, fmt.Errorf("%w: %q", ErrVertexNotFound, cfg.Source)
	}

	return id, nil
}

// runner holds the mutable state for a single execution.
type runner struct {
	g     *core.Graph
	opts  Options
	tr    *core.Traversal
	src   core.VertexID
	pq    vertexPQ
	seq   uint64
	order []core.VertexID
	stats Stats
}

// init resets the graph's order record and every vertex state, then seeds the
// source with distance 0 and centrality 1.0.
func (r *runner) init() {
	r.g.ResetDistanceOrdered()
	r.tr.Reset(r.g)

	s := r.tr.State(r.src)
	s.IncrementCentrality(1.0)
	s.SetDistance(0)

	heap.Init(&r.pq)
	r.push(r.src, 0)
}

func (r *runner) push(id core.VertexID, dist uint64) {
	heap.Push(&r.pq, &queueItem{id: id, dist: dist, seq: r.seq})
	r.seq++
	r.stats.Pushes++
}

// process drains the heap. Each pop either discards a stale entry or finalises
// a vertex and relaxes its incident edges.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*queueItem)
		r.stats.Pops++

		u := r.tr.State(item.id)
		if u.Explored() {
			r.stats.StalePops++
			continue
		}

		// Finalise: distance of item.id is now fixed for this run.
		r.g.PushDistanceOrdered(item.id)
		r.order = append(r.order, item.id)
		u.SetExplored(true)

		if err := r.relax(item.id, u); err != nil {
			return err
		}
	}

	return nil
}

// relax examines every edge incident to uid and accepts each candidate whose
// cost is <= the neighbour's current distance.
func (r *runner) relax(uid core.VertexID, u *core.VertexState) error {
	edges, err := r.g.Incident(uid)
	if err != nil {
		return fmt.Errorf("centrality: incident edges of %d: %w", uid, err)
	}

	for _, eid := range edges {
		e, err := r.g.Edge(eid)
		if err != nil {
			return fmt.Errorf("centrality: %w", err)
		}
		vid, err := e.AdjacentVertex(uid)
		if err != nil {
			return fmt.Errorf("centrality: edge %d from %d: %w", eid, uid, err)
		}
		v := r.tr.State(vid)
		if v == nil {
			return fmt.Errorf("centrality: edge %d: %w", eid, core.ErrVertexNotFound)
		}
		if v.Explored() {
			continue
		}

		// u.distance+gas >= core.Infinity can never improve v. Rejecting it
		// before the addition keeps the sum from wrapping.
		gas := e.Gas()
		if gas >= core.Infinity-u.Distance() {
			r.stats.Saturated++
			continue
		}
		candidate := u.Distance() + gas
		if candidate > v.Distance() {
			continue
		}

		tie := candidate == v.Distance()
		if tie {
			r.stats.Ties++
		} else if r.opts.Mode == ModeShortestPaths {
			v.ClearCentrality()
		}

		v.SetDistance(candidate)
		v.SetParent(uid)
		r.push(vid, candidate)
		r.stats.Relaxations++

		r.accumulate(uid, u, v)
	}

	return nil
}

// accumulate propagates u's centrality into v according to the run's Mode.
func (r *runner) accumulate(uid core.VertexID, u, v *core.VertexState) {
	switch r.opts.Mode {
	case ModeEveryRelaxation:
		v.IncrementCentrality(u.Centrality())
		v.AddCentralityParent(uid)
	default:
		// Parallel edges from one predecessor count once.
		if v.AddCentralityParent(uid) {
			v.IncrementCentrality(u.Centrality())
		}
	}
}
