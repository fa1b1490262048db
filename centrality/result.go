package centrality

import (
	"time"

	"github.com/katalvlaran/gasgraph/core"
)

// Stats counts queue and relaxation work done by one run.
type Stats struct {
	Pushes      int // heap entries pushed, source included
	Pops        int // heap entries popped
	StalePops   int // popped entries whose vertex was already explored
	Relaxations int // accepted relaxations (candidate <= distance)
	Ties        int // accepted relaxations with candidate == distance
	Reached     int // vertices finalised
	Saturated   int // candidates rejected because their gas sum reaches core.Infinity
}

// Result is the outcome of one run.
//
// Traversal holds the per-vertex state; Order lists vertices in finalisation
// order (non-decreasing distance), and equals the graph's DistanceOrdered()
// until another run starts.
type Result struct {
	Source    core.VertexID
	Mode      Mode
	Traversal *core.Traversal
	Order     []core.VertexID
	Stats     Stats
	Elapsed   time.Duration
}

// Distance returns the gas distance of id, core.Infinity when unreachable or unknown.
func (r *Result) Distance(id core.VertexID) uint64 {
	if s := r.Traversal.State(id); s != nil {
		return s.Distance()
	}

	return core.Infinity
}

// Centrality returns the accumulated centrality of id (0 when unknown).
func (r *Result) Centrality(id core.VertexID) float64 {
	if s := r.Traversal.State(id); s != nil {
		return s.Centrality()
	}

	return 0
}

// Parent returns the shortest-path-tree predecessor of id, or core.NoVertex.
func (r *Result) Parent(id core.VertexID) core.VertexID {
	if s := r.Traversal.State(id); s != nil {
		return s.Parent()
	}

	return core.NoVertex
}

// CentralityParents returns the predecessors that contributed to id.
func (r *Result) CentralityParents(id core.VertexID) []core.VertexID {
	if s := r.Traversal.State(id); s != nil {
		return s.CentralityParents()
	}

	return nil
}

// Reachable reports whether id was finalised with a finite distance.
func (r *Result) Reachable(id core.VertexID) bool {
	s := r.Traversal.State(id)

	return s != nil && s.Explored() && s.Reached()
}
