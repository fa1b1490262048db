// File: methods_order.go
// Role: Graph-level traversal bookkeeping: the finalisation order of the most
//       recent run and the run lock that serialises traversals.
// Concurrency:
//   - distanceOrdered is guarded by muOrder so readers may poll it at any time.
//   - Exclusive holds muRun for the whole callback; it is not reentrant.

package core

// ResetDistanceOrdered clears the finalisation order. Traversals call it at start.
func (g *Graph) ResetDistanceOrdered() {
	g.muOrder.Lock()
	defer g.muOrder.Unlock()

	g.distanceOrdered = g.distanceOrdered[:0]
}

// PushDistanceOrdered appends id to the finalisation order.
func (g *Graph) PushDistanceOrdered(id VertexID) {
	g.muOrder.Lock()
	defer g.muOrder.Unlock()

	g.distanceOrdered = append(g.distanceOrdered, id)
}

// DistanceOrdered returns a copy of the vertices in the order the most recent
// run finalised them (non-decreasing distance).
func (g *Graph) DistanceOrdered() []VertexID {
	g.muOrder.Lock()
	defer g.muOrder.Unlock()

	out := make([]VertexID, len(g.distanceOrdered))
	copy(out, g.distanceOrdered)

	return out
}

// Exclusive runs fn while holding the graph's run lock and returns its error.
// Two traversals over one graph never interleave their writes to the
// finalisation order when both go through Exclusive.
func (g *Graph) Exclusive(fn func() error) error {
	g.muRun.Lock()
	defer g.muRun.Unlock()

	return fn()
}

// Stats is a read-only snapshot of graph sizes.
type Stats struct {
	Directed    bool
	VertexCount int
	EdgeCount   int
	SelfLoops   int
	Isolated    int // vertices without any incident edge
}

// Stats scans the arenas once and returns a snapshot. Complexity: O(V+E).
func (g *Graph) Stats() Stats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	s := Stats{
		Directed:    g.directed,
		VertexCount: len(g.vertices),
		EdgeCount:   len(g.edges),
	}
	for _, e := range g.edges {
		if e.source == e.destination {
			s.SelfLoops++
		}
	}
	// A vertex is isolated when it neither sends nor receives; in directed
	// graphs a pure receiver has no incident edges but is not isolated.
	touched := make([]bool, len(g.vertices))
	for _, e := range g.edges {
		touched[e.source] = true
		touched[e.destination] = true
	}
	for _, t := range touched {
		if !t {
			s.Isolated++
		}
	}

	return s
}
