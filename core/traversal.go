// SPDX-License-Identifier: MIT
//
// File: traversal.go
// Role: Per-run traversal state. A Traversal maps every VertexID to a
//       VertexState and every EdgeID to an explored flag, so a Graph can be
//       analysed from many sources without the runs sharing mutable state.
// Determinism:
//   - CentralityParents() returns parents sorted by VertexID ascending.
// Concurrency:
//   - A Traversal is owned by one run; it is not safe for concurrent mutation.
//     Clone() gives an independent copy.

package core

import "sort"

// VertexState is the traversal-scoped state of one vertex.
//
// Invariants for a run:
//   - Explored() == true implies Distance() is final.
//   - Distance() only decreases while the vertex is unexplored.
type VertexState struct {
	distance          uint64
	explored          bool
	parent            VertexID
	centrality        float64
	centralityParents map[VertexID]struct{}
}

// Reset restores the initial state: infinite distance, unexplored, no parent,
// zero centrality and an empty parent set.
func (s *VertexState) Reset() {
	s.distance = Infinity
	s.explored = false
	s.parent = NoVertex
	s.centrality = 0
	if s.centralityParents != nil {
		clear(s.centralityParents)
	}
}

// Distance returns the best known gas cost from the source.
func (s *VertexState) Distance() uint64 { return s.distance }

// SetDistance sets the best known gas cost from the source.
func (s *VertexState) SetDistance(d uint64) { s.distance = d }

// Reached reports whether the vertex has a finite distance.
func (s *VertexState) Reached() bool { return s.distance != Infinity }

// Parent returns the shortest-path-tree predecessor, or NoVertex.
func (s *VertexState) Parent() VertexID { return s.parent }

// HasParent reports whether a predecessor is recorded.
func (s *VertexState) HasParent() bool { return s.parent != NoVertex }

// SetParent records the shortest-path-tree predecessor.
func (s *VertexState) SetParent(p VertexID) { s.parent = p }

// Explored reports whether the vertex was finalised in this run.
func (s *VertexState) Explored() bool { return s.explored }

// SetExplored sets the finalisation flag.
func (s *VertexState) SetExplored(explored bool) { s.explored = explored }

// IncrementCentrality adds delta to the centrality accumulator.
func (s *VertexState) IncrementCentrality(delta float64) { s.centrality += delta }

// Centrality returns the centrality accumulator.
func (s *VertexState) Centrality() float64 { return s.centrality }

// ClearCentrality zeroes the accumulator and empties the parent set.
func (s *VertexState) ClearCentrality() {
	s.centrality = 0
	if s.centralityParents != nil {
		clear(s.centralityParents)
	}
}

// AddCentralityParent records p as a contributor. It reports whether p was new;
// adding the same parent twice is a no-op.
func (s *VertexState) AddCentralityParent(p VertexID) bool {
	if s.centralityParents == nil {
		s.centralityParents = make(map[VertexID]struct{}, 1)
	}
	if _, ok := s.centralityParents[p]; ok {
		return false
	}
	s.centralityParents[p] = struct{}{}

	return true
}

// HasCentralityParent reports whether p contributed to this vertex.
func (s *VertexState) HasCentralityParent(p VertexID) bool {
	_, ok := s.centralityParents[p]

	return ok
}

// CentralityParents returns the contributors sorted ascending.
func (s *VertexState) CentralityParents() []VertexID {
	out := make([]VertexID, 0, len(s.centralityParents))
	for p := range s.centralityParents {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// Traversal is the per-run context: one VertexState per vertex and one
// explored flag per edge of the graph it was sized for.
type Traversal struct {
	states       []VertexState
	edgeExplored []bool
}

// NewTraversal allocates a reset Traversal sized for g.
// Complexity: O(V+E).
func NewTraversal(g *Graph) *Traversal {
	t := &Traversal{}
	t.Reset(g)

	return t
}

// Reset resizes the Traversal to g's current vertex and edge counts and resets
// every state. Existing allocations are reused.
func (t *Traversal) Reset(g *Graph) {
	g.mu.RLock()
	nv, ne := len(g.vertices), len(g.edges)
	g.mu.RUnlock()

	if cap(t.states) >= nv {
		t.states = t.states[:nv]
	} else {
		t.states = make([]VertexState, nv)
	}
	for i := range t.states {
		t.states[i].Reset()
	}

	if cap(t.edgeExplored) >= ne {
		t.edgeExplored = t.edgeExplored[:ne]
		clear(t.edgeExplored)
	} else {
		t.edgeExplored = make([]bool, ne)
	}
}

// Len returns the number of vertex states.
func (t *Traversal) Len() int { return len(t.states) }

// State returns the state of id, or nil if id is outside the Traversal.
func (t *Traversal) State(id VertexID) *VertexState {
	if id < 0 || int(id) >= len(t.states) {
		return nil
	}

	return &t.states[id]
}

// EdgeExplored reports the explored flag of edge e (false when out of range).
func (t *Traversal) EdgeExplored(e EdgeID) bool {
	if e < 0 || int(e) >= len(t.edgeExplored) {
		return false
	}

	return t.edgeExplored[e]
}

// SetEdgeExplored sets the explored flag of edge e.
// Errors: ErrEdgeNotFound when e is outside the Traversal.
func (t *Traversal) SetEdgeExplored(e EdgeID, explored bool) error {
	if e < 0 || int(e) >= len(t.edgeExplored) {
		return ErrEdgeNotFound
	}
	t.edgeExplored[e] = explored

	return nil
}

// Clone returns a deep copy; parent sets are not shared with the receiver.
// Complexity: O(V+E).
func (t *Traversal) Clone() *Traversal {
	c := &Traversal{
		states:       make([]VertexState, len(t.states)),
		edgeExplored: make([]bool, len(t.edgeExplored)),
	}
	copy(c.edgeExplored, t.edgeExplored)
	for i, s := range t.states {
		c.states[i] = s
		if len(s.centralityParents) > 0 {
			m := make(map[VertexID]struct{}, len(s.centralityParents))
			for p := range s.centralityParents {
				m[p] = struct{}{}
			}
			c.states[i].centralityParents = m
		} else {
			c.states[i].centralityParents = nil
		}
	}

	return c
}
