// SPDX-License-Identifier: MIT
//
// Package core defines the transaction Graph, its Vertex and Edge types,
// and the per-run Traversal state that algorithms mutate.
//
// This file declares VertexID, EdgeID, Vertex, Edge, Graph, GraphOption,
// sentinel errors, and the NewGraph constructor.
//
// Errors:
//
//	ErrEmptyAddress   - vertex address is the empty string.
//	ErrVertexNotFound - requested vertex does not exist in this graph.
//	ErrEdgeNotFound   - requested edge does not exist in this graph.
//	ErrNotEndpoint    - adjacency query with a vertex that is not an endpoint.
//	ErrBadValue       - negative or NaN transaction value.
package core

import (
	"errors"
	"math"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyAddress indicates that a vertex address was empty.
	ErrEmptyAddress = errors.New("core: vertex address is empty")

	// ErrVertexNotFound indicates an operation referenced a vertex not owned by the graph.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced an edge not owned by the graph.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrNotEndpoint indicates AdjacentVertex was called with a vertex that is
	// neither the source nor the destination of the edge.
	ErrNotEndpoint = errors.New("core: vertex is not an endpoint of edge")

	// ErrBadValue indicates a negative or NaN transaction value.
	ErrBadValue = errors.New("core: transaction value must be a non-negative number")
)

// Infinity is the distance sentinel for vertices not (yet) reached in a run.
const Infinity uint64 = math.MaxUint64

// VertexID is the stable arena index of a Vertex inside its Graph.
type VertexID int

// NoVertex marks an absent vertex reference (for example, a missing parent).
const NoVertex VertexID = -1

// EdgeID is the stable arena index of an Edge inside its Graph.
type EdgeID int

// Vertex represents one blockchain address in the transaction network.
//
// A Vertex owns the list of edges incident to it. The list is filled while the
// graph is built and is read-only afterwards; per-run state lives in Traversal.
type Vertex struct {
	id       VertexID
	address  string
	incident []EdgeID
}

// ID returns the arena index of the vertex.
func (v *Vertex) ID() VertexID { return v.id }

// Address returns the address that identifies the vertex.
func (v *Vertex) Address() string { return v.address }

// IncidentEdges returns a copy of the edges registered with this vertex.
// Complexity: O(deg(v)).
func (v *Vertex) IncidentEdges() []EdgeID {
	out := make([]EdgeID, len(v.incident))
	copy(out, v.incident)

	return out
}

// Edge represents one transaction from Source to Destination.
//
// Every field is fixed at construction. Value is stored in the scaled unit the
// ingestion layer chose (trillions of wei by default); Gas is the shortest-path
// weight; GasPrice is informational only.
type Edge struct {
	id          EdgeID
	source      VertexID
	destination VertexID
	value       float64
	gas         uint64
	gasPrice    uint64
}

// ID returns the arena index of the edge.
func (e *Edge) ID() EdgeID { return e.id }

// Source returns the sending vertex.
func (e *Edge) Source() VertexID { return e.source }

// Destination returns the receiving vertex.
func (e *Edge) Destination() VertexID { return e.destination }

// Value returns the scaled value exchanged in the transaction.
func (e *Edge) Value() float64 { return e.value }

// Gas returns the gas used by the transaction.
func (e *Edge) Gas() uint64 { return e.gas }

// GasPrice returns the gas price at the time of the transaction.
func (e *Edge) GasPrice() uint64 { return e.gasPrice }

// AdjacentVertex returns the endpoint opposite to start.
//
// Direction is ignored: from the source it yields the destination and from the
// destination it yields the source. For a self-loop both are the same vertex.
// Any other start returns ErrNotEndpoint.
func (e *Edge) AdjacentVertex(start VertexID) (VertexID, error) {
	switch start {
	case e.source:
		return e.destination, nil
	case e.destination:
		return e.source, nil
	default:
		return NoVertex, ErrNotEndpoint
	}
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected controls how edges are registered as incident.
// With directed=true an edge is only reachable from its source; the default
// (false) registers it with both endpoints.
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithCapacity preallocates the vertex and edge arenas.
func WithCapacity(vertices, edges int) GraphOption {
	return func(g *Graph) {
		if vertices > 0 {
			g.vertices = make([]*Vertex, 0, vertices)
			g.index = make(map[string]VertexID, vertices)
		}
		if edges > 0 {
			g.edges = make([]*Edge, 0, edges)
		}
	}
}

// Graph is an adjacency-list container over two arenas (vertices, edges)
// addressed by stable integer indices.
//
// mu guards the arenas and the address index; muOrder guards the finalisation
// order written by traversals; muRun serialises traversals (see Exclusive).
type Graph struct {
	mu      sync.RWMutex
	muOrder sync.Mutex
	muRun   sync.Mutex

	directed bool

	vertices []*Vertex           // VertexID → Vertex
	edges    []*Edge             // EdgeID → Edge
	index    map[string]VertexID // address → VertexID

	// distanceOrdered holds vertices in the order the most recent run finalised them.
	distanceOrdered []VertexID
}

// NewGraph creates an empty Graph. By default edges are traversable from
// either endpoint.
// Complexity: O(1).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		index: make(map[string]VertexID),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Directed reports whether edges are registered with their source only.
func (g *Graph) Directed() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.directed
}
