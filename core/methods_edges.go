// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/AddTransaction/Edge/Edges/EdgeCount,
//       plus the field-delimited text form used for export.
// Determinism:
//   - Edges() returns edges in arena (insertion) order.
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.

package core

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// AddEdge records a transaction from src to dst.
//
// Steps:
//  1. Validate value (ErrBadValue).
//  2. Lock mu; check both endpoints are owned by g (ErrVertexNotFound).
//  3. Append the Edge to the arena.
//  4. Register it with src, and with dst unless the graph is directed or src == dst.
//
// Parallel edges and self-loops are accepted: each row of a transaction log is
// its own edge.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(src, dst VertexID, value float64, gas, gasPrice uint64) (EdgeID, error) {
	if value < 0 || math.IsNaN(value) {
		return -1, fmt.Errorf("%w: %v", ErrBadValue, value)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.ownsVertexLocked(src) {
		return -1, fmt.Errorf("%w: source id %d", ErrVertexNotFound, src)
	}
	if !g.ownsVertexLocked(dst) {
		return -1, fmt.Errorf("%w: destination id %d", ErrVertexNotFound, dst)
	}

	return g.addEdgeLocked(src, dst, value, gas, gasPrice), nil
}

// AddTransaction ensures both addresses exist as vertices, then adds the edge.
//
// Errors:
//   - ErrEmptyAddress if either address is empty.
//   - ErrBadValue for negative or NaN value.
func (g *Graph) AddTransaction(from, to string, value float64, gas, gasPrice uint64) (EdgeID, error) {
	if from == "" || to == "" {
		return -1, ErrEmptyAddress
	}
	if value < 0 || math.IsNaN(value) {
		return -1, fmt.Errorf("%w: %v", ErrBadValue, value)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	src := g.addVertexLocked(from)
	dst := g.addVertexLocked(to)

	return g.addEdgeLocked(src, dst, value, gas, gasPrice), nil
}

// addEdgeLocked requires g.mu held for writing and both endpoints validated.
func (g *Graph) addEdgeLocked(src, dst VertexID, value float64, gas, gasPrice uint64) EdgeID {
	id := EdgeID(len(g.edges))
	g.edges = append(g.edges, &Edge{
		id:          id,
		source:      src,
		destination: dst,
		value:       value,
		gas:         gas,
		gasPrice:    gasPrice,
	})

	g.vertices[src].incident = append(g.vertices[src].incident, id)
	if !g.directed && src != dst {
		g.vertices[dst].incident = append(g.vertices[dst].incident, id)
	}

	return id
}

// Edge returns the edge with the given ID.
// Errors: ErrEdgeNotFound when id is not owned by g.
func (g *Graph) Edge(id EdgeID) (*Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if id < 0 || int(id) >= len(g.edges) {
		return nil, fmt.Errorf("%w: id %d", ErrEdgeNotFound, id)
	}

	return g.edges[id], nil
}

// Edges returns every edge in insertion order. Complexity: O(E).
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]*Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// EdgeRecord returns the fields of edge id as text:
// source address, destination address, value, gas, gas price.
func (g *Graph) EdgeRecord(id EdgeID) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if id < 0 || int(id) >= len(g.edges) {
		return nil, fmt.Errorf("%w: id %d", ErrEdgeNotFound, id)
	}
	e := g.edges[id]

	return []string{
		g.vertices[e.source].address,
		g.vertices[e.destination].address,
		strconv.FormatFloat(e.value, 'g', -1, 64),
		strconv.FormatUint(e.gas, 10),
		strconv.FormatUint(e.gasPrice, 10),
	}, nil
}

// FormatEdge renders edge id as one comma-separated line (no trailing newline).
func (g *Graph) FormatEdge(id EdgeID) (string, error) {
	rec, err := g.EdgeRecord(id)
	if err != nil {
		return "", err
	}

	return strings.Join(rec, ","), nil
}
