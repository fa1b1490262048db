// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns vertices in arena (insertion) order.
//   - Addresses() returns addresses sorted lexicographically ascending.
//
// Concurrency:
//   - Arena and address index protected by mu.

package core

import (
	"fmt"
	"sort"
)

// AddVertex inserts a vertex for address if missing and returns its ID.
//
// Behavior highlights:
//   - Idempotent: adding an existing address returns the existing ID and nil.
//   - IDs are dense and assigned in insertion order.
//
// Errors:
//   - ErrEmptyAddress: if address == "".
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(address string) (VertexID, error) {
	if address == "" {
		return NoVertex, ErrEmptyAddress
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	return g.addVertexLocked(address), nil
}

// addVertexLocked requires g.mu held for writing.
func (g *Graph) addVertexLocked(address string) VertexID {
	if id, ok := g.index[address]; ok {
		return id
	}
	id := VertexID(len(g.vertices))
	g.vertices = append(g.vertices, &Vertex{id: id, address: address})
	g.index[address] = id

	return id
}

// Lookup returns the ID registered for address.
func (g *Graph) Lookup(address string) (VertexID, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	id, ok := g.index[address]

	return id, ok
}

// HasVertex reports whether address is a vertex of g.
func (g *Graph) HasVertex(address string) bool {
	_, ok := g.Lookup(address)

	return ok
}

// Vertex returns the vertex with the given ID.
// Errors: ErrVertexNotFound when id is not owned by g.
func (g *Graph) Vertex(id VertexID) (*Vertex, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.ownsVertexLocked(id) {
		return nil, fmt.Errorf("%w: id %d", ErrVertexNotFound, id)
	}

	return g.vertices[id], nil
}

// VertexByAddress returns the vertex registered for address.
// Errors: ErrVertexNotFound when the address is unknown.
func (g *Graph) VertexByAddress(address string) (*Vertex, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	id, ok := g.index[address]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, address)
	}

	return g.vertices[id], nil
}

// Address is a shorthand for the address of id; it returns "" for foreign IDs.
func (g *Graph) Address(id VertexID) string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.ownsVertexLocked(id) {
		return ""
	}

	return g.vertices[id].address
}

// Vertices returns every vertex in insertion order.
// The slice is fresh; the *Vertex values are shared and read-only.
// Complexity: O(V).
func (g *Graph) Vertices() []*Vertex {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]*Vertex, len(g.vertices))
	copy(out, g.vertices)

	return out
}

// Addresses returns all vertex addresses sorted ascending.
// Complexity: O(V log V).
func (g *Graph) Addresses() []string {
	g.mu.RLock()
	out := make([]string, 0, len(g.vertices))
	for _, v := range g.vertices {
		out = append(out, v.address)
	}
	g.mu.RUnlock()

	sort.Strings(out)

	return out
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// Degree returns the number of edges incident to id as registered for traversal.
// Errors: ErrVertexNotFound when id is not owned by g.
func (g *Graph) Degree(id VertexID) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.ownsVertexLocked(id) {
		return 0, fmt.Errorf("%w: id %d", ErrVertexNotFound, id)
	}

	return len(g.vertices[id].incident), nil
}

// Incident returns the incident edge list of id without copying.
// Callers must treat the result as read-only; it is the hot path for traversals.
func (g *Graph) Incident(id VertexID) ([]EdgeID, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.ownsVertexLocked(id) {
		return nil, fmt.Errorf("%w: id %d", ErrVertexNotFound, id)
	}

	return g.vertices[id].incident, nil
}

func (g *Graph) ownsVertexLocked(id VertexID) bool {
	return id >= 0 && int(id) < len(g.vertices)
}
