// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for gasgraph/core.
//
// Purpose:
//   - Provide small, deterministic fixtures for core.Graph.
//   - Keep magic numbers out of test bodies.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gasgraph/core"
)

// Common addresses used across core tests.
const (
	AddrA = "0xaaaa"
	AddrB = "0xbbbb"
	AddrC = "0xcccc"
	AddrD = "0xdddd"
	AddrE = "0xeeee"
)

// Common gas and price values used across core tests.
const (
	Gas3    = 3
	Gas5    = 5
	Gas10   = 10
	Price30 = 30
	Value1  = 1.0
	Value2  = 2.5
)

// NewTriangle builds A→B(5), B→C(3), A→C(10) and returns the graph with the
// vertex IDs in address order.
func NewTriangle(t *testing.T, opts ...core.GraphOption) (*core.Graph, core.VertexID, core.VertexID, core.VertexID) {
	t.Helper()

	g := core.NewGraph(opts...)
	a := MustVertex(t, g, AddrA)
	b := MustVertex(t, g, AddrB)
	c := MustVertex(t, g, AddrC)
	MustEdge(t, g, a, b, Gas5)
	MustEdge(t, g, b, c, Gas3)
	MustEdge(t, g, a, c, Gas10)

	return g, a, b, c
}

// MustVertex adds address to g and fails the test on error.
func MustVertex(t *testing.T, g *core.Graph, address string) core.VertexID {
	t.Helper()

	id, err := g.AddVertex(address)
	require.NoError(t, err)

	return id
}

// MustEdge adds a unit-value edge with the given gas and fails the test on error.
func MustEdge(t *testing.T, g *core.Graph, src, dst core.VertexID, gas uint64) core.EdgeID {
	t.Helper()

	id, err := g.AddEdge(src, dst, Value1, gas, Price30)
	require.NoError(t, err)

	return id
}
