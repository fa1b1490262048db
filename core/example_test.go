package core_test

import (
	"fmt"

	"github.com/katalvlaran/gasgraph/core"
)

// ExampleGraph_AddTransaction builds a two-address network and inspects it.
func ExampleGraph_AddTransaction() {
	g := core.NewGraph()
	_, _ = g.AddTransaction("0xa", "0xb", 1.5, 21000, 30)
	_, _ = g.AddTransaction("0xb", "0xa", 0.25, 50000, 31)

	a, _ := g.VertexByAddress("0xa")
	line, _ := g.FormatEdge(0)

	fmt.Println(g.VertexCount(), g.EdgeCount(), len(a.IncidentEdges()))
	fmt.Println(line)
	// Output:
	// 2 2 2
	// 0xa,0xb,1.5,21000,30
}
