// Package core provides the in-memory transaction Graph used by gasgraph.
//
// The Graph G = (V,E) models a blockchain transaction network:
//
//   - Vertices are addresses, keyed by their address string and stored in an
//     arena addressed by dense VertexID indices.
//   - Edges are transactions carrying a scaled value, the gas used and the gas
//     price, stored in a second arena addressed by EdgeID.
//   - Each Vertex lists its incident EdgeIDs; edges reference endpoints by ID,
//     so there are no pointer cycles between the two types.
//
// Traversal state:
//
//	Algorithms never write to Vertex or Edge. Distance, parent, explored and
//	centrality live in a Traversal (one VertexState per VertexID, one explored
//	flag per EdgeID). A Traversal belongs to one run and can be cloned or
//	reused after Reset.
//
// Graph-level bookkeeping:
//
//	The Graph keeps the finalisation order of the most recent run
//	(ResetDistanceOrdered / PushDistanceOrdered / DistanceOrdered) and a run
//	lock (Exclusive) so that traversals over one graph are serialised.
//
// Ownership:
//
//	AddEdge only accepts endpoints owned by the graph, so every edge's
//	endpoints are vertices of the same graph. AddVertex is idempotent.
//
// Quick example:
//
//	g := core.NewGraph()
//	_, _ = g.AddTransaction("0xa", "0xb", 1.5, 21000, 30)
//	v, _ := g.VertexByAddress("0xa")
//	fmt.Println(len(v.IncidentEdges())) // 1
package core
