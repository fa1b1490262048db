// Package gasgraph computes gas-weighted shortest paths and a
// betweenness-style centrality over blockchain transaction graphs.
//
// Addresses are vertices, transactions are edges weighted by the gas they
// consumed. A single modified Dijkstra pass from one source address yields,
// for every reachable address, the cheapest gas distance, a shortest-path
// parent and a centrality score counting the shortest paths that end there.
//
// Layout:
//
//	core/        arena Graph, Vertex, Edge and the per-run Traversal state
//	centrality/  the engine: lazy-deletion heap, <= relaxation, accumulation modes
//	ingest/      transaction CSV in, edge CSV out
//	report/      ranking, path reconstruction, tables
//	analysis/    many sources over one graph with an LRU result cache
//	cmd/gasgraph the command-line driver
//
// Quick ASCII example (gas on each edge):
//
//	A ──5── B
//	 \      │
//	  10    3
//	    \   │
//	      C
//
// From A: dist(B)=5, dist(C)=8 through B, and C.centrality = 1.
//
//	go install github.com/katalvlaran/gasgraph/cmd/gasgraph@latest
package gasgraph
