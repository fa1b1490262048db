// Package centrality provides the shortest-path / centrality engine for
// gasgraph transaction networks.
//
// Overview:
//
//   - Run computes, for one source vertex, the minimum total gas cost to every
//     reachable vertex, the shortest-path-tree parent of each vertex, and a
//     centrality accumulator propagated along every accepted relaxation.
//   - Edges are traversed from whichever endpoint is being expanded
//     (core.Edge.AdjacentVertex), unless the graph registers edges with their
//     source only (core.WithDirected(true)).
//
// Algorithm:
//
//  1. Reset the graph's finalisation order and the Traversal. Seed the source
//     with distance 0, centrality 1.0 and push it.
//  2. Pop entries until an unexplored vertex U appears (the rest are stale).
//     Append U to the finalisation order and mark it explored.
//  3. For each incident edge, let V be the other endpoint. Skip explored V.
//     If U.distance + gas <= V.distance: set V.distance and V.parent = U,
//     push V (a duplicate entry when V is already queued), and accumulate
//     U.centrality into V (see Mode).
//  4. Stop when the heap is empty.
//
// Queue ordering: distance ascending, ties by push order, so runs on the same
// graph are reproducible.
//
// Accumulation:
//
//	centrality(source) = 1
//	centrality(v)      = Σ centrality(u) for u in parents(v)
//
//	which counts shortest paths from the source to v in ModeShortestPaths
//	(for positive gas). The scores are not normalised across sources.
//
// Example usage:
//
//	res, err := centrality.Run(g, centrality.Source("0xabc"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	id, _ := g.Lookup("0xdef")
//	fmt.Println(res.Distance(id), res.Centrality(id))
package centrality
