// Package frontier restricts a graph to a chosen vertex set and finds
// shortest paths that never leave it.
//
// What:
//
//   - Induced(g, vertices) returns a fresh Subgraph holding exactly the given
//     vertices and every edge of g whose endpoints are both kept.
//   - ShortestPath(sub, source, target) runs BFS inside the subgraph and
//     returns one shortest vertex sequence, source and target included.
//
// Why:
//
//   - An explorer may only move through cells it has already confirmed open.
//     Restricting the search to the visited set plus the next target keeps
//     detours out of unexplored territory.
//
// Determinism:
//
//	Subgraph neighbour lists keep the ascending order of the parent graph, so
//	among several shortest paths the one preferring smaller indices first
//	(BFS discovery order) is always returned.
//
// Complexity (k = number of kept vertices):
//
//   - Induced:      O(k·d) time and memory, d ≤ degree of the parent graph.
//   - ShortestPath: O(k·d).
//
// Errors:
//
//   - ErrGraphNil:        Induced called with a nil graph or ShortestPath with a nil subgraph.
//   - ErrVertexNotFound:  a vertex absent from the parent graph or the subgraph.
//   - ErrNoPath:          source and target lie in different components of the subgraph.
package frontier
