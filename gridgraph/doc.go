// Package gridgraph treats the square grid filled by a Hilbert curve as a
// graph whose vertices are curve indices.
//
// What:
//
//   - GridGraph holds the 4-neighbourhood of all N = side² cells, built once
//     from a *curve.Curve and immutable afterwards.
//   - Neighbors(i) returns only real in-bounds neighbours, sorted ascending;
//     border cells simply have fewer of them (no sentinel values).
//   - Reachable and ConnectedComponents find open regions around blocked cells.
//   - Boundary lists the blocked cells touching a region.
//   - GridGraph satisfies bfs.Adjacency, so any bfs option applies directly.
//
// Why:
//
//   - Exploration needs constant-time neighbour lookups keyed by curve index.
//   - Reachability gives the ground truth to compare an online tour against.
//
// Complexity:
//
//   - Build:               O(N·order) time, O(N) memory (each edge visited once).
//   - Neighbors / HasEdge: O(1).
//   - Reachable:           O(N) time, O(N) memory.
//   - ConnectedComponents: O(N) time, O(N) memory.
//
// Errors:
//
//   - ErrNilCurve:         Build called with a nil curve.
//   - ErrVertexOutOfRange: a cell index outside [0, N).
package gridgraph
