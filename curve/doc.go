// Package curve maps between positions on a Hilbert curve and cells of the
// square grid the curve fills.
//
// What:
//
//   - Curve is an immutable value describing a Hilbert curve of a given order.
//   - PointOf converts a curve distance d ∈ [0, N) into grid coordinates (x, y).
//   - IndexOf converts grid coordinates back into the curve distance.
//   - The mapping is a bijection: IndexOf(PointOf(d)) == d for every valid d.
//
// Why:
//
//   - Consecutive distances are always 4-neighbours on the grid, so walking the
//     curve in index order gives a traversal with good movement locality.
//   - Callers pass the Curve value explicitly instead of sharing global
//     coordinate tables.
//
// Geometry:
//
//	side = 2^order, N = side², cell (0,0) has distance 0.
//
//	order 1:        order 2 (distances, y grows upwards):
//
//	  1 ─ 2           5 ─ 6   9 ─10
//	  │   │           │   │   │   │
//	  0   3           4   7 ─ 8  11
//	                  │           │
//	                  3 ─ 2  13 ─12
//	                      │   │
//	                  0 ─ 1  14 ─15
//
// Complexity:
//
//   - PointOf / IndexOf: O(order) time, O(1) memory.
//
// Errors:
//
//   - ErrOrder:           order outside [1, MaxOrder].
//   - ErrIndexOutOfRange: distance outside [0, N).
//   - ErrPointOutOfRange: coordinates outside [0, side).
package curve
