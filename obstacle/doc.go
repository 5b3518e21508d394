// Package obstacle holds the ground truth of which grid cells are blocked.
//
// What:
//
//   - Field is the fixed set of blocked curve indices for one run. It is built
//     once from grid coordinates (FromPoints) or from square rectangles
//     (FromRects), always through the same *curve.Curve used by the rest of
//     the simulation.
//   - Rectangles placed by FromRects are kept in an R-tree so a detected cell
//     can be traced back to the obstacle(s) covering it.
//   - Generate places random square obstacles until a coverage ratio is met.
//
// Why:
//
//   - The explorer must not see the field directly; it only asks Blocked(i)
//     when it reaches cell i, which makes discovery lazy.
//
// Generation rules:
//
//   - Each attempt picks a uniform root (x, y) in [0, side) and a uniform size
//     in [MinSize, MaxSize]; placements leaving the grid are rejected.
//   - Placements covering an excluded cell (always the curve start) are rejected.
//   - Generation stops once int(CoverageRatio·N) distinct cells are covered.
//   - The same Seed yields the same rectangles.
//
// Complexity:
//
//   - FromPoints:  O(P·order) for P points.
//   - FromRects:   O(Σ size²·order + R log R).
//   - Blocked:     O(1).
//   - RectsAt:     O(log R) average R-tree search.
//
// Errors:
//
//   - ErrNilCurve:            a nil curve was supplied.
//   - ErrPointOutOfRange:     a coordinate lies outside the grid.
//   - ErrRect:                a rectangle is empty or leaves the grid.
//   - ErrGenOption:           invalid generation options.
//   - ErrCoverageUnreachable: the generator stopped making progress.
package obstacle
