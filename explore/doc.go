// Package explore implements an online, curve-ordered exploration of a grid
// with obstacles that are discovered only on contact.
//
// What
//
//	The agent starts on StartCell (curve index 0). Its state is the tour
//	(visited cells in order) and the set of detected obstacle cells. Each Step:
//
//	  1. frontier = neighbours of visited cells − visited − detected;
//	     an empty frontier ends exploration (Done).
//	  2. candidate = min(frontier), biasing progress along the curve.
//	  3. Fast path, candidate == last+1: a single hop. A blocked candidate is
//	     detected; an open one is appended to the tour.
//	  4. Detour path, otherwise: a BFS shortest path from the current cell to
//	     the candidate inside the subgraph induced by visited ∪ {candidate}.
//	     The agent walks it; if the candidate is blocked it stops on the last
//	     cell before it and the candidate is detected.
//
//	The tour never steps onto a cell whose status is unknown, and a cell's
//	blocked status is revealed exactly when it becomes the candidate.
//
// Guarantees
//
//   - visited and detected are append-only and disjoint.
//   - Each step moves exactly one new cell into visited or detected, so
//     exploration ends after at most N steps.
//   - At Done, the distinct visited cells are exactly the open cells
//     reachable from StartCell and detected is exactly the obstacle layer
//     bordering them.
//
// Hooks and limits
//
//   - WithOnStep receives a Step snapshot after every step; use it to animate
//     the tour without re-running the engine.
//   - WithMaxSteps sets a safety budget (default N); exceeding it returns
//     ErrStepBudget.
//   - WithContext allows cancellation between steps.
//   - WithLogger records detours and detections at debug level.
//
// Errors
//
//   - ErrNilGraph, ErrNilField, ErrOptionViolation, ErrStartBlocked from New.
//   - ErrGraphInvariant (with a stack trace) when the graph contradicts the
//     exploration state: a missing edge between consecutive curve cells, or a
//     detour with no path. It is never retried.
//   - ErrStepBudget, context errors, and wrapped OnStep errors from Run.
package explore
