package explore

import "slices"

// State returns the lifecycle state.
func (e *Engine) State() State { return e.state }

// Steps returns the number of resolved candidates so far.
func (e *Engine) Steps() int { return e.steps }

// Position returns the cell the agent currently stands on.
func (e *Engine) Position() int { return e.visited[len(e.visited)-1] }

// Visited returns a copy of the tour so far.
func (e *Engine) Visited() []int { return slices.Clone(e.visited) }

// Detected returns a copy of the discovered obstacle cells, in discovery order.
func (e *Engine) Detected() []int { return slices.Clone(e.detected) }

// IsVisited reports whether the agent has stood on cell v.
func (e *Engine) IsVisited(v int) bool { return v >= 0 && v < len(e.onTour) && e.onTour[v] }

// IsDetected reports whether cell v is a discovered obstacle.
func (e *Engine) IsDetected(v int) bool { return v >= 0 && v < len(e.isDet) && e.isDet[v] }

// Frontier returns, ascending, the cells adjacent to the tour that are
// neither visited nor detected. It is recomputed on every call.
func (e *Engine) Frontier() []int {
	seen := make(map[int]bool)
	var out []int
	for _, v := range e.tour {
		for _, w := range e.graph.Neighbors(v) {
			if e.onTour[w] || e.isDet[w] || seen[w] {
				continue
			}
			seen[w] = true
			out = append(out, w)
		}
	}
	slices.Sort(out)
	return out
}

// Result returns a snapshot of the tour and detections.
func (e *Engine) Result() *Result {
	return &Result{
		Visited:  e.Visited(),
		Detected: e.Detected(),
		Steps:    e.steps,
	}
}
