package gridgraph

import (
	"slices"

	"github.com/katalvlaran/curvewalk/bfs"
)

// Reachable returns, in ascending order, every cell reachable from start
// without entering a cell for which blocked returns true. A nil blocked
// treats every cell as open. The start cell itself is always included.
//
// Time:   O(N) worst case.
// Memory: O(N) for the BFS state.
func (gg *GridGraph) Reachable(start int, blocked func(int) bool) ([]int, error) {
	if err := gg.checkVertex(start); err != nil {
		return nil, err
	}
	if blocked == nil {
		blocked = func(int) bool { return false }
	}
	res, err := bfs.BFS(gg, start, bfs.WithFilterNeighbor(func(_, nbr int) bool {
		return !blocked(nbr)
	}))
	if err != nil {
		return nil, err
	}
	out := slices.Clone(res.Order)
	slices.Sort(out)

	return out, nil
}

// ConnectedComponents finds all contiguous regions of open cells (blocked
// returns false), each sorted ascending; components are ordered by their
// smallest cell.
//
// Time:   O(N).
// Memory: O(N) for seen flags and output.
func (gg *GridGraph) ConnectedComponents(blocked func(int) bool) [][]int {
	if blocked == nil {
		blocked = func(int) bool { return false }
	}
	seen := make([]bool, gg.n)
	var comps [][]int

	for i0 := 0; i0 < gg.n; i0++ {
		if seen[i0] || blocked(i0) {
			continue
		}
		// BFS to collect component
		queue := []int{i0}
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			for _, v := range gg.adj[queue[qi]] {
				if !seen[v] && !blocked(v) {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}
		slices.Sort(queue)
		comps = append(comps, queue)
	}

	return comps
}

// Boundary returns, in ascending order, the blocked cells that share an edge
// with at least one cell of region. Region cells themselves are never reported.
// Complexity: O(|region|).
func (gg *GridGraph) Boundary(region []int, blocked func(int) bool) []int {
	if blocked == nil {
		return nil
	}
	in := make(map[int]bool, len(region))
	for _, v := range region {
		in[v] = true
	}
	seen := make(map[int]bool)
	var out []int
	for _, v := range region {
		for _, w := range gg.Neighbors(v) {
			if in[w] || seen[w] || !blocked(w) {
				continue
			}
			seen[w] = true
			out = append(out, w)
		}
	}
	slices.Sort(out)

	return out
}
