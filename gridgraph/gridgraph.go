// Package gridgraph provides the static adjacency of a square grid addressed
// by Hilbert curve index. It supports:
//
//   - Four-connectivity (N, E, S, W) with border cells having fewer neighbours
//   - Edge enumeration and membership queries
//   - Reachability of open cells and the blocked boundary around a region
package gridgraph

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/curvewalk/curve"
)

// Build constructs the GridGraph for every cell of c.
// Each undirected edge is considered exactly once (east and north steps only),
// and every neighbour list is sorted so that traversals are deterministic.
// Returns ErrNilCurve if c is nil.
// Algorithmic complexity: O(N·order) time for the curve lookups, O(N) memory.
func Build(c *curve.Curve) (*GridGraph, error) {
	if c == nil {
		return nil, ErrNilCurve
	}
	n := c.Len()
	gg := &GridGraph{
		curve: c,
		side:  c.Side(),
		n:     n,
		adj:   make([][]int, n),
	}
	for i := 0; i < n; i++ {
		p := c.MustPointOf(i)
		for _, d := range forwardOffsets {
			nx, ny := p.X+d[0], p.Y+d[1]
			if !gg.InBounds(nx, ny) {
				continue
			}
			j, err := c.IndexOf(nx, ny)
			if err != nil {
				return nil, fmt.Errorf("gridgraph: neighbour of %d: %w", i, err)
			}
			gg.adj[i] = append(gg.adj[i], j)
			gg.adj[j] = append(gg.adj[j], i)
			gg.edges++
		}
	}
	for i := range gg.adj {
		slices.Sort(gg.adj[i])
	}

	return gg, nil
}

// Curve returns the curve the graph was built from.
func (gg *GridGraph) Curve() *curve.Curve { return gg.curve }

// Side returns the grid side length.
func (gg *GridGraph) Side() int { return gg.side }

// Len returns the number of vertices N.
func (gg *GridGraph) Len() int { return gg.n }

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.side && y >= 0 && y < gg.side
}

// HasVertex reports whether i is a cell of the grid.
func (gg *GridGraph) HasVertex(i int) bool {
	return i >= 0 && i < gg.n
}

// Neighbors returns the 2 to 4 neighbours of cell i in ascending order,
// or nil when i is not a cell. The slice is shared; callers must not modify it.
// Complexity: O(1).
func (gg *GridGraph) Neighbors(i int) []int {
	if !gg.HasVertex(i) {
		return nil
	}

	return gg.adj[i]
}

// HasEdge reports whether i and j are 4-neighbours.
func (gg *GridGraph) HasEdge(i, j int) bool {
	return slices.Contains(gg.Neighbors(i), j)
}

// EdgeCount returns the number of undirected edges, 2·side·(side-1).
func (gg *GridGraph) EdgeCount() int { return gg.edges }

// Edges returns every undirected edge once as {lo, hi}, sorted.
// Complexity: O(E) time and memory.
func (gg *GridGraph) Edges() [][2]int {
	out := make([][2]int, 0, gg.edges)
	for i, nbrs := range gg.adj {
		for _, j := range nbrs {
			if i < j {
				out = append(out, [2]int{i, j})
			}
		}
	}

	return out
}

// checkVertex wraps ErrVertexOutOfRange for an invalid cell.
func (gg *GridGraph) checkVertex(i int) error {
	if !gg.HasVertex(i) {
		return fmt.Errorf("%w: %d (want 0..%d)", ErrVertexOutOfRange, i, gg.n-1)
	}
	return nil
}
