// File: subgraph.go
// Role: Non-mutating induced views of a parent graph.
// Determinism:
//   - Neighbour lists keep the parent's order; Vertices() is ascending.

package frontier

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/curvewalk/bfs"
)

// Induced returns a new Subgraph induced by vertices: it contains exactly
// those vertices and all edges of g whose endpoints are both in the set.
// Duplicate entries are ignored. The parent graph is not mutated.
//
// Returns ErrGraphNil for a nil g and ErrVertexNotFound for a vertex g lacks.
// Complexity: O(k·d).
func Induced(g bfs.Adjacency, vertices []int) (*Subgraph, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	sub := &Subgraph{adj: make(map[int][]int, len(vertices))}
	for _, v := range vertices {
		if !g.HasVertex(v) {
			return nil, fmt.Errorf("%w: %d", ErrVertexNotFound, v)
		}
		if _, dup := sub.adj[v]; !dup {
			sub.adj[v] = nil
		}
	}
	// Copy only edges whose endpoints are both kept.
	for v := range sub.adj {
		var nbrs []int
		for _, w := range g.Neighbors(v) {
			if _, ok := sub.adj[w]; ok {
				nbrs = append(nbrs, w)
			}
		}
		sub.adj[v] = nbrs
		sub.edges += len(nbrs)
	}
	// each undirected edge was counted from both ends
	sub.edges /= 2

	return sub, nil
}

// HasVertex reports whether v is kept in the subgraph.
func (s *Subgraph) HasVertex(v int) bool {
	_, ok := s.adj[v]
	return ok
}

// Neighbors returns the kept neighbours of v, or nil if v is not kept.
// The slice is shared; callers must not modify it.
func (s *Subgraph) Neighbors(v int) []int {
	return s.adj[v]
}

// Len returns the number of kept vertices.
func (s *Subgraph) Len() int { return len(s.adj) }

// EdgeCount returns the number of undirected edges in the subgraph.
func (s *Subgraph) EdgeCount() int { return s.edges }

// Vertices returns the kept vertices in ascending order.
func (s *Subgraph) Vertices() []int {
	out := make([]int, 0, len(s.adj))
	for v := range s.adj {
		out = append(out, v)
	}
	slices.Sort(out)

	return out
}
