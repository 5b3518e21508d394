package bfs_test

import "sort"

// adjList is a minimal undirected bfs.Adjacency used by the tests.
type adjList map[int][]int

func (a adjList) HasVertex(v int) bool {
	_, ok := a[v]
	return ok
}

func (a adjList) Neighbors(v int) []int { return a[v] }

// newAdj builds an undirected adjacency from edge pairs plus isolated vertices.
// Neighbor lists are sorted ascending so traversal order is reproducible.
func newAdj(edges [][2]int, isolated ...int) adjList {
	a := adjList{}
	for _, v := range isolated {
		a[v] = nil
	}
	for _, e := range edges {
		a[e[0]] = append(a[e[0]], e[1])
		a[e[1]] = append(a[e[1]], e[0])
	}
	for v := range a {
		sort.Ints(a[v])
	}
	return a
}

// chain returns 0-1-…-n.
func chain(n int) adjList {
	edges := make([][2]int, 0, n)
	for i := 0; i < n; i++ {
		edges = append(edges, [2]int{i, i + 1})
	}
	return newAdj(edges)
}
