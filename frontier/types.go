package frontier

import (
	"errors"

	"github.com/katalvlaran/curvewalk/bfs"
)

// Sentinel errors for frontier operations.
var (
	// ErrGraphNil indicates a nil graph or subgraph argument.
	ErrGraphNil = errors.New("frontier: graph is nil")
	// ErrVertexNotFound indicates a vertex missing from the graph or subgraph.
	ErrVertexNotFound = errors.New("frontier: vertex not found")
	// ErrNoPath indicates source and target are disconnected inside the subgraph.
	ErrNoPath = errors.New("frontier: no path within subgraph")
)

// Subgraph is the subgraph of a parent bfs.Adjacency induced on a vertex set.
// It is built fresh by Induced and never mutated afterwards.
type Subgraph struct {
	adj   map[int][]int
	edges int
}

var _ bfs.Adjacency = (*Subgraph)(nil)
