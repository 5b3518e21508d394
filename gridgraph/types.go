// Package gridgraph defines core types and sentinel errors
// for the gridgraph subpackage of github.com/katalvlaran/curvewalk.
package gridgraph

import (
	"errors"

	"github.com/katalvlaran/curvewalk/curve"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrNilCurve indicates Build was called without a curve.
	ErrNilCurve = errors.New("gridgraph: curve is nil")
	// ErrVertexOutOfRange indicates a cell index outside [0, N).
	ErrVertexOutOfRange = errors.New("gridgraph: vertex out of range")
)

// forwardOffsets lists the east and north steps. Visiting only these from
// every cell enumerates each undirected 4-neighbour edge exactly once.
var forwardOffsets = [2][2]int{{1, 0}, {0, 1}}

// GridGraph is the 4-connected graph of a square grid whose vertices are
// Hilbert curve indices. It is immutable once built and safe for concurrent readers.
//
// adj[i] lists the neighbours of cell i in ascending index order; a cell on
// the border simply has fewer entries.
type GridGraph struct {
	curve *curve.Curve
	side  int
	n     int
	edges int
	adj   [][]int
}
