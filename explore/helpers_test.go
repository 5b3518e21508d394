package explore_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/curvewalk/curve"
	"github.com/katalvlaran/curvewalk/gridgraph"
	"github.com/katalvlaran/curvewalk/obstacle"
)

// blockedCells is a Blocker over an explicit index set.
type blockedCells map[int]bool

func (b blockedCells) Blocked(i int) bool { return b[i] }

func cells(ids ...int) blockedCells {
	b := blockedCells{}
	for _, i := range ids {
		b[i] = true
	}
	return b
}

func buildGrid(t testing.TB, order int) *gridgraph.GridGraph {
	t.Helper()
	c, err := curve.New(order)
	require.NoError(t, err)
	gg, err := gridgraph.Build(c)
	require.NoError(t, err)
	return gg
}

func randomField(t testing.TB, c *curve.Curve, seed int64, ratio float64) *obstacle.Field {
	t.Helper()
	opts := obstacle.DefaultGenOptions(c.Side())
	opts.CoverageRatio = ratio
	opts.Seed = seed
	rects, err := obstacle.Generate(c, opts)
	require.NoError(t, err)
	f, err := obstacle.FromRects(c, rects)
	require.NoError(t, err)
	return f
}

// mapGraph is a hand-made Graph used to inject inconsistent adjacency.
type mapGraph struct {
	n   int
	adj map[int][]int
}

func (g mapGraph) HasVertex(v int) bool {
	_, ok := g.adj[v]
	return ok
}

func (g mapGraph) Neighbors(v int) []int { return g.adj[v] }

func (g mapGraph) HasEdge(i, j int) bool {
	for _, w := range g.adj[i] {
		if w == j {
			return true
		}
	}
	return false
}

func (g mapGraph) Len() int { return g.n }

// dropEdge denies one edge through HasEdge while Neighbors still lists it.
type dropEdge struct {
	*gridgraph.GridGraph
	a, b int
}

func (d dropEdge) HasEdge(i, j int) bool {
	if (i == d.a && j == d.b) || (i == d.b && j == d.a) {
		return false
	}
	return d.GridGraph.HasEdge(i, j)
}
