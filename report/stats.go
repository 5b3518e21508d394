package report

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/curvewalk/explore"
	"github.com/katalvlaran/curvewalk/gridgraph"
	"github.com/katalvlaran/curvewalk/obstacle"
)

var (
	// ErrNilResult is returned when no exploration result is supplied.
	ErrNilResult = errors.New("report: result is nil")
	// ErrNoOpenCells is returned when obstacles cover the whole grid, leaving
	// no minimal tour to compare against.
	ErrNoOpenCells = errors.New("report: no open cells")
)

// Stats summarizes one run.
type Stats struct {
	Cells            int
	Obstacles        int
	Detected         int
	Distinct         int // distinct cells the agent stood on
	Unreached        int // open cells never visited, walled off from the start
	Regions          int // connected regions of open cells, 1 when nothing is walled off
	MinimalMoves     int
	ActualMoves      int
	OvershootPercent float64
	Steps            int
	Rects            int // obstacle rectangles placed, 0 for point fields
	TouchedRects     int // rectangles containing at least one detected cell
}

// Compute derives Stats from the grid size, the obstacle count and a result.
func Compute(cells, obstacles int, res *explore.Result) (Stats, error) {
	if res == nil {
		return Stats{}, ErrNilResult
	}
	minimal := cells - obstacles
	if minimal <= 0 {
		return Stats{}, fmt.Errorf("%w: %d cells, %d obstacles", ErrNoOpenCells, cells, obstacles)
	}

	seen := make(map[int]struct{}, len(res.Visited))
	for _, v := range res.Visited {
		seen[v] = struct{}{}
	}
	actual := len(res.Visited)

	return Stats{
		Cells:            cells,
		Obstacles:        obstacles,
		Detected:         len(res.Detected),
		Distinct:         len(seen),
		Unreached:        minimal - len(seen),
		MinimalMoves:     minimal,
		ActualMoves:      actual,
		OvershootPercent: (float64(actual)/float64(minimal) - 1) * 100,
		Steps:            res.Steps,
	}, nil
}

// Summarize is Compute for a grid graph and an obstacle field, with the
// open regions and rectangle counts filled in.
func Summarize(g *gridgraph.GridGraph, field *obstacle.Field, res *explore.Result) (Stats, error) {
	if g == nil {
		return Stats{}, explore.ErrNilGraph
	}
	if field == nil {
		return Stats{}, explore.ErrNilField
	}
	st, err := Compute(g.Len(), field.Len(), res)
	if err != nil {
		return Stats{}, err
	}
	st.Regions = len(g.ConnectedComponents(field.Blocked))
	st.Rects = len(field.Rects())
	st.TouchedRects = field.TouchedRects(res.Detected)

	return st, nil
}

// Log writes st as a single info record.
func (st Stats) Log(logger logrus.FieldLogger) {
	logger.WithFields(logrus.Fields{
		"cells":         st.Cells,
		"obstacles":     st.Obstacles,
		"detected":      st.Detected,
		"distinct":      st.Distinct,
		"unreached":     st.Unreached,
		"regions":       st.Regions,
		"minimal_moves": st.MinimalMoves,
		"actual_moves":  st.ActualMoves,
		"overshoot_pct": fmt.Sprintf("%.2f", st.OvershootPercent),
		"steps":         st.Steps,
		"rects":         st.Rects,
		"touched_rects": st.TouchedRects,
	}).Info("exploration finished")
}

// Lines returns the three summary lines printed at the end of a run. The
// overshoot is truncated toward zero.
func (st Stats) Lines() []string {
	return []string{
		fmt.Sprintf("Minimal possible moves: %d", st.MinimalMoves),
		fmt.Sprintf("Actual moves: %d", st.ActualMoves),
		fmt.Sprintf("Overshot moves by %d%%", int(st.OvershootPercent)),
	}
}
