package obstacle

import (
	"errors"
	"io"

	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/curvewalk/curve"
)

// Sentinel errors for obstacle operations.
var (
	// ErrNilCurve indicates a nil curve argument.
	ErrNilCurve = errors.New("obstacle: curve is nil")
	// ErrPointOutOfRange indicates a coordinate outside the grid.
	ErrPointOutOfRange = errors.New("obstacle: point out of range")
	// ErrRect indicates an empty rectangle or one that leaves the grid.
	ErrRect = errors.New("obstacle: invalid rectangle")
	// ErrGenOption indicates invalid generation options.
	ErrGenOption = errors.New("obstacle: invalid generation option")
	// ErrCoverageUnreachable indicates the generator could not reach the
	// requested coverage within MaxAttempts unproductive placements.
	ErrCoverageUnreachable = errors.New("obstacle: coverage unreachable")
)

// Rect is a square obstacle covering cells [X, X+Size) × [Y, Y+Size).
type Rect struct {
	X, Y int
	Size int
}

// Bound returns the rectangle's extent in grid units, with cell (x,y)
// occupying the unit square [x, x+1] × [y, y+1].
func (r Rect) Bound() orb.Bound {
	return orb.Bound{
		Min: orb.Point{float64(r.X), float64(r.Y)},
		Max: orb.Point{float64(r.X + r.Size), float64(r.Y + r.Size)},
	}
}

// Contains reports whether cell p is covered by r.
func (r Rect) Contains(p curve.Point) bool {
	return p.X >= r.X && p.X < r.X+r.Size && p.Y >= r.Y && p.Y < r.Y+r.Size
}

// Cells returns the covered cells in row-major order.
func (r Rect) Cells() []curve.Point {
	out := make([]curve.Point, 0, r.Size*r.Size)
	for y := r.Y; y < r.Y+r.Size; y++ {
		for x := r.X; x < r.X+r.Size; x++ {
			out = append(out, curve.Point{X: x, Y: y})
		}
	}
	return out
}

// Field is the immutable set of blocked cells for one run.
type Field struct {
	curve   *curve.Curve
	blocked []bool
	indices []int
	rects   []Rect
	tree    *rtreego.Rtree
}

// GenOptions configures Generate.
type GenOptions struct {
	// CoverageRatio is the fraction of cells to cover, in (0, 1).
	CoverageRatio float64
	// MinSize and MaxSize bound the obstacle side length: 1 ≤ MinSize ≤ MaxSize ≤ side.
	MinSize, MaxSize int
	// Seed feeds the pseudo-random source.
	Seed int64
	// MaxAttempts caps consecutive placements that add no new cell.
	// Zero selects 64·N.
	MaxAttempts int
	// Exclude lists cells no obstacle may cover, in addition to the curve start.
	Exclude []curve.Point
	// Logger receives a debug summary. Nil discards.
	Logger logrus.FieldLogger
}

// DefaultGenOptions mirrors the classic setup: 15% coverage, sizes from 1 to
// ⌊√side⌋ (at least 1).
func DefaultGenOptions(side int) GenOptions {
	maxSize := 1
	for (maxSize+1)*(maxSize+1) <= side {
		maxSize++
	}
	return GenOptions{
		CoverageRatio: 0.15,
		MinSize:       1,
		MaxSize:       maxSize,
	}
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
