package obstacle

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/curvewalk/curve"
)

// FromPoints converts covered grid coordinates into a Field of curve indices.
// Duplicate points collapse. An empty slice yields an empty field.
// Returns ErrNilCurve or ErrPointOutOfRange.
// Complexity: O(P·order) time, O(N) memory.
func FromPoints(c *curve.Curve, pts []curve.Point) (*Field, error) {
	if c == nil {
		return nil, ErrNilCurve
	}
	f := &Field{curve: c, blocked: make([]bool, c.Len())}
	for _, p := range pts {
		i, err := c.IndexOf(p.X, p.Y)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrPointOutOfRange, err)
		}
		if !f.blocked[i] {
			f.blocked[i] = true
			f.indices = append(f.indices, i)
		}
	}
	slices.Sort(f.indices)

	return f, nil
}

// FromRects covers every cell of every rectangle and indexes the rectangles
// for RectsAt / TouchedRects lookups. Overlapping rectangles are allowed.
// Returns ErrNilCurve or ErrRect.
func FromRects(c *curve.Curve, rects []Rect) (*Field, error) {
	if c == nil {
		return nil, ErrNilCurve
	}
	var pts []curve.Point
	for _, r := range rects {
		if r.Size < 1 || r.X < 0 || r.Y < 0 || r.X+r.Size > c.Side() || r.Y+r.Size > c.Side() {
			return nil, fmt.Errorf("%w: %+v on side %d", ErrRect, r, c.Side())
		}
		pts = append(pts, r.Cells()...)
	}
	f, err := FromPoints(c, pts)
	if err != nil {
		return nil, err
	}
	f.rects = slices.Clone(rects)
	if f.tree, err = newRectTree(f.rects); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRect, err)
	}

	return f, nil
}

// Blocked reports whether cell i is covered. Indices off the curve are never blocked.
func (f *Field) Blocked(i int) bool {
	return i >= 0 && i < len(f.blocked) && f.blocked[i]
}

// Len returns the number of blocked cells.
func (f *Field) Len() int { return len(f.indices) }

// Indices returns the blocked cells in ascending order.
func (f *Field) Indices() []int { return slices.Clone(f.indices) }

// Points returns the blocked cells as grid coordinates, in index order.
func (f *Field) Points() []curve.Point {
	out := make([]curve.Point, len(f.indices))
	for k, i := range f.indices {
		out[k] = f.curve.MustPointOf(i)
	}
	return out
}

// Rects returns the rectangles the field was built from (nil for FromPoints).
func (f *Field) Rects() []Rect { return slices.Clone(f.rects) }

// RectsAt returns the rectangles covering cell p, in placement order.
func (f *Field) RectsAt(p curve.Point) []Rect {
	if f.tree == nil {
		return nil
	}
	ids := searchCell(f.tree, p)
	out := make([]Rect, len(ids))
	for k, id := range ids {
		out[k] = f.rects[id]
	}
	return out
}

// TouchedRects counts the distinct rectangles covering at least one of cells.
// Cells off the curve are ignored. Returns 0 for fields built by FromPoints.
func (f *Field) TouchedRects(cells []int) int {
	if f.tree == nil {
		return 0
	}
	seen := make(map[int]bool)
	for _, i := range cells {
		p, err := f.curve.PointOf(i)
		if err != nil {
			continue
		}
		for _, id := range searchCell(f.tree, p) {
			seen[id] = true
		}
	}
	return len(seen)
}
