package obstacle

import (
	"slices"

	"github.com/dhconnelly/rtreego"

	"github.com/katalvlaran/curvewalk/curve"
)

// rectEntry wraps a rectangle for R-tree storage.
type rectEntry struct {
	id   int
	rect Rect
	bbox rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (e *rectEntry) Bounds() rtreego.Rect {
	return e.bbox
}

// newRectTree indexes rects by their grid bounds, 2D with 25..50 entries per node.
func newRectTree(rects []Rect) (*rtreego.Rtree, error) {
	tree := rtreego.NewTree(2, 25, 50)
	for i, r := range rects {
		b := r.Bound()
		bbox, err := rtreego.NewRect(
			rtreego.Point{b.Min.X(), b.Min.Y()},
			[]float64{b.Max.X() - b.Min.X(), b.Max.Y() - b.Min.Y()},
		)
		if err != nil {
			return nil, err
		}
		tree.Insert(&rectEntry{id: i, rect: r, bbox: bbox})
	}
	return tree, nil
}

// cellProbe is a box strictly inside the unit square of cell p, so it only
// intersects rectangles that cover p.
func cellProbe(p curve.Point) rtreego.Rect {
	probe, _ := rtreego.NewRect(
		rtreego.Point{float64(p.X) + 0.25, float64(p.Y) + 0.25},
		[]float64{0.5, 0.5},
	)
	return probe
}

// searchCell returns the ids of indexed rectangles covering p, ascending.
func searchCell(tree *rtreego.Rtree, p curve.Point) []int {
	hits := tree.SearchIntersect(cellProbe(p))
	ids := make([]int, 0, len(hits))
	for _, h := range hits {
		e := h.(*rectEntry)
		if e.rect.Contains(p) {
			ids = append(ids, e.id)
		}
	}
	slices.Sort(ids)
	return ids
}
