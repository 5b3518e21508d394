package curve

import "fmt"

// New returns the Hilbert curve of the given order (iteration count).
// The grid side is 2^order and the curve visits side² cells.
// Returns ErrOrder if order is outside [1, MaxOrder].
func New(order int) (*Curve, error) {
	if order < 1 || order > MaxOrder {
		return nil, fmt.Errorf("%w: %d (want 1..%d)", ErrOrder, order, MaxOrder)
	}
	side := 1 << order

	return &Curve{order: order, side: side, n: side * side}, nil
}

// Order returns the curve iteration count.
func (c *Curve) Order() int { return c.order }

// Side returns the grid side length, 2^order.
func (c *Curve) Side() int { return c.side }

// Len returns the number of cells N = side².
func (c *Curve) Len() int { return c.n }

// ContainsIndex reports whether d is a valid curve distance.
func (c *Curve) ContainsIndex(d int) bool { return d >= 0 && d < c.n }

// ContainsPoint reports whether (x,y) lies on the grid.
func (c *Curve) ContainsPoint(x, y int) bool {
	return x >= 0 && x < c.side && y >= 0 && y < c.side
}

// PointOf returns the grid cell at curve distance d.
// Returns ErrIndexOutOfRange if d is outside [0, N).
// Complexity: O(order).
func (c *Curve) PointOf(d int) (Point, error) {
	if !c.ContainsIndex(d) {
		return Point{}, fmt.Errorf("%w: %d (want 0..%d)", ErrIndexOutOfRange, d, c.n-1)
	}
	x, y := c.point(d)

	return Point{X: x, Y: y}, nil
}

// IndexOf returns the curve distance of cell (x,y).
// Returns ErrPointOutOfRange if the cell is off the grid.
// Complexity: O(order).
func (c *Curve) IndexOf(x, y int) (int, error) {
	if !c.ContainsPoint(x, y) {
		return 0, fmt.Errorf("%w: (%d,%d) on side %d", ErrPointOutOfRange, x, y, c.side)
	}

	return c.index(x, y), nil
}

// MustPointOf is PointOf for indices already known to be valid.
// It panics on an out-of-range index.
func (c *Curve) MustPointOf(d int) Point {
	p, err := c.PointOf(d)
	if err != nil {
		panic(err)
	}

	return p
}

// MustIndexOf is IndexOf for coordinates already known to be on the grid.
// It panics on an off-grid cell.
func (c *Curve) MustIndexOf(x, y int) int {
	d, err := c.IndexOf(x, y)
	if err != nil {
		panic(err)
	}

	return d
}

// point converts distance d to (x,y). d must be in range.
func (c *Curve) point(d int) (x, y int) {
	t := d
	for s := 1; s < c.side; s <<= 1 {
		rx := 1 & (t / 2)
		ry := 1 & (t ^ rx)
		x, y = rotate(s, x, y, rx, ry)
		x += s * rx
		y += s * ry
		t /= 4
	}

	return x, y
}

// index converts (x,y) to its distance. (x,y) must be on the grid.
func (c *Curve) index(x, y int) int {
	d := 0
	for s := c.side / 2; s > 0; s >>= 1 {
		rx, ry := 0, 0
		if x&s > 0 {
			rx = 1
		}
		if y&s > 0 {
			ry = 1
		}
		d += s * s * ((3 * rx) ^ ry)
		x, y = rotate(c.side, x, y, rx, ry)
	}

	return d
}

// rotate flips and transposes a quadrant of side n so that the sub-curve
// inside it starts and ends at the right corners.
func rotate(n, x, y, rx, ry int) (int, int) {
	if ry == 0 {
		if rx == 1 {
			x = n - 1 - x
			y = n - 1 - y
		}
		x, y = y, x
	}

	return x, y
}
