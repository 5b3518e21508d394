package curve_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/curvewalk/curve"
)

// TestNew_Errors verifies that New rejects orders outside [1, MaxOrder].
func TestNew_Errors(t *testing.T) {
	for _, order := range []int{-1, 0, curve.MaxOrder + 1} {
		if _, err := curve.New(order); !errors.Is(err, curve.ErrOrder) {
			t.Errorf("New(%d) error = %v; want ErrOrder", order, err)
		}
	}
}

// TestNew_Dimensions checks side and length for small orders.
func TestNew_Dimensions(t *testing.T) {
	cases := []struct{ order, side, n int }{
		{1, 2, 4},
		{2, 4, 16},
		{3, 8, 64},
		{5, 32, 1024},
	}
	for _, tc := range cases {
		c, err := curve.New(tc.order)
		if err != nil {
			t.Fatalf("New(%d) error: %v", tc.order, err)
		}
		if c.Order() != tc.order || c.Side() != tc.side || c.Len() != tc.n {
			t.Errorf("New(%d) = order %d side %d len %d; want %d %d %d",
				tc.order, c.Order(), c.Side(), c.Len(), tc.order, tc.side, tc.n)
		}
	}
}

// TestPointOf_Order2 pins the exact enumeration of the 4×4 grid.
func TestPointOf_Order2(t *testing.T) {
	c, _ := curve.New(2)
	want := []curve.Point{
		{0, 0}, {1, 0}, {1, 1}, {0, 1},
		{0, 2}, {0, 3}, {1, 3}, {1, 2},
		{2, 2}, {2, 3}, {3, 3}, {3, 2},
		{3, 1}, {2, 1}, {2, 0}, {3, 0},
	}
	for d, w := range want {
		p, err := c.PointOf(d)
		if err != nil {
			t.Fatalf("PointOf(%d) error: %v", d, err)
		}
		if p != w {
			t.Errorf("PointOf(%d) = %v; want %v", d, p, w)
		}
	}
}

// TestBijection walks every cell for several orders in both directions.
func TestBijection(t *testing.T) {
	for order := 1; order <= 6; order++ {
		c, _ := curve.New(order)
		seen := make(map[curve.Point]bool, c.Len())
		for d := 0; d < c.Len(); d++ {
			p, err := c.PointOf(d)
			if err != nil {
				t.Fatalf("order %d: PointOf(%d) error: %v", order, d, err)
			}
			if seen[p] {
				t.Fatalf("order %d: point %v produced twice", order, p)
			}
			seen[p] = true
			back, err := c.IndexOf(p.X, p.Y)
			if err != nil || back != d {
				t.Fatalf("order %d: IndexOf(PointOf(%d)) = %d, %v", order, d, back, err)
			}
		}
		for y := 0; y < c.Side(); y++ {
			for x := 0; x < c.Side(); x++ {
				d, _ := c.IndexOf(x, y)
				p, _ := c.PointOf(d)
				if p.X != x || p.Y != y {
					t.Fatalf("order %d: PointOf(IndexOf(%d,%d)) = %v", order, x, y, p)
				}
			}
		}
	}
}

// TestLocality verifies that consecutive distances are grid neighbours.
func TestLocality(t *testing.T) {
	c, _ := curve.New(5)
	prev := c.MustPointOf(0)
	for d := 1; d < c.Len(); d++ {
		p := c.MustPointOf(d)
		dx, dy := p.X-prev.X, p.Y-prev.Y
		if dx*dx+dy*dy != 1 {
			t.Fatalf("distance %d→%d jumps from %v to %v", d-1, d, prev, p)
		}
		prev = p
	}
}

// TestRangeErrors checks the out-of-range sentinels.
func TestRangeErrors(t *testing.T) {
	c, _ := curve.New(2)
	for _, d := range []int{-1, 16, 100} {
		if _, err := c.PointOf(d); !errors.Is(err, curve.ErrIndexOutOfRange) {
			t.Errorf("PointOf(%d) error = %v; want ErrIndexOutOfRange", d, err)
		}
	}
	for _, p := range [][2]int{{-1, 0}, {4, 0}, {0, 4}, {2, -3}} {
		if _, err := c.IndexOf(p[0], p[1]); !errors.Is(err, curve.ErrPointOutOfRange) {
			t.Errorf("IndexOf(%d,%d) error = %v; want ErrPointOutOfRange", p[0], p[1], err)
		}
	}
}

// TestMustPointOf_Panics checks the panic on invalid input.
func TestMustPointOf_Panics(t *testing.T) {
	c, _ := curve.New(1)
	defer func() {
		if recover() == nil {
			t.Error("MustPointOf(4) did not panic")
		}
	}()
	c.MustPointOf(4)
}

// TestMustIndexOf_Panics checks the panic on an off-grid cell.
func TestMustIndexOf_Panics(t *testing.T) {
	c, _ := curve.New(1)
	if got := c.MustIndexOf(1, 0); got != 3 {
		t.Errorf("MustIndexOf(1,0) = %d; want 3", got)
	}
	defer func() {
		if recover() == nil {
			t.Error("MustIndexOf(2,0) did not panic")
		}
	}()
	c.MustIndexOf(2, 0)
}
