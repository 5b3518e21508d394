package obstacle_test

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/curvewalk/curve"
	"github.com/katalvlaran/curvewalk/obstacle"
)

func curve2(t *testing.T) *curve.Curve {
	t.Helper()
	c, err := curve.New(2)
	require.NoError(t, err)
	return c
}

func TestFromPoints(t *testing.T) {
	c := curve2(t)
	f, err := obstacle.FromPoints(c, []curve.Point{{X: 3, Y: 0}, {X: 0, Y: 3}, {X: 3, Y: 0}})
	require.NoError(t, err)

	assert.Equal(t, 2, f.Len())
	assert.Equal(t, []int{5, 15}, f.Indices())
	assert.Equal(t, []curve.Point{{X: 0, Y: 3}, {X: 3, Y: 0}}, f.Points())
	assert.True(t, f.Blocked(5))
	assert.True(t, f.Blocked(15))
	assert.False(t, f.Blocked(0))
	assert.False(t, f.Blocked(-1))
	assert.False(t, f.Blocked(16))

	// no rectangles were given, so there is nothing to look up
	assert.Nil(t, f.Rects())
	assert.Nil(t, f.RectsAt(curve.Point{X: 3, Y: 0}))
	assert.Zero(t, f.TouchedRects([]int{5}))
}

func TestFromPoints_Empty(t *testing.T) {
	f, err := obstacle.FromPoints(curve2(t), nil)
	require.NoError(t, err)
	assert.Zero(t, f.Len())
	assert.Empty(t, f.Indices())
}

func TestFromPoints_Errors(t *testing.T) {
	_, err := obstacle.FromPoints(nil, nil)
	assert.ErrorIs(t, err, obstacle.ErrNilCurve)

	_, err = obstacle.FromPoints(curve2(t), []curve.Point{{X: 4, Y: 0}})
	assert.ErrorIs(t, err, obstacle.ErrPointOutOfRange)
	assert.ErrorIs(t, err, curve.ErrPointOutOfRange)
}

func TestFromRects(t *testing.T) {
	c := curve2(t)
	rects := []obstacle.Rect{{X: 2, Y: 2, Size: 2}, {X: 3, Y: 3, Size: 1}}
	f, err := obstacle.FromRects(c, rects)
	require.NoError(t, err)

	// (2,2)=8 (2,3)=9 (3,3)=10 (3,2)=11
	assert.Equal(t, []int{8, 9, 10, 11}, f.Indices())
	assert.Equal(t, rects, f.Rects())

	assert.Equal(t, rects, f.RectsAt(curve.Point{X: 3, Y: 3}))
	assert.Equal(t, rects[:1], f.RectsAt(curve.Point{X: 2, Y: 2}))
	assert.Empty(t, f.RectsAt(curve.Point{X: 1, Y: 1}))
	// touching an edge of a rectangle is not covering it
	assert.Empty(t, f.RectsAt(curve.Point{X: 1, Y: 2}))

	assert.Equal(t, 2, f.TouchedRects([]int{10}))
	assert.Equal(t, 1, f.TouchedRects([]int{8, 9}))
	assert.Zero(t, f.TouchedRects([]int{0, -4, 99}))
}

func TestFromRects_Errors(t *testing.T) {
	c := curve2(t)
	for _, r := range []obstacle.Rect{
		{X: 3, Y: 3, Size: 2},
		{X: 0, Y: 0, Size: 0},
		{X: -1, Y: 0, Size: 1},
	} {
		_, err := obstacle.FromRects(c, []obstacle.Rect{r})
		assert.ErrorIs(t, err, obstacle.ErrRect, "rect %+v", r)
	}
	_, err := obstacle.FromRects(nil, nil)
	assert.ErrorIs(t, err, obstacle.ErrNilCurve)
}

func TestRect_Geometry(t *testing.T) {
	r := obstacle.Rect{X: 1, Y: 2, Size: 3}
	assert.Equal(t, orb.Bound{Min: orb.Point{1, 2}, Max: orb.Point{4, 5}}, r.Bound())
	assert.Len(t, r.Cells(), 9)
	assert.True(t, r.Contains(curve.Point{X: 3, Y: 4}))
	assert.False(t, r.Contains(curve.Point{X: 4, Y: 4}))
}
