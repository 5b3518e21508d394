package obstacle

import (
	"fmt"
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/curvewalk/curve"
)

// Generate places random square obstacles on the grid of c until
// int(CoverageRatio·N) distinct cells are covered, and returns the placed
// rectangles in placement order. Rectangles that would add no new cell are
// not recorded.
//
// Returns ErrNilCurve, ErrGenOption for invalid options, or
// ErrCoverageUnreachable after MaxAttempts consecutive unproductive attempts.
func Generate(c *curve.Curve, opts GenOptions) ([]Rect, error) {
	if c == nil {
		return nil, ErrNilCurve
	}
	side, n := c.Side(), c.Len()
	if err := opts.validate(side); err != nil {
		return nil, err
	}
	logger := opts.Logger
	if logger == nil {
		logger = discardLogger()
	}
	maxAttempts := opts.MaxAttempts
	if maxAttempts == 0 {
		maxAttempts = 64 * n
	}

	excluded := append([]curve.Point{c.MustPointOf(0)}, opts.Exclude...)
	target := int(opts.CoverageRatio * float64(n))
	covered := make([]bool, n)
	count := 0
	rng := rand.New(rand.NewSource(opts.Seed))

	var rects []Rect
	attempts, idle := 0, 0
	for count < target {
		if idle >= maxAttempts {
			return nil, fmt.Errorf("%w: %d of %d cells after %d attempts",
				ErrCoverageUnreachable, count, target, attempts)
		}
		attempts++
		idle++

		r := Rect{
			X:    rng.Intn(side),
			Y:    rng.Intn(side),
			Size: opts.MinSize + rng.Intn(opts.MaxSize-opts.MinSize+1),
		}
		// reject placements leaving the grid or covering an excluded cell
		if r.X+r.Size > side || r.Y+r.Size > side || coversAny(r, excluded) {
			continue
		}
		added := 0
		for _, p := range r.Cells() {
			i := c.MustIndexOf(p.X, p.Y)
			if !covered[i] {
				covered[i] = true
				added++
			}
		}
		if added == 0 {
			continue
		}
		count += added
		idle = 0
		rects = append(rects, r)
	}

	logger.WithFields(logrus.Fields{
		"rects":    len(rects),
		"covered":  count,
		"target":   target,
		"attempts": attempts,
		"seed":     opts.Seed,
	}).Debug("obstacle field generated")

	return rects, nil
}

// validate checks the generation bounds against the grid side.
func (o GenOptions) validate(side int) error {
	switch {
	case !(o.CoverageRatio > 0 && o.CoverageRatio < 1):
		return fmt.Errorf("%w: coverage ratio %v not in (0,1)", ErrGenOption, o.CoverageRatio)
	case o.MinSize < 1:
		return fmt.Errorf("%w: min size %d < 1", ErrGenOption, o.MinSize)
	case o.MinSize > o.MaxSize:
		return fmt.Errorf("%w: min size %d > max size %d", ErrGenOption, o.MinSize, o.MaxSize)
	case o.MaxSize > side:
		return fmt.Errorf("%w: max size %d > side %d", ErrGenOption, o.MaxSize, side)
	case o.MaxAttempts < 0:
		return fmt.Errorf("%w: max attempts %d < 0", ErrGenOption, o.MaxAttempts)
	}
	return nil
}

func coversAny(r Rect, pts []curve.Point) bool {
	for _, p := range pts {
		if r.Contains(p) {
			return true
		}
	}
	return false
}
