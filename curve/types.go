package curve

import "errors"

// MaxOrder is the largest supported curve order. At order 15 the grid holds
// 2^30 cells, which still fits a 32-bit int.
const MaxOrder = 15

// Sentinel errors for curve operations.
var (
	// ErrOrder indicates a curve order outside [1, MaxOrder].
	ErrOrder = errors.New("curve: order out of range")
	// ErrIndexOutOfRange indicates a curve distance outside [0, N).
	ErrIndexOutOfRange = errors.New("curve: index out of range")
	// ErrPointOutOfRange indicates grid coordinates outside [0, side).
	ErrPointOutOfRange = errors.New("curve: point out of range")
)

// Point is a cell of the grid. X grows to the right, Y grows upwards.
type Point struct {
	X, Y int
}

// Curve is a Hilbert curve of a fixed order. It is immutable and safe for
// concurrent readers.
type Curve struct {
	order int
	side  int
	n     int
}
