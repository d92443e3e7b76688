package raster

import "errors"

// ErrInvalidArgument is returned when a rasterizer precondition does not hold.
var ErrInvalidArgument = errors.New("invalid argument")

// Point is an integer pixel coordinate.
type Point struct {
	X int
	Y int
}

// PointF is a pixel coordinate produced by the ellipse rasterizer, whose
// decision parameters are real-valued.
type PointF struct {
	X float64
	Y float64
}

// Regime selects which Bresenham variant drives a line.
type Regime int

const (
	// Shallow lines have |dy| <= |dx| and step along x.
	Shallow Regime = iota
	// Steep lines have |dy| > |dx| and step along y.
	Steep
)

func (r Regime) String() string {
	switch r {
	case Shallow:
		return "shallow"
	case Steep:
		return "steep"
	default:
		return "unknown"
	}
}

// Region is one of the two slope regimes of the midpoint ellipse.
type Region int

const (
	RegionSlopeBelowOne   Region = 1
	RegionSlopeAtLeastOne Region = 2
)

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// maxPrealloc caps slice preallocation; larger outputs grow by append.
const maxPrealloc = 1 << 16

func capHint(n int) int {
	if n < 0 || n > maxPrealloc {
		return maxPrealloc
	}
	return n
}
