package raster

import (
	"fmt"
	"math"
)

// RegionPoint is an ellipse point tagged with the region that produced it.
type RegionPoint struct {
	PointF
	Region Region
}

// Ellipse rasterizes the axis-aligned ellipse with semi-axes rx, ry around
// (cx,cy) using the two-region midpoint algorithm. Each step is mirrored
// into the four quadrants.
func Ellipse(cx, cy, rx, ry float64) ([]PointF, error) {
	tagged, err := EllipseRegions(cx, cy, rx, ry)
	if err != nil {
		return nil, err
	}
	out := make([]PointF, len(tagged))
	for i, p := range tagged {
		out[i] = p.PointF
	}
	return out, nil
}

// CheckEllipse reports whether Ellipse accepts the arguments.
func CheckEllipse(cx, cy, rx, ry float64) error {
	for _, v := range [...]float64{cx, cy, rx, ry} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("raster: ellipse arguments must be finite: %w", ErrInvalidArgument)
		}
	}
	if rx <= 0 || ry <= 0 {
		return fmt.Errorf("raster: ellipse radii must be > 0, got rx=%g ry=%g: %w", rx, ry, ErrInvalidArgument)
	}
	return nil
}

// EllipseRegions is Ellipse with every point tagged by its region.
func EllipseRegions(cx, cy, rx, ry float64) ([]RegionPoint, error) {
	if err := CheckEllipse(cx, cy, rx, ry); err != nil {
		return nil, err
	}

	var out []RegionPoint
	plot := func(x, y float64, reg Region) {
		out = append(out,
			RegionPoint{PointF{cx + x, cy + y}, reg},
			RegionPoint{PointF{cx - x, cy + y}, reg},
			RegionPoint{PointF{cx + x, cy - y}, reg},
			RegionPoint{PointF{cx - x, cy - y}, reg},
		)
	}

	rx2 := rx * rx
	ry2 := ry * ry
	x := 0.0
	y := ry

	p1 := ry2 - rx2*ry + 0.25*rx2
	for 2*ry2*x < 2*rx2*y {
		plot(x, y, RegionSlopeBelowOne)
		x++
		if p1 < 0 {
			p1 += 2*ry2*x + ry2
		} else {
			y--
			p1 += 2*ry2*x - 2*rx2*y + ry2
		}
	}

	// region 2 continues from the x, y where region 1 stopped
	p2 := ry2*(x+0.5)*(x+0.5) + rx2*(y-1)*(y-1) - rx2*ry2
	for y >= 0 {
		plot(x, y, RegionSlopeAtLeastOne)
		y--
		if p2 > 0 {
			p2 += rx2 - 2*rx2*y
		} else {
			x++
			p2 += 2*ry2*x - 2*rx2*y + rx2
		}
	}
	return out, nil
}
