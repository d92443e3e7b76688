package raster

import "fmt"

// LineShallow rasterizes a line with |dy| <= |dx| from (x0,y0) to (x1,y1).
// It requires x0 <= x1 and returns one point per integer x in [x0, x1].
func LineShallow(x0, y0, x1, y1 int) ([]Point, error) {
	if err := CheckShallow(x0, y0, x1, y1); err != nil {
		return nil, err
	}
	dx := x1 - x0
	dy := y1 - y0
	yi := 1
	if dy < 0 {
		yi = -1
		dy = -dy
	}
	out := make([]Point, 0, capHint(dx+1))
	d := 2*dy - dx
	y := y0
	for x := x0; x <= x1; x++ {
		out = append(out, Point{X: x, Y: y})
		if d > 0 {
			y += yi
			d -= 2 * dx
		}
		d += 2 * dy
	}
	return out, nil
}

// LineSteep rasterizes a line with |dy| > |dx| from (x0,y0) to (x1,y1).
// It requires y0 <= y1 and returns one point per integer y in [y0, y1].
func LineSteep(x0, y0, x1, y1 int) ([]Point, error) {
	if err := CheckSteep(x0, y0, x1, y1); err != nil {
		return nil, err
	}
	dx := x1 - x0
	dy := y1 - y0
	xi := 1
	if dx < 0 {
		xi = -1
		dx = -dx
	}
	out := make([]Point, 0, capHint(dy+1))
	d := 2*dx - dy
	x := x0
	for y := y0; y <= y1; y++ {
		out = append(out, Point{X: x, Y: y})
		if d > 0 {
			x += xi
			d -= 2 * dy
		}
		d += 2 * dx
	}
	return out, nil
}

// CheckShallow reports whether LineShallow accepts the endpoints.
func CheckShallow(x0, y0, x1, y1 int) error {
	dx := x1 - x0
	dy := y1 - y0
	if dx < 0 {
		return fmt.Errorf("raster: shallow line needs x0 <= x1, got %d > %d: %w", x0, x1, ErrInvalidArgument)
	}
	if abs(dy) > dx {
		return fmt.Errorf("raster: shallow line needs |dy| <= |dx|, got dx=%d dy=%d: %w", dx, dy, ErrInvalidArgument)
	}
	return nil
}

// CheckSteep reports whether LineSteep accepts the endpoints.
func CheckSteep(x0, y0, x1, y1 int) error {
	dx := x1 - x0
	dy := y1 - y0
	if dy < 0 {
		return fmt.Errorf("raster: steep line needs y0 <= y1, got %d > %d: %w", y0, y1, ErrInvalidArgument)
	}
	if abs(dx) >= dy {
		return fmt.Errorf("raster: steep line needs |dy| > |dx|, got dx=%d dy=%d: %w", dx, dy, ErrInvalidArgument)
	}
	return nil
}

// Classify reports which variant rasterizes the line between the endpoints.
func Classify(x0, y0, x1, y1 int) Regime {
	if abs(y1-y0) > abs(x1-x0) {
		return Steep
	}
	return Shallow
}

// Line rasterizes the segment between any two endpoints. Endpoints are
// reordered so the driving coordinate increases, which makes the result
// independent of the direction the segment is given in.
func Line(x0, y0, x1, y1 int) []Point {
	var (
		pts []Point
		err error
	)
	switch Classify(x0, y0, x1, y1) {
	case Steep:
		if y0 > y1 {
			x0, y0, x1, y1 = x1, y1, x0, y0
		}
		pts, err = LineSteep(x0, y0, x1, y1)
	default:
		if x0 > x1 {
			x0, y0, x1, y1 = x1, y1, x0, y0
		}
		pts, err = LineShallow(x0, y0, x1, y1)
	}
	if err != nil {
		// unreachable: the regime and ordering above satisfy both preconditions
		panic(err)
	}
	return pts
}
