package raster

import "fmt"

// Circle rasterizes the circle of radius r around (cx,cy) with the midpoint
// algorithm. One octant (0 <= x <= y) is walked and every step is mirrored
// into all eight octants, so points on the axes and on the diagonal repeat.
func Circle(cx, cy, r int) ([]Point, error) {
	if err := CheckCircle(r); err != nil {
		return nil, err
	}
	// each octant step is roughly r/sqrt(2) long
	out := make([]Point, 0, capHint(8*(r*3/4+2)))
	plot := func(x, y int) {
		out = append(out,
			Point{cx + x, cy + y},
			Point{cx - x, cy + y},
			Point{cx + x, cy - y},
			Point{cx - x, cy - y},
			Point{cx + y, cy + x},
			Point{cx - y, cy + x},
			Point{cx + y, cy - x},
			Point{cx - y, cy - x},
		)
	}
	x, y := 0, r
	p := 1 - r
	plot(x, y)
	for x < y {
		x++
		if p < 0 {
			p += 2*x + 1
		} else {
			y--
			p += 2*(x-y) + 1
		}
		plot(x, y)
	}
	return out, nil
}

// CheckCircle reports whether Circle accepts the radius.
func CheckCircle(r int) error {
	if r < 0 {
		return fmt.Errorf("raster: circle radius must be >= 0, got %d: %w", r, ErrInvalidArgument)
	}
	return nil
}
