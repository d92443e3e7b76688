// Package viewport maps pixel-unit coordinates into render-target space.
//
// A square viewport of size S pixels maps [0, S] onto [-1, 1] on both axes,
// the same space a GL vertex shader receives.
package viewport

import "golang.org/x/image/math/f32"

type BBox struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

// Normalize maps v from pixel units into [-1, 1] for a viewport of the given size.
func Normalize(v, size float64) float32 {
	return float32(v/(size/2) - 1)
}

// Vertices normalizes every point of a sequence, preserving order.
func Vertices(points [][2]float64, size int) []f32.Vec2 {
	s := float64(size)
	out := make([]f32.Vec2, len(points))
	for i, p := range points {
		out[i] = f32.Vec2{Normalize(p[0], s), Normalize(p[1], s)}
	}
	return out
}

// Bounds returns the bounding box of a sequence and false if it is empty.
func Bounds(points [][2]float64) (BBox, bool) {
	if len(points) == 0 {
		return BBox{}, false
	}
	bb := BBox{MinX: points[0][0], MinY: points[0][1], MaxX: points[0][0], MaxY: points[0][1]}
	for _, p := range points[1:] {
		if p[0] < bb.MinX {
			bb.MinX = p[0]
		}
		if p[1] < bb.MinY {
			bb.MinY = p[1]
		}
		if p[0] > bb.MaxX {
			bb.MaxX = p[0]
		}
		if p[1] > bb.MaxY {
			bb.MaxY = p[1]
		}
	}
	return bb, true
}

// Contains reports whether a normalized vertex lies inside the render target.
func Contains(v f32.Vec2) bool {
	return v[0] >= -1 && v[0] <= 1 && v[1] >= -1 && v[1] <= 1
}
