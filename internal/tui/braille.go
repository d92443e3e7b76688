package tui

import (
	"math"

	"golang.org/x/image/math/f32"

	"rasterlab/internal/raster"
	"rasterlab/internal/viewport"
)

// dotBits maps a dot inside a braille cell (column, row) to its bit in the
// U+2800 block.
var dotBits = [2][4]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// brailleCanvas is a dot-addressable surface of 2x4 dots per terminal cell.
// A square target of side dots is centred in it; normalized vertices are
// mapped onto that square with y pointing up.
type brailleCanvas struct {
	w, h   int       // in cells
	m      [][]uint8 // per-cell dot mask
	side   int       // square target size in dots
	ox, oy int       // target origin in dots
}

func newBrailleCanvas(w, h int) *brailleCanvas {
	m := make([][]uint8, h)
	for i := range m {
		m[i] = make([]uint8, w)
	}
	side := min(w*2, h*4)
	return &brailleCanvas{
		w: w, h: h, m: m,
		side: side,
		ox:   (w*2 - side) / 2,
		oy:   (h*4 - side) / 2,
	}
}

// setDot sets the dot at dot coordinates; dots off the canvas are dropped.
func (b *brailleCanvas) setDot(dx, dy int) {
	if dx < 0 || dy < 0 {
		return
	}
	cx, rx := dx/2, dx%2
	cy, ry := dy/4, dy%4
	if cy >= b.h || cx >= b.w {
		return
	}
	b.m[cy][cx] |= dotBits[rx][ry]
}

// dotXY maps a normalized vertex to dot coordinates inside the target square.
func (b *brailleCanvas) dotXY(v f32.Vec2) (int, int) {
	s := float64(b.side - 1)
	x := b.ox + int(math.Round((float64(v[0])+1)/2*s))
	y := b.oy + int(math.Round((1-float64(v[1]))/2*s))
	return x, y
}

// plot draws vertices as loose dots.
func (b *brailleCanvas) plot(verts []f32.Vec2) {
	for _, v := range verts {
		if !viewport.Contains(v) {
			continue
		}
		b.setDot(b.dotXY(v))
	}
}

// strip connects consecutive vertices with Bresenham segments.
func (b *brailleCanvas) strip(verts []f32.Vec2) {
	havePrev := false
	var px, py int
	for _, v := range verts {
		if !viewport.Contains(v) {
			havePrev = false
			continue
		}
		x, y := b.dotXY(v)
		if !havePrev {
			b.setDot(x, y)
		} else if abs(x-px) > 1 || abs(y-py) > 1 {
			for _, p := range raster.Line(px, py, x, y) {
				b.setDot(p.X, p.Y)
			}
		} else {
			b.setDot(x, y)
		}
		px, py, havePrev = x, y, true
	}
}

func (b *brailleCanvas) toLines() []string {
	out := make([]string, b.h)
	for y := 0; y < b.h; y++ {
		row := make([]rune, b.w)
		for x := 0; x < b.w; x++ {
			mask := b.m[y][x]
			if mask == 0 {
				row[x] = ' '
			} else {
				row[x] = rune(0x2800 + int(mask))
			}
		}
		out[y] = string(row)
	}
	return out
}
