package tui

import (
	"strings"

	"rasterlab/internal/scene"
)

// renderCanvas draws the current vertex buffer into a w x h cell block.
// It is called every frame; it only reads m.verts.
func (m Model) renderCanvas(w, h int) string {
	br := newBrailleCanvas(w, h)
	switch m.shape.Primitive {
	case scene.PrimitiveLineStrip:
		br.strip(m.verts)
	default:
		br.plot(m.verts)
	}
	lines := br.toLines()
	for i, l := range lines {
		lines[i] = m.canvasStyle.Render(l)
	}
	return strings.Join(lines, "\n")
}
