package viewport

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/image/math/f32"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, float32(-1), Normalize(0, 800))
	assert.Equal(t, float32(0), Normalize(400, 800))
	assert.Equal(t, float32(1), Normalize(800, 800))
	assert.InDelta(t, -0.75, Normalize(100, 800), 1e-6)
	assert.InDelta(t, 0.25, Normalize(500, 800), 1e-6)
}

func TestVerticesPreservesOrder(t *testing.T) {
	in := [][2]float64{{100, 100}, {400, 700}, {800, 0}}
	got := Vertices(in, 800)
	want := []f32.Vec2{{-0.75, -0.75}, {0, 0.75}, {1, -1}}
	assert.Equal(t, want, got)
	assert.Empty(t, Vertices(nil, 800))
}

func TestBounds(t *testing.T) {
	_, ok := Bounds(nil)
	assert.False(t, ok)

	bb, ok := Bounds([][2]float64{{3, 4}, {-1, 10}, {7, -2}})
	assert.True(t, ok)
	assert.Equal(t, BBox{MinX: -1, MinY: -2, MaxX: 7, MaxY: 10}, bb)
}

func TestContains(t *testing.T) {
	assert.True(t, Contains(f32.Vec2{0, 0}))
	assert.True(t, Contains(f32.Vec2{-1, 1}))
	assert.False(t, Contains(f32.Vec2{1.01, 0}))
	assert.False(t, Contains(f32.Vec2{0, -1.5}))
}
