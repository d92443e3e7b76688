package raster

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCircleRadiusFive(t *testing.T) {
	got, err := Circle(0, 0, 5)
	require.NoError(t, err)
	// octant walk (0,5) (1,5) (2,5) (3,4) (4,3), eight mirrors each
	require.Len(t, got, 40)
	diff(t, pts(0, 5, 0, 5, 0, -5, 0, -5, 5, 0, -5, 0, 5, 0, -5, 0), got[:8])

	for _, p := range []Point{{5, 0}, {0, 5}, {-5, 0}, {0, -5}, {3, 4}, {-4, -3}} {
		assert.Contains(t, got, p)
	}
	for _, p := range got {
		d2 := p.X*p.X + p.Y*p.Y
		if math.Abs(float64(d2-25)) > 5 {
			t.Errorf("point %v too far from r=5 (d²=%d)", p, d2)
		}
	}
}

func TestCircleSymmetry(t *testing.T) {
	for _, r := range []int{0, 1, 2, 7, 50, 200} {
		cx, cy := 13, -4
		got, err := Circle(cx, cy, r)
		require.NoError(t, err)
		set := make(map[Point]bool, len(got))
		for _, p := range got {
			set[Point{p.X - cx, p.Y - cy}] = true
		}
		for p := range set {
			x, y := p.X, p.Y
			for _, q := range []Point{
				{x, y}, {-x, y}, {x, -y}, {-x, -y},
				{y, x}, {-y, x}, {y, -x}, {-y, -x},
			} {
				if !set[q] {
					t.Errorf("r=%d: %v present but mirror %v missing", r, p, q)
				}
			}
		}
	}
}

func TestCircleRadialError(t *testing.T) {
	for _, r := range []int{1, 5, 10, 33, 100, 400} {
		got, err := Circle(0, 0, r)
		require.NoError(t, err)
		for _, p := range got {
			d := math.Hypot(float64(p.X), float64(p.Y))
			if math.Abs(d-float64(r)) > 0.5+1e-9 {
				t.Errorf("r=%d: point %v at distance %v", r, p, d)
			}
		}
	}
}

func TestCircleOctantOrder(t *testing.T) {
	got, err := Circle(0, 0, 60)
	require.NoError(t, err)
	require.Zero(t, len(got)%8)
	prevX, prevY := -1, 61
	for i := 0; i < len(got); i += 8 {
		p := got[i]
		assert.Equal(t, prevX+1, p.X, "octant x must advance by one")
		assert.Contains(t, []int{0, 1}, prevY-p.Y)
		prevX, prevY = p.X, p.Y
	}
}

func TestCircleZeroRadius(t *testing.T) {
	got, err := Circle(3, 4, 0)
	require.NoError(t, err)
	require.Len(t, got, 8)
	for _, p := range got {
		assert.Equal(t, Point{3, 4}, p)
	}
}

func TestCircleNegativeRadius(t *testing.T) {
	got, err := Circle(0, 0, -1)
	require.ErrorIs(t, err, ErrInvalidArgument)
	assert.Nil(t, got)
}

func TestCircleIdempotent(t *testing.T) {
	a, err := Circle(400, 400, 200)
	require.NoError(t, err)
	b, err := Circle(400, 400, 200)
	require.NoError(t, err)
	diff(t, a, b)
}

func TestCapHintClampsOverflow(t *testing.T) {
	assert.Equal(t, 10, capHint(10))
	assert.Equal(t, maxPrealloc, capHint(maxPrealloc+1))
	// 8*(r*3/4+2) wraps negative for r near MaxInt
	r := math.MaxInt / 2
	assert.Equal(t, maxPrealloc, capHint(8*(r*3/4+2)))
}

func TestCheckCircle(t *testing.T) {
	assert.NoError(t, CheckCircle(0))
	assert.ErrorIs(t, CheckCircle(-1), ErrInvalidArgument)
}
