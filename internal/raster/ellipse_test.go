package raster

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEllipseExtremes(t *testing.T) {
	got, err := Ellipse(0, 0, 400, 300)
	require.NoError(t, err)
	require.NotEmpty(t, got)
	assert.Equal(t, PointF{0, 300}, got[0])

	maxX := math.Inf(-1)
	for _, p := range got {
		if p.Y == 0 && p.X > maxX {
			maxX = p.X
		}
	}
	assert.InDelta(t, 400, maxX, 1)
}

func TestEllipseOnCurve(t *testing.T) {
	cases := []struct{ cx, cy, rx, ry float64 }{
		{0, 0, 400, 300},
		{400, 400, 200, 150},
		{-30, 12, 120, 350},
		{0, 0, 250, 250},
	}
	for _, c := range cases {
		got, err := Ellipse(c.cx, c.cy, c.rx, c.ry)
		require.NoError(t, err)
		for _, p := range got {
			u := (p.X - c.cx) / c.rx
			v := (p.Y - c.cy) / c.ry
			if e := math.Abs(u*u + v*v - 1); e > 0.02 {
				t.Errorf("%+v: point %v off the curve by %v", c, p, e)
			}
		}
	}
}

func TestEllipseSymmetry(t *testing.T) {
	got, err := Ellipse(5, -5, 90, 40)
	require.NoError(t, err)
	require.Zero(t, len(got)%4)
	set := make(map[PointF]bool, len(got))
	for _, p := range got {
		set[PointF{p.X - 5, p.Y + 5}] = true
	}
	for p := range set {
		for _, q := range []PointF{{-p.X, p.Y}, {p.X, -p.Y}, {-p.X, -p.Y}} {
			assert.True(t, set[q], "mirror %v of %v missing", q, p)
		}
	}
}

func TestEllipseRegionsContinuous(t *testing.T) {
	got, err := EllipseRegions(0, 0, 400, 300)
	require.NoError(t, err)

	sawTwo := false
	prev := got[0]
	assert.Equal(t, RegionSlopeBelowOne, prev.Region)
	for i := 4; i < len(got); i += 4 {
		p := got[i]
		if p.Region == RegionSlopeAtLeastOne {
			sawTwo = true
		} else {
			assert.False(t, sawTwo, "region 1 point after region 2 at %d", i)
		}
		dx := p.X - prev.X
		dy := prev.Y - p.Y
		assert.Contains(t, []float64{0, 1}, dx, "step %d", i)
		assert.Contains(t, []float64{0, 1}, dy, "step %d", i)
		assert.False(t, dx == 0 && dy == 0, "step %d stalled", i)
		prev = p
	}
	assert.True(t, sawTwo)
	assert.Equal(t, 0.0, prev.Y)
}

func TestEllipseMatchesRegions(t *testing.T) {
	plain, err := Ellipse(1, 2, 30, 20)
	require.NoError(t, err)
	tagged, err := EllipseRegions(1, 2, 30, 20)
	require.NoError(t, err)
	require.Len(t, plain, len(tagged))
	for i := range plain {
		assert.Equal(t, tagged[i].PointF, plain[i])
	}
}

func TestEllipseInvalid(t *testing.T) {
	bad := [][4]float64{
		{0, 0, 0, 5},
		{0, 0, 5, 0},
		{0, 0, -1, 5},
		{0, 0, 5, -3},
		{math.NaN(), 0, 5, 5},
		{0, 0, math.Inf(1), 5},
	}
	for _, b := range bad {
		got, err := Ellipse(b[0], b[1], b[2], b[3])
		require.ErrorIs(t, err, ErrInvalidArgument, "%v", b)
		assert.Nil(t, got)
	}
}

func TestEllipseIdempotent(t *testing.T) {
	a, err := Ellipse(0, 0, 400, 300)
	require.NoError(t, err)
	b, err := Ellipse(0, 0, 400, 300)
	require.NoError(t, err)
	diff(t, a, b)
}
