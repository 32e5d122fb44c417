package credit_chart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertSegment(t *testing.T, want Segment, got Segment) {
	t.Helper()
	require.Equal(t, want.Op, got.Op)
	require.Len(t, got.Pts, len(want.Pts))
	for i := range want.Pts {
		assert.InDelta(t, want.Pts[i].X, got.Pts[i].X, 1e-9)
		assert.InDelta(t, want.Pts[i].Y, got.Pts[i].Y, 1e-9)
	}
}

func TestBasisEmpty(t *testing.T) {
	assert.Nil(t, Basis(nil))
}

func TestBasisSinglePoint(t *testing.T) {
	p := Basis([]Point{{0, 570}})
	require.Len(t, p, 1)
	assert.Equal(t, MoveTo, p[0].Op)
	assert.Equal(t, "M0,570", p.SVG())
}

func TestBasisTwoPointsIsStraight(t *testing.T) {
	p := Basis([]Point{{0, 570}, {1520, 0}})
	assert.Equal(t, "M0,570L1520,0", p.SVG())
	assert.Equal(t, Point{0, 570}, p.Start())
	assert.Equal(t, Point{1520, 0}, p.End())
}

func TestBasisThreePoints(t *testing.T) {
	p := Basis([]Point{{0, 0}, {3, 3}, {6, 0}})

	want := Path{
		{Op: MoveTo, Pts: []Point{{0, 0}}},
		{Op: LineTo, Pts: []Point{{0.5, 0.5}}},
		{Op: CubicTo, Pts: []Point{{1, 1}, {2, 2}, {3, 2}}},
		{Op: CubicTo, Pts: []Point{{4, 2}, {5, 1}, {5.5, 0.5}}},
		{Op: LineTo, Pts: []Point{{6, 0}}},
	}
	require.Len(t, p, len(want))
	for i := range want {
		assertSegment(t, want[i], p[i])
	}
}

func TestBasisEndpointsAndLength(t *testing.T) {
	pts := make([]Point, 101)
	for i := range pts {
		pts[i] = Point{X: float64(i) * 15.2, Y: float64(i%7) * 10}
	}

	p := Basis(pts)
	// M, L, n-1 cubics, closing L
	assert.Len(t, p, len(pts)+2)
	assert.Equal(t, pts[0], p.Start())
	assert.Equal(t, pts[len(pts)-1], p.End())
}

func TestFormatNum(t *testing.T) {
	assert.Equal(t, "0", formatNum(-0.0))
	assert.Equal(t, "1520", formatNum(1520))
	assert.Equal(t, "0.5", formatNum(0.5))
	assert.Equal(t, "-12.25", formatNum(-12.25))
}
