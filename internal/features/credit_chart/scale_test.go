package credit_chart

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLinearScaleBoundaries(t *testing.T) {
	x := NewLinearScale(0, 37, 0, 1520)
	assert.Equal(t, 0.0, x.Map(0))
	assert.Equal(t, 1520.0, x.Map(37))

	y := NewLinearScale(-250.5, 1800, 570, 0)
	assert.Equal(t, 570.0, y.Map(-250.5))
	assert.Equal(t, 0.0, y.Map(1800))
	assert.InDelta(t, 285.0, y.Map((1800-250.5)/2), 1e-9)
}

func TestLinearScaleInvert(t *testing.T) {
	y := NewLinearScale(-5, 10, 570, 0)
	for _, v := range []float64{-5, -1, 0, 3.5, 10} {
		assert.InDelta(t, v, y.Invert(y.Map(v)), 1e-9)
	}
}

func TestLinearScaleDegenerateDomain(t *testing.T) {
	s := NewLinearScale(100, 100, 570, 0)
	assert.Equal(t, 570.0, s.Map(100))
	assert.Equal(t, 570.0, s.Map(-3))
	assert.Equal(t, []float64{100}, s.Ticks(10))
	assert.Equal(t, "100", s.TickFormat(10)(100))
}

func TestLinearScaleTicks(t *testing.T) {
	tests := []struct {
		name   string
		d0, d1 float64
		count  int
		want   []float64
	}{
		{"credits", -5, 10, 10, []float64{-4, -2, 0, 2, 4, 6, 8, 10}},
		{"hundred hands", 0, 100, 8, []float64{0, 10, 20, 30, 40, 50, 60, 70, 80, 90, 100}},
		{"single hand", 0, 1, 8, []float64{0, 0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1}},
		{"large stacks", 0, 50000, 5, []float64{0, 10000, 20000, 30000, 40000, 50000}},
		{"reversed domain", 10, -5, 10, []float64{-4, -2, 0, 2, 4, 6, 8, 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewLinearScale(tt.d0, tt.d1, 0, 100)
			assert.Equal(t, tt.want, s.Ticks(tt.count))
		})
	}
}

func TestLinearScaleTicksStayInsideDomain(t *testing.T) {
	s := NewLinearScale(-137, 4242, 570, 0)
	for _, v := range s.Ticks(10) {
		assert.GreaterOrEqual(t, v, -137.0)
		assert.LessOrEqual(t, v, 4242.0)
	}
}

func TestTickFormat(t *testing.T) {
	assert.Equal(t, "-4", NewLinearScale(-5, 10, 0, 1).TickFormat(10)(-4))
	assert.Equal(t, "0.5", NewLinearScale(0, 1, 0, 1).TickFormat(8)(0.5))
	assert.Equal(t, "0.0", NewLinearScale(-1, 1, 0, 1).TickFormat(10)(-0.0))
	assert.Equal(t, "50,000", NewLinearScale(0, 100000, 0, 1).TickFormat(10)(50000))
}
