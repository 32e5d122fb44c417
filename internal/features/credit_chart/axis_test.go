package credit_chart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestXAxisGeometry(t *testing.T) {
	a := NewXAxis(NewLinearScale(0, 100, 0, 1520), 570, 8)

	assert.Equal(t, OrientBottom, a.Orient)
	assert.Equal(t, "xTick", a.Class)
	require.Len(t, a.Ticks, 11)

	mid := a.Ticks[5]
	assert.Equal(t, 50.0, mid.Value)
	assert.InDelta(t, 760.0, mid.Pos, 1e-9)
	assert.Equal(t, "50", mid.Label)
	assert.Equal(t, "translate(760,0)", a.TickTransform(Tick{Pos: 760}))

	x2, y2 := a.TickLine()
	assert.Equal(t, 0, x2)
	assert.Equal(t, 570, y2)

	lx, ly := a.LabelAnchor()
	assert.Equal(t, 0, lx)
	assert.Equal(t, 580, ly)

	assert.Equal(t, "M0,570V0H1520V570", a.DomainPath())
}

func TestYAxisGeometry(t *testing.T) {
	a := NewYAxis(NewLinearScale(-5, 10, 570, 0), 1520, 10)

	assert.Equal(t, OrientLeft, a.Orient)
	assert.Equal(t, "yTick", a.Class)
	assert.Equal(t, -1520, a.TickSize)

	labels := make([]string, len(a.Ticks))
	for i, tick := range a.Ticks {
		labels[i] = tick.Label
	}
	assert.Equal(t, []string{"-4", "-2", "0", "2", "4", "6", "8", "10"}, labels)

	top := a.Ticks[len(a.Ticks)-1]
	assert.Equal(t, 0.0, top.Pos)
	assert.Equal(t, "translate(0,0)", a.TickTransform(top))
	assert.InDelta(t, 532.0, a.Ticks[0].Pos, 1e-9)

	// gridlines run right across the plot, labels sit left of it
	x2, y2 := a.TickLine()
	assert.Equal(t, 1520, x2)
	assert.Equal(t, 0, y2)

	lx, ly := a.LabelAnchor()
	assert.Equal(t, -10, lx)
	assert.Equal(t, 0, ly)

	assert.Equal(t, "M1520,570H0V0H1520", a.DomainPath())
}

func TestAxisOnDegenerateScale(t *testing.T) {
	a := NewYAxis(NewLinearScale(100, 100, 570, 0), 1520, 10)

	require.Len(t, a.Ticks, 1)
	assert.Equal(t, Tick{Value: 100, Pos: 570, Label: "100"}, a.Ticks[0])
}
