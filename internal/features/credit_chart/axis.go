package credit_chart

import (
	"fmt"
)

type Orient int

const (
	OrientBottom Orient = iota
	OrientLeft
)

type Tick struct {
	Value float64
	Pos   float64 // pixel offset along the axis
	Label string
}

// Axis is a set of ticks plus the line geometry needed to draw them. A tick line
// runs TickSize pixels from the axis origin, downwards for OrientBottom and leftwards
// for OrientLeft; a negative size reverses it. Ticks as long as the draw area are gridlines.
type Axis struct {
	Orient      Orient
	Class       string
	Ticks       []Tick
	TickSize    int
	TickPadding int
	RangeStart  float64
	RangeEnd    float64
}

const defaultTickPadding = 10

// NewXAxis builds the hands axis. Its ticks span the whole draw height.
func NewXAxis(scale *LinearScale, drawHeight, ticks int) Axis {
	return newAxis(OrientBottom, "xTick", scale, drawHeight, ticks)
}

// NewYAxis builds the credits axis with labels left of the plot and gridlines
// across the whole draw width.
func NewYAxis(scale *LinearScale, drawWidth, ticks int) Axis {
	return newAxis(OrientLeft, "yTick", scale, -drawWidth, ticks)
}

func newAxis(orient Orient, class string, scale *LinearScale, tickSize, count int) Axis {
	format := scale.TickFormat(count)
	values := scale.Ticks(count)

	ticks := make([]Tick, len(values))
	for i, v := range values {
		ticks[i] = Tick{Value: v, Pos: scale.Map(v), Label: format(v)}
	}

	return Axis{
		Orient:      orient,
		Class:       class,
		Ticks:       ticks,
		TickSize:    tickSize,
		TickPadding: defaultTickPadding,
		RangeStart:  scale.R0,
		RangeEnd:    scale.R1,
	}
}

// TickLine returns the end point of a tick line that starts at the tick origin.
func (a Axis) TickLine() (x2, y2 int) {
	if a.Orient == OrientLeft {
		return -a.TickSize, 0
	}
	return 0, a.TickSize
}

// LabelAnchor returns where a tick label sits relative to the tick origin.
func (a Axis) LabelAnchor() (x, y int) {
	offset := max(a.TickSize, 0) + a.TickPadding
	if a.Orient == OrientLeft {
		return -offset, 0
	}
	return 0, offset
}

// DomainPath outlines the axis range with end ticks of TickSize.
func (a Axis) DomainPath() string {
	if a.Orient == OrientLeft {
		return fmt.Sprintf("M%s,%sH0V%sH%s",
			formatNum(float64(-a.TickSize)), formatNum(a.RangeStart), formatNum(a.RangeEnd), formatNum(float64(-a.TickSize)))
	}
	return fmt.Sprintf("M%s,%sV0H%sV%s",
		formatNum(a.RangeStart), formatNum(float64(a.TickSize)), formatNum(a.RangeEnd), formatNum(float64(a.TickSize)))
}

// TickTransform positions a tick group.
func (a Axis) TickTransform(t Tick) string {
	if a.Orient == OrientLeft {
		return fmt.Sprintf("translate(0,%s)", formatNum(t.Pos))
	}
	return fmt.Sprintf("translate(%s,0)", formatNum(t.Pos))
}
