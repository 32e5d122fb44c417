package credit_chart

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// LinearScale maps the domain [D0, D1] onto the range [R0, R1].
// The range may be inverted (R0 > R1), which is how the y axis grows upwards.
type LinearScale struct {
	D0, D1 float64
	R0, R1 float64
}

func NewLinearScale(d0, d1, r0, r1 float64) *LinearScale {
	return &LinearScale{D0: d0, D1: d1, R0: r0, R1: r1}
}

// Map projects v. Both domain ends land exactly on the range ends; a degenerate
// domain maps everything to R0.
func (s *LinearScale) Map(v float64) float64 {
	if s.D1 == s.D0 {
		return s.R0
	}
	t := (v - s.D0) / (s.D1 - s.D0)
	return s.R0*(1-t) + s.R1*t
}

// Invert is the inverse of Map.
func (s *LinearScale) Invert(px float64) float64 {
	if s.R1 == s.R0 {
		return s.D0
	}
	t := (px - s.R0) / (s.R1 - s.R0)
	return s.D0*(1-t) + s.D1*t
}

// tickStep picks a 1, 2 or 5 times power-of-ten step giving roughly count ticks.
func tickStep(lo, hi float64, count int) float64 {
	span := hi - lo
	step := math.Pow(10, math.Floor(math.Log10(span/float64(count))))
	ratio := float64(count) / span * step
	switch {
	case ratio <= .15:
		step *= 10
	case ratio <= .35:
		step *= 5
	case ratio <= .75:
		step *= 2
	}
	return step
}

func (s *LinearScale) bounds() (float64, float64) {
	return math.Min(s.D0, s.D1), math.Max(s.D0, s.D1)
}

// Ticks returns round values inside the domain, about count of them.
func (s *LinearScale) Ticks(count int) []float64 {
	lo, hi := s.bounds()
	if count <= 0 || hi == lo || math.IsInf(hi-lo, 0) || math.IsNaN(hi-lo) {
		return []float64{s.D0}
	}

	step := tickStep(lo, hi, count)
	first, last := math.Ceil(lo/step), math.Floor(hi/step)

	ticks := make([]float64, 0, int(last-first)+1)
	for i := first; i <= last; i++ {
		var v float64
		if step < 1 {
			// dividing by the inverse keeps 0.1-style steps free of accumulated error
			v = i / math.Round(1/step)
		} else {
			v = i * step
		}
		if v == 0 {
			v = 0 // drop the sign of -0
		}
		ticks = append(ticks, v)
	}
	return ticks
}

var labelPrinter = message.NewPrinter(language.English)

// TickFormat returns a formatter with just enough decimals for the tick step and
// thousands grouping.
func (s *LinearScale) TickFormat(count int) func(float64) string {
	precision := 0
	lo, hi := s.bounds()
	if count > 0 && hi > lo {
		step := tickStep(lo, hi, count)
		precision = max(0, -int(math.Floor(math.Log10(step)+.01)))
	}
	format := fmt.Sprintf("%%.%df", precision)
	return func(v float64) string {
		if v == 0 {
			v = 0
		}
		return labelPrinter.Sprintf(format, v)
	}
}
