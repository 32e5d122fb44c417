package credit_chart

import (
	"strconv"
	"strings"
)

type Point struct {
	X, Y float64
}

type Op int

const (
	MoveTo Op = iota
	LineTo
	CubicTo
)

// Segment is one path command. CubicTo carries two control points and the end point.
type Segment struct {
	Op  Op
	Pts []Point
}

type Path []Segment

// B-spline to Bézier conversion weights for the three points of each cubic.
var (
	basisC1  = [4]float64{0, 2.0 / 3, 1.0 / 3, 0}
	basisC2  = [4]float64{0, 1.0 / 3, 2.0 / 3, 0}
	basisEnd = [4]float64{0, 1.0 / 6, 2.0 / 3, 1.0 / 6}
)

func dot4(w, v [4]float64) float64 {
	return w[0]*v[0] + w[1]*v[1] + w[2]*v[2] + w[3]*v[3]
}

// Basis smooths a polyline with a uniform cubic B-spline. The curve starts at the
// first point and ends at the last one but only approximates the points in between.
// Fewer than three points fall back to straight segments; one point yields a lone MoveTo.
func Basis(pts []Point) Path {
	n := len(pts)
	switch n {
	case 0:
		return nil
	case 1:
		return Path{{Op: MoveTo, Pts: []Point{pts[0]}}}
	case 2:
		return Path{
			{Op: MoveTo, Pts: []Point{pts[0]}},
			{Op: LineTo, Pts: []Point{pts[1]}},
		}
	}

	p0 := pts[0]
	px := [4]float64{p0.X, p0.X, p0.X, pts[1].X}
	py := [4]float64{p0.Y, p0.Y, p0.Y, pts[1].Y}

	path := make(Path, 0, n+2)
	path = append(path,
		Segment{Op: MoveTo, Pts: []Point{p0}},
		Segment{Op: LineTo, Pts: []Point{{dot4(basisEnd, px), dot4(basisEnd, py)}}},
	)

	// The last point is repeated once so the spline is clamped at the end.
	for i := 2; i <= n; i++ {
		next := pts[min(i, n-1)]
		px = [4]float64{px[1], px[2], px[3], next.X}
		py = [4]float64{py[1], py[2], py[3], next.Y}
		path = append(path, Segment{Op: CubicTo, Pts: []Point{
			{dot4(basisC1, px), dot4(basisC1, py)},
			{dot4(basisC2, px), dot4(basisC2, py)},
			{dot4(basisEnd, px), dot4(basisEnd, py)},
		}})
	}

	return append(path, Segment{Op: LineTo, Pts: []Point{pts[n-1]}})
}

// SVG renders the path as SVG path data, e.g. "M0,570L12,560C...".
func (p Path) SVG() string {
	var b strings.Builder
	for _, seg := range p {
		switch seg.Op {
		case MoveTo:
			b.WriteByte('M')
		case LineTo:
			b.WriteByte('L')
		case CubicTo:
			b.WriteByte('C')
		}
		for i, pt := range seg.Pts {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(formatNum(pt.X))
			b.WriteByte(',')
			b.WriteString(formatNum(pt.Y))
		}
	}
	return b.String()
}

// Start and End return the first and last points the path passes through.
func (p Path) Start() Point {
	return p[0].Pts[0]
}

func (p Path) End() Point {
	last := p[len(p)-1]
	return last.Pts[len(last.Pts)-1]
}

func formatNum(v float64) string {
	if v == 0 {
		v = 0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
