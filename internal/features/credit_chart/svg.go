package credit_chart

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"
)

// stickyWriter keeps the first write error; svgo does not report them.
type stickyWriter struct {
	w   io.Writer
	err error
}

func (s *stickyWriter) Write(p []byte) (int, error) {
	if s.err != nil {
		return 0, s.err
	}
	n, err := s.w.Write(p)
	if err != nil {
		s.err = err
	}
	return n, err
}

func attr(name, value string) string {
	var b bytes.Buffer
	_ = xml.EscapeText(&b, []byte(value))
	return name + `="` + b.String() + `"`
}

// WriteSVG writes the chart as a standalone SVG document: a translated plot group
// holding the y axis, the x axis and one group per player path, in that order.
func (c *Chart) WriteSVG(w io.Writer) error {
	sw := &stickyWriter{w: w}
	canvas := svg.New(sw)

	canvas.Start(c.Layout.Width, c.Layout.Height)
	canvas.Gtransform(fmt.Sprintf("translate(%d,%d)", c.Layout.Margin, c.Layout.Margin))

	writeAxis(canvas, c.YAxis)
	writeAxis(canvas, c.XAxis)

	for _, line := range c.Lines {
		canvas.Group()
		canvas.Path(line.Path.SVG(), attr("class", line.Class))
		canvas.Gend()
	}

	canvas.Gend()
	canvas.End()
	return sw.err
}

func writeAxis(canvas *svg.SVG, a Axis) {
	x2, y2 := a.TickLine()
	tx, ty := a.LabelAnchor()

	dy, anchor := `dy=".71em"`, "text-anchor:middle"
	if a.Orient == OrientLeft {
		dy, anchor = `dy=".32em"`, "text-anchor:end"
	}

	canvas.Group(attr("class", a.Class))
	for _, t := range a.Ticks {
		canvas.Group(`class="tick"`, attr("transform", a.TickTransform(t)))
		canvas.Line(0, 0, x2, y2)
		canvas.Text(tx, ty, t.Label, dy, anchor)
		canvas.Gend()
	}
	canvas.Path(a.DomainPath(), `class="domain"`)
	canvas.Gend()
}

// SVG renders the chart into memory.
func (c *Chart) SVG() ([]byte, error) {
	var buf bytes.Buffer
	if err := c.WriteSVG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
