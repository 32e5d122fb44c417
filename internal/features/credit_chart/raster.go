package credit_chart

import (
	"fmt"
	"image"
	"image/color"
	"io"

	logging "standings-chart/internal/infra/log"

	"github.com/fogleman/gg"
	"go.uber.org/zap"
)

// palette cycles through category colours, one per player in draw order.
var palette = []string{
	"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd",
	"#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf",
}

var (
	gridColor  = color.RGBA{220, 220, 220, 255}
	axisColor  = color.RGBA{90, 90, 90, 255}
	labelColor = color.RGBA{60, 60, 60, 255}
)

// LineColor returns the hex colour used for the i-th player.
func LineColor(i int) string {
	return palette[i%len(palette)]
}

func (c *Chart) draw() *gg.Context {
	l := c.Layout
	dc := gg.NewContext(l.Width, l.Height)

	dc.SetColor(color.White)
	dc.Clear()

	c.loadFont(dc)

	dc.Translate(float64(l.Margin), float64(l.Margin))
	drawW, drawH := float64(l.DrawWidth()), float64(l.DrawHeight())

	dc.SetLineWidth(1)
	dc.SetDash(4, 4)
	dc.SetColor(gridColor)
	for _, t := range c.YAxis.Ticks {
		dc.DrawLine(0, t.Pos, drawW, t.Pos)
		dc.Stroke()
	}
	for _, t := range c.XAxis.Ticks {
		dc.DrawLine(t.Pos, 0, t.Pos, drawH)
		dc.Stroke()
	}
	dc.SetDash()

	dc.SetColor(axisColor)
	dc.DrawRectangle(0, 0, drawW, drawH)
	dc.Stroke()

	dc.SetColor(labelColor)
	pad := float64(c.XAxis.TickPadding)
	for _, t := range c.XAxis.Ticks {
		dc.DrawStringAnchored(t.Label, t.Pos, drawH+pad, 0.5, 1)
	}
	pad = float64(c.YAxis.TickPadding)
	for _, t := range c.YAxis.Ticks {
		dc.DrawStringAnchored(t.Label, -pad, t.Pos, 1, 0.5)
	}

	lineWidth := l.LineWidth
	if lineWidth <= 0 {
		lineWidth = DefaultLayout.LineWidth
	}
	dc.SetLineWidth(lineWidth)
	for i, line := range c.Lines {
		dc.SetHexColor(LineColor(i))
		if len(line.Path) == 1 {
			// a single record has no extent along the line; mark it with a dot
			p := line.Path.Start()
			dc.DrawCircle(p.X, p.Y, lineWidth)
			dc.Fill()
			continue
		}
		tracePath(dc, line.Path)
		dc.Stroke()
	}

	return dc
}

func tracePath(dc *gg.Context, p Path) {
	dc.NewSubPath()
	for _, seg := range p {
		switch seg.Op {
		case MoveTo:
			dc.MoveTo(seg.Pts[0].X, seg.Pts[0].Y)
		case LineTo:
			dc.LineTo(seg.Pts[0].X, seg.Pts[0].Y)
		case CubicTo:
			dc.CubicTo(seg.Pts[0].X, seg.Pts[0].Y, seg.Pts[1].X, seg.Pts[1].Y, seg.Pts[2].X, seg.Pts[2].Y)
		}
	}
}

// loadFont switches to the configured TTF; the built-in face stays in use if it fails.
func (c *Chart) loadFont(dc *gg.Context) {
	if c.Layout.FontPath == "" {
		return
	}
	size := c.Layout.FontSize
	if size <= 0 {
		size = DefaultLayout.FontSize
	}
	if err := dc.LoadFontFace(c.Layout.FontPath, size); err != nil {
		logging.LogWarn("Failed to load chart font, using built-in face",
			zap.String("path", c.Layout.FontPath),
			zap.Error(err))
	}
}

// Image rasterises the chart.
func (c *Chart) Image() image.Image {
	return c.draw().Image()
}

func (c *Chart) WritePNG(w io.Writer) error {
	if err := c.draw().EncodePNG(w); err != nil {
		return fmt.Errorf("failed to encode chart png: %w", err)
	}
	return nil
}
