package credit_chart

// Credit history chart: one smoothed line per player, hands on x, credits on y.
// Render builds a Chart value holding every computed coordinate; the SVG and PNG
// writers only serialise it, so both outputs share the same geometry.

import (
	"errors"
	"fmt"

	"standings-chart/internal/features/standings"
	logging "standings-chart/internal/infra/log"

	"go.uber.org/zap"
)

const (
	chartWidth  = 1600
	chartHeight = 650
	chartMargin = 40

	xTickCount = 8
	yTickCount = 10

	lineClass = "data-line"
)

var ErrInvalidLayout = errors.New("chart layout leaves no room to draw")

type Layout struct {
	Width     int
	Height    int
	Margin    int     // applied on all four sides
	XTicks    int     // requested tick count, the scale rounds to nice steps
	YTicks    int
	LineWidth float64 // stroke width of player lines in the PNG
	FontPath  string  // TTF used for PNG tick labels; empty uses the built-in face
	FontSize  float64
}

// DefaultLayout is the 1600x650 canvas with a 40px margin.
var DefaultLayout = Layout{
	Width:     chartWidth,
	Height:    chartHeight,
	Margin:    chartMargin,
	XTicks:    xTickCount,
	YTicks:    yTickCount,
	LineWidth: 2,
	FontSize:  12,
}

func (l Layout) DrawWidth() int  { return l.Width - 2*l.Margin }
func (l Layout) DrawHeight() int { return l.Height - 2*l.Margin }

func (l Layout) validate() error {
	if l.Margin < 0 || l.DrawWidth() <= 0 || l.DrawHeight() <= 0 {
		return fmt.Errorf("%w: %dx%d with margin %d", ErrInvalidLayout, l.Width, l.Height, l.Margin)
	}
	return nil
}

type Option func(*Layout)

func WithLayout(l Layout) Option {
	return func(dst *Layout) { *dst = l }
}

func WithSize(width, height, margin int) Option {
	return func(l *Layout) {
		l.Width, l.Height, l.Margin = width, height, margin
	}
}

func WithTicks(x, y int) Option {
	return func(l *Layout) {
		l.XTicks, l.YTicks = x, y
	}
}

func WithFont(path string, size float64) Option {
	return func(l *Layout) {
		l.FontPath, l.FontSize = path, size
	}
}

// Line is one player's projected history.
type Line struct {
	Name   string
	Class  string // "data-line <name>", lets stylesheets pick out a player
	Points []Point
	Path   Path
}

// Chart is the handle returned by Render. It belongs to the caller; Update
// recomputes it in place and must not run concurrently with itself or a writer.
type Chart struct {
	Layout Layout
	Extent Extent
	X      *LinearScale
	Y      *LinearScale
	XAxis  Axis
	YAxis  Axis
	Lines  []Line
}

// Render validates the standings and computes the whole chart. Nothing is produced
// for invalid input.
func Render(s *standings.Standings, opts ...Option) (*Chart, error) {
	layout := DefaultLayout
	for _, opt := range opts {
		opt(&layout)
	}
	if err := layout.validate(); err != nil {
		return nil, err
	}

	c := &Chart{Layout: layout}
	if err := c.Update(s); err != nil {
		return nil, err
	}
	return c, nil
}

// Update replaces the chart contents with a new payload. On error the chart keeps
// its previous contents.
func (c *Chart) Update(s *standings.Standings) error {
	ext, err := ComputeExtent(s)
	if err != nil {
		return err
	}

	l := c.Layout
	x := NewLinearScale(0, float64(ext.XMax), 0, float64(l.DrawWidth()))
	y := NewLinearScale(ext.YMin, ext.YMax, float64(l.DrawHeight()), 0)

	lines := make([]Line, len(s.Players))
	for i, player := range s.Players {
		pts := make([]Point, len(player.History))
		for j, rec := range player.History {
			pts[j] = Point{X: x.Map(float64(rec.Hands)), Y: y.Map(rec.Credits)}
		}
		lines[i] = Line{
			Name:   player.Name,
			Class:  lineClass + " " + player.Name,
			Points: pts,
			Path:   Basis(pts),
		}
	}

	c.Extent = ext
	c.X, c.Y = x, y
	c.XAxis = NewXAxis(x, l.DrawHeight(), l.XTicks)
	c.YAxis = NewYAxis(y, l.DrawWidth(), l.YTicks)
	c.Lines = lines

	logging.LogDebug("Chart computed",
		zap.Int("players", len(lines)),
		zap.Int("x_max", ext.XMax),
		zap.Float64("y_min", ext.YMin),
		zap.Float64("y_max", ext.YMax))
	return nil
}

// LineFor returns the first line drawn for name.
func (c *Chart) LineFor(name string) (Line, bool) {
	for _, line := range c.Lines {
		if line.Name == name {
			return line, true
		}
	}
	return Line{}, false
}
