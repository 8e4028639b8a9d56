// Package tlplot renders a finalized canvas with gonum/plot. It
// registers the "raster" (PNG) and "svg" renderers.
package tlplot

import (
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	vgdraw "gonum.org/v1/plot/vg/draw"

	"github.com/lanedraw/lanedraw/canvas"
	"github.com/lanedraw/lanedraw/draw"
	"github.com/lanedraw/lanedraw/model"
)

// TimelinePlot paints a canvas's primitive collection, in collection
// order, as one gonum plotter. Lane bands are one data unit tall; the
// topmost visible lane sits at the highest Y value.
type TimelinePlot struct {
	Canvas *canvas.Canvas
}

var _ plot.Plotter = &TimelinePlot{}

func NewTimelinePlot(c *canvas.Canvas) *TimelinePlot {
	return &TimelinePlot{Canvas: c}
}

// laneY converts a display row (0 = top) into the data Y coordinate.
func (t *TimelinePlot) laneY(lane model.Lane) (float64, bool) {
	row, ok := t.Canvas.Row(lane)
	n := len(t.Canvas.VisibleLanes())
	return float64(n - 1 - row), ok
}

// timeX resolves abstract edge anchors against the visible window.
func (t *TimelinePlot) timeX(tm float64) float64 {
	win := t.Canvas.Window()
	switch {
	case math.IsInf(tm, -1):
		return win.Min
	case math.IsInf(tm, 1):
		return win.Max
	default:
		return tm
	}
}

func (t *TimelinePlot) Plot(c vgdraw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)

	for _, p := range t.Canvas.Primitives() {
		switch q := p.(type) {
		case draw.Box:
			y, ok := t.laneY(q.On)
			if !ok {
				continue
			}
			x0, x1 := trX(t.timeX(q.T0)), trX(t.timeX(q.T1))
			yLo, yHi := trY(y-q.Height/2), trY(y+q.Height/2)
			pts := []vg.Point{
				{X: x0, Y: yLo},
				{X: x1, Y: yLo},
				{X: x1, Y: yHi},
				{X: x0, Y: yHi},
				{X: x0, Y: yLo},
			}
			c.FillPolygon(withAlpha(q.Fill, q.Alpha), c.ClipPolygonX(pts[0:4]))
			if q.LineWidth > 0 {
				style := vgdraw.LineStyle{
					Color: withAlpha(q.Fill, 1),
					Width: vg.Points(q.LineWidth),
				}
				c.StrokeLines(style, c.ClipLinesX(pts)...)
			}

		case draw.Line:
			x := trX(t.timeX(q.Time))
			if !c.ContainsX(x) {
				continue
			}
			yMin, yMax, ok := t.laneSpan(q.On)
			if !ok {
				continue
			}
			// Barriers cross the full band; links join lane centers.
			if q.Kind == draw.TagBarrier {
				yMin -= 0.5
				yMax += 0.5
			}
			style := vgdraw.LineStyle{
				Color: withAlpha(q.Color, q.Alpha),
				Width: vg.Points(q.Width),
			}
			if q.Style == "--" {
				style.Dashes = []vg.Length{vg.Points(6), vg.Points(4)}
			}
			c.StrokeLine2(style, x, trY(yMin), x, trY(yMax))

		case draw.Label:
			y, ok := t.laneY(q.On)
			if !ok {
				continue
			}
			style := t.textStyle(q.Size, q.Color)
			x := trX(t.timeX(q.Time))
			switch {
			case math.IsInf(q.Time, -1):
				style.XAlign = vgdraw.XLeft
				x += vg.Points(2)
			case math.IsInf(q.Time, 1):
				style.XAlign = vgdraw.XRight
				x -= vg.Points(2)
			}
			if !c.ContainsX(x) {
				continue
			}
			c.FillText(style, vg.Point{X: x, Y: trY(y + q.VOffset)}, q.Text)

		case draw.Symbol:
			y, ok := t.laneY(q.On)
			if !ok {
				continue
			}
			x := trX(t.timeX(q.Time))
			if !c.ContainsX(x) {
				continue
			}
			c.FillText(t.textStyle(q.Size, q.Color), vg.Point{X: x, Y: trY(y)}, q.Text)
		}
	}
}

// DataRange spans the resolved window horizontally and every lane band
// plus the configured top/bottom margins vertically.
func (t *TimelinePlot) DataRange() (xmin, xmax, ymin, ymax float64) {
	win := t.Canvas.Window()
	cfg := t.Canvas.Style()
	n := len(t.Canvas.VisibleLanes())
	if n == 0 {
		n = 1
	}
	ymin = -0.5 - cfg.Float("formatter.margin.bottom")
	ymax = float64(n) - 0.5 + cfg.Float("formatter.margin.top")
	return win.Min, win.Max, ymin, ymax
}

func (t *TimelinePlot) laneSpan(lanes []model.Lane) (yMin, yMax float64, ok bool) {
	yMin, yMax = math.Inf(1), math.Inf(-1)
	for _, lane := range lanes {
		y, found := t.laneY(lane)
		if !found {
			continue
		}
		yMin = math.Min(yMin, y)
		yMax = math.Max(yMax, y)
		ok = true
	}
	return yMin, yMax, ok
}

func (t *TimelinePlot) textStyle(size float64, col color.Color) text.Style {
	return text.Style{
		Color:   col,
		Font:    font.From(plotter.DefaultFont, vg.Points(size)),
		XAlign:  vgdraw.XCenter,
		YAlign:  vgdraw.YCenter,
		Handler: plot.DefaultTextHandler,
	}
}

func withAlpha(col color.Color, alpha float64) color.Color {
	if col == nil {
		col = color.Black
	}
	if alpha < 0 {
		alpha = 0
	} else if alpha > 1 {
		alpha = 1
	}
	nrgba := color.NRGBAModel.Convert(col).(color.NRGBA)
	nrgba.A = uint8(alpha * float64(nrgba.A))
	return nrgba
}
