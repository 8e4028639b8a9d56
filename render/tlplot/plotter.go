package tlplot

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"

	"github.com/lanedraw/lanedraw/canvas"
	"github.com/lanedraw/lanedraw/render"
)

func init() {
	render.Register("raster", &plotRenderer{format: "png"})
	render.Register("svg", &plotRenderer{format: "svg"})
}

// Figure is the artifact the gonum renderers produce. Plot stays
// accessible so callers can compose it further before saving.
type Figure struct {
	Plot   *plot.Plot
	Width  vg.Length
	Height vg.Length
	Format string
	// DPI is the raster density used when the figure is written to a
	// pixel format; vector formats ignore it.
	DPI int
}

type plotRenderer struct {
	format string
}

var _ render.SurfaceRenderer = &plotRenderer{}

func (r *plotRenderer) Render(c *canvas.Canvas) (render.Artifact, error) {
	p := plot.New()
	if err := BuildPlotOn(p, c); err != nil {
		return nil, err
	}
	w, h := figureSize(c)
	dpi := c.Style().Int("formatter.general.dpi")
	return &Figure{Plot: p, Width: w, Height: h, Format: r.format, DPI: dpi}, nil
}

// RenderOn composes the diagram into a caller-owned *plot.Plot.
func (r *plotRenderer) RenderOn(c *canvas.Canvas, surface interface{}) (render.Artifact, error) {
	p, ok := surface.(*plot.Plot)
	if !ok {
		return nil, fmt.Errorf("render/tlplot: surface must be a *plot.Plot, got %T", surface)
	}
	if err := BuildPlotOn(p, c); err != nil {
		return nil, err
	}
	w, h := figureSize(c)
	dpi := c.Style().Int("formatter.general.dpi")
	return &Figure{Plot: p, Width: w, Height: h, Format: r.format, DPI: dpi}, nil
}

func (r *plotRenderer) Save(a render.Artifact, path string) error {
	fig, ok := a.(*Figure)
	if !ok {
		return fmt.Errorf("%w: artifact is %T, want *tlplot.Figure", render.ErrPersistence, a)
	}
	if err := SaveFigure(fig, path); err != nil {
		return fmt.Errorf("%w: %v", render.ErrPersistence, err)
	}
	return nil
}

// BuildPlotOn configures a plot to show the canvas: viewport from the
// resolved window, X ticks from the axis layout, lane names drawn by
// the timeline plotter itself.
func BuildPlotOn(p *plot.Plot, c *canvas.Canvas) error {
	if len(c.VisibleLanes()) == 0 && len(c.Primitives()) == 0 {
		return fmt.Errorf("tlplot: canvas has no visible content; was Update called?")
	}
	cfg := c.Style()
	axis := c.Axis()

	tp := NewTimelinePlot(c)
	p.Add(tp)

	ticks := make([]plot.Tick, len(axis.Ticks))
	for i, t := range axis.Ticks {
		ticks[i] = plot.Tick{Value: t, Label: axis.Labels[i]}
	}
	p.X.Label.Text = axis.Caption
	p.X.Tick.Marker = plot.ConstantTicks(ticks)
	p.X.Tick.Label.Font.Size = vg.Points(cfg.Float("formatter.text_size.axis_label"))
	p.BackgroundColor = cfg.Color("formatter.color.background")
	p.HideY()

	win := c.Window()
	p.X.Min, p.X.Max = win.Min, win.Max
	ymin, ymax := bandRange(c)
	p.Y.Min, p.Y.Max = ymin, ymax
	return nil
}

func bandRange(c *canvas.Canvas) (float64, float64) {
	cfg := c.Style()
	n := len(c.VisibleLanes())
	if n == 0 {
		n = 1
	}
	return -0.5 - cfg.Float("formatter.margin.bottom"),
		float64(n) - 0.5 + cfg.Float("formatter.margin.top")
}

func figureSize(c *canvas.Canvas) (vg.Length, vg.Length) {
	cfg := c.Style()
	n := len(c.VisibleLanes())
	if n == 0 {
		n = 1
	}
	w := vg.Length(cfg.Float("formatter.general.fig_width")) * vg.Inch
	h := vg.Length(cfg.Float("formatter.general.fig_unit_height")*float64(n)) * vg.Inch
	margins := vg.Length(cfg.Float("formatter.margin.top")+cfg.Float("formatter.margin.bottom")) * vg.Inch
	return w, h + margins
}
