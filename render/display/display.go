// Package display shows a rendered diagram in an interactive window
// using gioui. It registers the "window" renderer; binaries that do not
// import this package report the name as unavailable.
package display

import (
	"fmt"
	"image"
	"log"
	"os"

	"gioui.org/app"
	"gioui.org/io/key"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	vgdraw "gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/lanedraw/lanedraw/canvas"
	"github.com/lanedraw/lanedraw/render"
	"github.com/lanedraw/lanedraw/render/tlplot"
)

func init() {
	render.Register("window", &windowRenderer{})
}

type windowRenderer struct{}

// Render builds the diagram and shows it in a window. It blocks until
// the window is closed, after which the process exits; select this
// renderer only from a command-line tool.
func (r *windowRenderer) Render(c *canvas.Canvas) (render.Artifact, error) {
	p := plot.New()
	if err := tlplot.BuildPlotOn(p, c); err != nil {
		return nil, err
	}
	w, h := vg.Length(14)*vg.Inch, vg.Length(8)*vg.Inch
	fig := &tlplot.Figure{
		Plot:   p,
		Width:  w,
		Height: h,
		Format: "png",
		DPI:    c.Style().Int("formatter.general.dpi"),
	}
	ShowFigure(fig)
	return fig, nil
}

func (r *windowRenderer) Save(a render.Artifact, path string) error {
	fig, ok := a.(*tlplot.Figure)
	if !ok {
		return fmt.Errorf("%w: artifact is %T, want *tlplot.Figure", render.ErrPersistence, a)
	}
	if err := tlplot.SaveFigure(fig, path); err != nil {
		return fmt.Errorf("%w: %v", render.ErrPersistence, err)
	}
	return nil
}

// plotWidget regenerates the plot image whenever the window geometry
// changes, off the UI goroutine.
type plotWidget struct {
	Plot      *plot.Plot
	DPI       int
	AdjWidth  vg.Length
	AdjHeight vg.Length

	Busy  bool
	Ready chan image.Image
	Image image.Image
}

func (p *plotWidget) genImage(w, h vg.Length) image.Image {
	c := vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(p.DPI))
	p.Plot.Draw(vgdraw.New(c))
	return c.Image()
}

func (p *plotWidget) onReady(ready image.Image) {
	if !p.Busy {
		panic("should be busy")
	}
	p.Image = ready
	p.Busy = false
}

func (p *plotWidget) getImage(size image.Point) image.Image {
	wAdjusted := vg.Points(float64(size.X) * vg.Inch.Points() / float64(p.DPI))
	hAdjusted := vg.Points(float64(size.Y) * vg.Inch.Points() / float64(p.DPI))
	if p.Image == nil {
		p.Image = p.genImage(wAdjusted, hAdjusted)
		p.AdjWidth = wAdjusted
		p.AdjHeight = hAdjusted
	} else if (p.AdjWidth != wAdjusted || p.AdjHeight != hAdjusted) && !p.Busy {
		p.Busy = true
		go func() {
			p.Ready <- p.genImage(wAdjusted, hAdjusted)
		}()
		p.AdjWidth = wAdjusted
		p.AdjHeight = hAdjusted
	}
	return p.Image
}

func (p *plotWidget) Layout(gtx layout.Context) layout.Dimensions {
	defer op.Save(gtx.Ops).Load()
	paint.NewImageOp(p.getImage(gtx.Constraints.Max)).Add(gtx.Ops)
	paint.PaintOp{}.Add(gtx.Ops)
	return layout.Dimensions{Size: gtx.Constraints.Max}
}

func (p *plotWidget) export(fig *tlplot.Figure) {
	if err := tlplot.SaveFigure(fig, "timeline.png"); err != nil {
		log.Printf("export failed: %v", err)
		return
	}
	log.Printf("exported timeline.png")
}

// ShowFigure opens the interactive viewer. Q or Escape closes the
// window and exits the process; E exports the figure to timeline.png.
func ShowFigure(fig *tlplot.Figure) {
	dpi := fig.DPI
	if dpi <= 0 {
		dpi = 128
	}
	widget := &plotWidget{
		Plot:  fig.Plot,
		DPI:   dpi,
		Ready: make(chan image.Image),
	}

	go func() {
		win := app.NewWindow(
			app.Title("Timeline"),
			app.Size(unit.Px(1024), unit.Px(768)),
		)
		defer win.Close()

		for {
			select {
			case ready := <-widget.Ready:
				widget.onReady(ready)
				win.Invalidate()
			case e := <-win.Events():
				switch e := e.(type) {
				case system.FrameEvent:
					ops := new(op.Ops)
					gtx := layout.NewContext(ops, e)
					layout.UniformInset(unit.Dp(10)).Layout(gtx, widget.Layout)
					e.Frame(ops)
				case key.Event:
					switch e.Name {
					case "Q", key.NameEscape:
						win.Close()
					case "E":
						if e.State == key.Press {
							widget.export(fig)
						}
					}
				case system.DestroyEvent:
					os.Exit(0)
				}
			}
		}
	}()

	app.Main()
}
