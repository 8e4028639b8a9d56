package tlplot

import (
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-multierror"
	vgdraw "gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgsvg"
)

// WriteFigure encodes a figure into the writer. Raster output is drawn
// at the figure's DPI; vector output carries no pixel density.
func WriteFigure(fig *Figure, output io.Writer) error {
	switch fig.Format {
	case "png":
		dpi := fig.DPI
		if dpi <= 0 {
			dpi = vgimg.DefaultDPI
		}
		c := vgimg.NewWith(vgimg.UseWH(fig.Width, fig.Height), vgimg.UseDPI(dpi))
		fig.Plot.Draw(vgdraw.New(c))
		_, err := vgimg.PngCanvas{Canvas: c}.WriteTo(output)
		return err
	case "svg":
		c := vgsvg.New(fig.Width, fig.Height)
		fig.Plot.Draw(vgdraw.New(c))
		_, err := c.WriteTo(output)
		return err
	default:
		return fmt.Errorf("tlplot: unsupported figure format %q", fig.Format)
	}
}

func combineErrors(errors ...error) (err error) {
	for _, e := range errors {
		switch {
		case e == nil:
			// ignore
		case err == nil:
			err = e
		default:
			err = multierror.Append(err, e)
		}
	}
	return err
}

// WriteCloseFigure writes the figure and closes the output on every
// exit path, reporting both failures when both occur.
func WriteCloseFigure(fig *Figure, output io.WriteCloser) (err error) {
	defer func() {
		e := output.Close()
		err = combineErrors(err, e)
	}()
	return WriteFigure(fig, output)
}

// SaveFigure persists a figure to a file, creating or truncating it.
func SaveFigure(fig *Figure, path string) error {
	output, err := os.Create(path)
	if err != nil {
		return err
	}
	return WriteCloseFigure(fig, output)
}
