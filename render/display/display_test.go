package display

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"

	"github.com/lanedraw/lanedraw/render"
	"github.com/lanedraw/lanedraw/render/tlplot"
)

func TestSaveRejectsForeignArtifact(t *testing.T) {
	require := require.New(t)
	err := (&windowRenderer{}).Save("not a figure", filepath.Join(t.TempDir(), "out.png"))
	require.ErrorIs(err, render.ErrPersistence)
	require.Contains(err.Error(), "string")
}

func TestSaveReportsUnderlyingError(t *testing.T) {
	require := require.New(t)
	fig := &tlplot.Figure{Plot: plot.New(), Width: vg.Inch, Height: vg.Inch, Format: "png", DPI: 96}

	err := (&windowRenderer{}).Save(fig, filepath.Join(t.TempDir(), "missing", "out.png"))
	require.ErrorIs(err, render.ErrPersistence)
	require.Contains(err.Error(), "out.png")
}
