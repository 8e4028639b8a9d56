package lanedraw_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot"

	"github.com/lanedraw/lanedraw"
	"github.com/lanedraw/lanedraw/canvas"
	"github.com/lanedraw/lanedraw/model"
	"github.com/lanedraw/lanedraw/render"
	"github.com/lanedraw/lanedraw/render/tlplot"
	"github.com/lanedraw/lanedraw/style"
)

func sampleProgram(t *testing.T) *model.Program {
	t.Helper()
	p, err := model.NewProgram(nil, []model.ScheduleEntry{
		{Name: "h", Lanes: []model.Lane{model.Qubit(0)}, T0: 0, Duration: 160},
		{Name: "cx", Lanes: []model.Lane{model.Qubit(0), model.Qubit(1)}, T0: 160, Duration: 800},
		{Name: "measure", Lanes: []model.Lane{model.Qubit(0), model.Clbit(0)}, T0: 960, Duration: 1200},
	})
	require.NoError(t, err)
	return p
}

func TestDrawRejectsUnknownRendererBeforeLoadingProgram(t *testing.T) {
	require := require.New(t)
	// A nil program would fail later; the unknown renderer name must
	// fail first.
	artifact, err := lanedraw.Draw(nil, lanedraw.WithRenderer("svg2"))
	require.ErrorIs(err, render.ErrUnknownRenderer)
	require.Nil(artifact)
}

func TestDrawReportsUnlinkedWindowRenderer(t *testing.T) {
	require := require.New(t)
	_, err := lanedraw.Draw(nil, lanedraw.WithRenderer("window"))
	require.ErrorIs(err, render.ErrUnavailable)
	require.Contains(err.Error(), "gioui.org")
}

func TestDrawRequiresProgram(t *testing.T) {
	_, err := lanedraw.Draw(nil)
	require.ErrorIs(t, err, canvas.ErrNoProgram)
}

func TestDrawRejectsUnknownStyleKeys(t *testing.T) {
	_, err := lanedraw.Draw(sampleProgram(t),
		lanedraw.WithOverrides(map[string]interface{}{"formatter.nope": 1}))
	require.ErrorIs(t, err, style.ErrUnknownKey)
}

func TestDrawProducesFigure(t *testing.T) {
	require := require.New(t)
	artifact, err := lanedraw.Draw(sampleProgram(t))
	require.NoError(err)

	fig, ok := artifact.(*tlplot.Figure)
	require.True(ok)
	require.NotNil(fig.Plot)
	require.Equal("png", fig.Format)
}

func TestDrawSavesOutput(t *testing.T) {
	require := require.New(t)
	path := filepath.Join(t.TempDir(), "timeline.png")

	_, err := lanedraw.Draw(sampleProgram(t), lanedraw.WithOutput(path))
	require.NoError(err)

	info, err := os.Stat(path)
	require.NoError(err)
	require.NotZero(info.Size())
}

func TestDrawSVGRenderer(t *testing.T) {
	require := require.New(t)
	path := filepath.Join(t.TempDir(), "timeline.svg")

	_, err := lanedraw.Draw(sampleProgram(t),
		lanedraw.WithRenderer("svg"), lanedraw.WithOutput(path))
	require.NoError(err)

	_, err = os.Stat(path)
	require.NoError(err)
}

func TestDrawOntoCallerSurface(t *testing.T) {
	require := require.New(t)
	p := plot.New()

	artifact, err := lanedraw.Draw(sampleProgram(t), lanedraw.WithSurface(p))
	require.NoError(err)

	fig, ok := artifact.(*tlplot.Figure)
	require.True(ok)
	require.Same(p, fig.Plot)
}

func TestDrawWithPresetAndControls(t *testing.T) {
	require := require.New(t)
	_, err := lanedraw.Draw(sampleProgram(t),
		lanedraw.WithStyle(style.Simple()),
		lanedraw.ShowClassical(true),
		lanedraw.ShowLabels(false),
		lanedraw.WithTimeRange(0, 1000),
	)
	require.NoError(err)
}
