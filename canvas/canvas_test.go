package canvas_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lanedraw/lanedraw/canvas"
	"github.com/lanedraw/lanedraw/draw"
	"github.com/lanedraw/lanedraw/gen"
	"github.com/lanedraw/lanedraw/layout"
	"github.com/lanedraw/lanedraw/model"
	"github.com/lanedraw/lanedraw/style"
)

var errBoom = errors.New("boom")

func mustProgram(t *testing.T, entries ...model.ScheduleEntry) *model.Program {
	t.Helper()
	p, err := model.NewProgram(nil, entries)
	require.NoError(t, err)
	return p
}

func standardConfig(t *testing.T, overrides map[string]interface{}) *style.Config {
	t.Helper()
	cfg, err := style.Resolve(style.Standard(), overrides)
	require.NoError(t, err)
	return cfg
}

func updatedCanvas(t *testing.T, cfg *style.Config, p *model.Program) *canvas.Canvas {
	t.Helper()
	c := canvas.New(cfg)
	require.NoError(t, c.LoadProgram(p))
	require.NoError(t, c.Update())
	return c
}

func countTags(prims []draw.Primitive) map[draw.Tag]int {
	counts := make(map[draw.Tag]int)
	for _, p := range prims {
		counts[p.Tag()]++
	}
	return counts
}

// smallProgram covers gates, a multi-lane gate, a frame change, a delay,
// a barrier, and a measurement into a classical lane.
func smallProgram(t *testing.T) *model.Program {
	return mustProgram(t,
		model.ScheduleEntry{Name: "h", Lanes: []model.Lane{model.Qubit(0)}, T0: 0, Duration: 160},
		model.ScheduleEntry{Name: "rz", Lanes: []model.Lane{model.Qubit(1)}, T0: 0, Duration: 0},
		model.ScheduleEntry{Name: model.OpDelay, Lanes: []model.Lane{model.Qubit(1)}, T0: 0, Duration: 160},
		model.ScheduleEntry{Name: "cx", Lanes: []model.Lane{model.Qubit(0), model.Qubit(1)}, T0: 160, Duration: 800},
		model.ScheduleEntry{Name: model.OpBarrier, Lanes: []model.Lane{model.Qubit(0), model.Qubit(1)}, T0: 960},
		model.ScheduleEntry{Name: "measure", Lanes: []model.Lane{model.Qubit(0), model.Clbit(0)}, T0: 960, Duration: 1200},
	)
}

func TestUpdateRequiresProgram(t *testing.T) {
	c := canvas.New(standardConfig(t, nil))
	require.ErrorIs(t, c.Update(), canvas.ErrNoProgram)
}

func TestUpdateIsIdempotent(t *testing.T) {
	require := require.New(t)
	c := updatedCanvas(t, standardConfig(t, nil), smallProgram(t))

	prims := c.Primitives()
	window := c.Window()
	visible := c.VisibleLanes()
	axis := c.Axis()

	require.NoError(c.Update())
	require.Equal(prims, c.Primitives())
	require.Equal(window, c.Window())
	require.Equal(visible, c.VisibleLanes())
	require.Equal(axis, c.Axis())
}

func TestDefaultWindowHonorsMinimumDuration(t *testing.T) {
	require := require.New(t)
	p := mustProgram(t,
		model.ScheduleEntry{Name: "x", Lanes: []model.Lane{model.Qubit(0)}, T0: 0, Duration: 10},
	)
	c := updatedCanvas(t, standardConfig(t, nil), p)

	// Duration 10 is below the 50dt floor; margins are 2% on each side.
	require.Equal(model.Window{Min: -1, Max: 51}, c.Window())
}

func TestDefaultWindowFollowsProgramDuration(t *testing.T) {
	require := require.New(t)
	c := updatedCanvas(t, standardConfig(t, nil), smallProgram(t))
	require.Equal(model.Window{Min: -43.2, Max: 2203.2}, c.Window())
}

func TestExplicitTimeRangeWins(t *testing.T) {
	require := require.New(t)
	c := canvas.New(standardConfig(t, nil))
	require.NoError(c.LoadProgram(smallProgram(t)))
	c.SetTimeRange(100, 500)
	require.NoError(c.Update())
	require.Equal(model.Window{Min: 100, Max: 500}, c.Window())
}

func TestVisibleLanesAndRows(t *testing.T) {
	require := require.New(t)
	c := updatedCanvas(t, standardConfig(t, nil), smallProgram(t))

	require.Equal([]model.Lane{model.Qubit(0), model.Qubit(1), model.Clbit(0)}, c.VisibleLanes())
	row, ok := c.Row(model.Qubit(0))
	require.True(ok)
	require.Equal(0, row)
	_, ok = c.Row(model.Qubit(7))
	require.False(ok)
}

func TestDisableLaneRemovesAnchoredPrimitives(t *testing.T) {
	require := require.New(t)
	c := canvas.New(standardConfig(t, nil))
	require.NoError(c.LoadProgram(smallProgram(t)))
	c.SetDisableLane(model.Qubit(1), true)
	require.NoError(c.Update())

	require.Equal([]model.Lane{model.Qubit(0), model.Clbit(0)}, c.VisibleLanes())
	for _, p := range c.Primitives() {
		for _, lane := range p.Lanes() {
			require.NotEqual(model.Qubit(1), lane)
		}
	}
	// The cx gate and the barrier touch q1, so they disappear entirely;
	// h on q0 stays.
	// h draws one box; measure draws one per occupied lane (q0, c0) and
	// still links them. Only the cx link and the barrier disappear.
	counts := countTags(c.Primitives())
	require.Equal(3, counts[draw.TagGateBox])
	require.Equal(1, counts[draw.TagGateLink])
	require.Zero(counts[draw.TagBarrier])

	// Re-enabling the lane brings everything back.
	c.SetDisableLane(model.Qubit(1), false)
	require.NoError(c.Update())
	require.Len(c.VisibleLanes(), 3)
}

func TestDisableTagRemovesExactlyThatTag(t *testing.T) {
	require := require.New(t)
	c := canvas.New(standardConfig(t, nil))
	require.NoError(c.LoadProgram(smallProgram(t)))
	c.SetDisableTag(draw.TagGateName, true)
	require.NoError(c.Update())

	counts := countTags(c.Primitives())
	require.Zero(counts[draw.TagGateName])
	require.NotZero(counts[draw.TagGateBox])
	require.NotZero(counts[draw.TagLaneLabel])
}

func TestHidingLabelsKeepsLaneNames(t *testing.T) {
	require := require.New(t)
	c := canvas.New(standardConfig(t, nil))
	require.NoError(c.LoadProgram(smallProgram(t)))
	c.SetDisableTag(draw.TagGateName, true)
	c.SetDisableTag(draw.TagGateParam, true)
	c.SetDisableTag(draw.TagDelayLabel, true)
	require.NoError(c.Update())

	counts := countTags(c.Primitives())
	require.Zero(counts[draw.TagGateName])
	require.Zero(counts[draw.TagGateParam])
	require.Zero(counts[draw.TagDelayLabel])
	require.Equal(3, counts[draw.TagLaneLabel])
}

func TestHideClassicalLanes(t *testing.T) {
	require := require.New(t)
	cfg := standardConfig(t, nil)
	require.NoError(cfg.SetControl(style.KeyShowClbits, false))
	c := updatedCanvas(t, cfg, smallProgram(t))

	require.Equal([]model.Lane{model.Qubit(0), model.Qubit(1)}, c.VisibleLanes())
	for _, p := range c.Primitives() {
		for _, lane := range p.Lanes() {
			require.Equal(model.QuantumLane, lane.Kind)
		}
	}
}

func TestHideIdleLanes(t *testing.T) {
	require := require.New(t)
	p := mustProgram(t,
		model.ScheduleEntry{Name: "x", Lanes: []model.Lane{model.Qubit(0)}, T0: 0, Duration: 160},
		// q1 and q2 carry nothing but this barrier, so they are idle.
		model.ScheduleEntry{Name: model.OpBarrier, Lanes: []model.Lane{model.Qubit(0), model.Qubit(1), model.Qubit(2)}, T0: 160},
	)
	cfg := standardConfig(t, nil)
	require.NoError(cfg.SetControl(style.KeyShowIdle, false))
	c := updatedCanvas(t, cfg, p)

	require.Equal([]model.Lane{model.Qubit(0)}, c.VisibleLanes())
	// The barrier spans hidden lanes and is dropped with them.
	require.Zero(countTags(c.Primitives())[draw.TagBarrier])
}

func TestHideBarriersAndDelays(t *testing.T) {
	require := require.New(t)
	cfg := standardConfig(t, nil)
	require.NoError(cfg.SetControl(style.KeyShowBarriers, false))
	require.NoError(cfg.SetControl(style.KeyShowDelays, false))
	c := updatedCanvas(t, cfg, smallProgram(t))

	counts := countTags(c.Primitives())
	require.Zero(counts[draw.TagBarrier])
	require.Zero(counts[draw.TagDelayLabel])
	require.NotZero(counts[draw.TagGateBox])
}

func TestPrimitivesSortedByLayer(t *testing.T) {
	require := require.New(t)
	c := updatedCanvas(t, standardConfig(t, nil), smallProgram(t))

	prims := c.Primitives()
	require.NotEmpty(prims)
	for i := 1; i < len(prims); i++ {
		require.LessOrEqual(prims[i-1].Layer(), prims[i].Layer())
	}
}

func TestOverlappingLinksAreSpreadApart(t *testing.T) {
	require := require.New(t)
	p := mustProgram(t,
		model.ScheduleEntry{Name: "cx", Lanes: []model.Lane{model.Qubit(0), model.Qubit(1)}, T0: 0, Duration: 100},
		model.ScheduleEntry{Name: "cx", Lanes: []model.Lane{model.Qubit(2), model.Qubit(3)}, T0: 0, Duration: 100},
	)
	c := updatedCanvas(t, standardConfig(t, nil), p)

	var times []float64
	for _, prim := range c.Primitives() {
		if line, ok := prim.(draw.Line); ok && line.Kind == draw.TagGateLink {
			times = append(times, line.Time)
		}
	}
	// Both links fall at t=50; the second is pushed out by the 20dt
	// link interval.
	require.Equal([]float64{50, 70}, times)
}

func TestFailedUpdateKeepsPreviousState(t *testing.T) {
	require := require.New(t)
	fail := false
	order := func(lanes []model.Lane) []model.Lane {
		if fail {
			return lanes[:0]
		}
		return layout.IndexOrder(lanes)
	}
	cfg := standardConfig(t, map[string]interface{}{"layout.bit_arrange": order})
	c := updatedCanvas(t, cfg, smallProgram(t))

	prims := c.Primitives()
	visible := c.VisibleLanes()

	fail = true
	err := c.Update()
	require.ErrorIs(err, canvas.ErrLayout)
	require.Equal(prims, c.Primitives())
	require.Equal(visible, c.VisibleLanes())
}

func TestBrokenAxisMapRejected(t *testing.T) {
	require := require.New(t)
	axisMap := func(w model.Window) layout.Axis {
		return layout.Axis{Ticks: []float64{0, 10}, Labels: []string{"0"}}
	}
	cfg := standardConfig(t, map[string]interface{}{"layout.time_axis_map": axisMap})
	c := canvas.New(cfg)
	require.NoError(c.LoadProgram(smallProgram(t)))
	require.ErrorIs(c.Update(), canvas.ErrLayout)
}

func TestFailingGeneratorAbortsUpdate(t *testing.T) {
	require := require.New(t)
	boom := func(e model.ScheduleEntry, s gen.Style) ([]draw.Primitive, error) {
		return nil, errBoom
	}
	cfg := standardConfig(t, map[string]interface{}{
		"generator.gates": []interface{}{boom},
	})
	c := canvas.New(cfg)
	require.NoError(c.LoadProgram(smallProgram(t)))
	require.ErrorIs(c.Update(), canvas.ErrGenerator)
	require.Empty(c.Primitives())
}
