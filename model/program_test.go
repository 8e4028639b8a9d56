package model_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lanedraw/lanedraw/model"
)

func TestNewProgramComputesDurationAndLanes(t *testing.T) {
	require := require.New(t)
	p, err := model.NewProgram(nil, []model.ScheduleEntry{
		{Name: "x", Lanes: []model.Lane{model.Qubit(1)}, T0: 0, Duration: 160},
		{Name: "cx", Lanes: []model.Lane{model.Qubit(0), model.Qubit(1)}, T0: 160, Duration: 800},
		{Name: "measure", Lanes: []model.Lane{model.Qubit(0), model.Clbit(0)}, T0: 960, Duration: 1200},
	})
	require.NoError(err)
	require.Equal(model.Ticks(2160), p.Duration())
	// Lanes are deduplicated and sorted: quantum first, then classical.
	require.Equal([]model.Lane{model.Qubit(0), model.Qubit(1), model.Clbit(0)}, p.Lanes())
}

func TestNewProgramRejectsUnscheduledEntries(t *testing.T) {
	require := require.New(t)
	_, err := model.NewProgram(nil, []model.ScheduleEntry{
		{Name: "x", Lanes: []model.Lane{model.Qubit(0)}, T0: -1, Duration: 160},
	})
	require.ErrorIs(err, model.ErrUnscheduled)

	_, err = model.NewProgram(nil, []model.ScheduleEntry{
		{Name: "x", Lanes: []model.Lane{model.Qubit(0)}, T0: 0, Duration: -1},
	})
	require.ErrorIs(err, model.ErrUnscheduled)
}

func TestNewProgramRejectsEmptyProgram(t *testing.T) {
	_, err := model.NewProgram(nil, nil)
	require.ErrorIs(t, err, model.ErrEmptyProgram)
}

func TestEntryPredicates(t *testing.T) {
	require := require.New(t)
	barrier := model.ScheduleEntry{Name: "barrier", Lanes: []model.Lane{model.Qubit(0), model.Qubit(1)}}
	require.True(barrier.IsBarrier())
	require.False(barrier.IsFrameChange())
	require.False(barrier.IsLink())

	fc := model.ScheduleEntry{Name: "rz", Lanes: []model.Lane{model.Qubit(0)}, Duration: 0}
	require.True(fc.IsFrameChange())

	cx := model.ScheduleEntry{Name: "cx", Lanes: []model.Lane{model.Qubit(0), model.Qubit(1)}, Duration: 800}
	require.True(cx.IsLink())
	require.True(cx.Touches(model.Qubit(1)))
	require.False(cx.Touches(model.Qubit(2)))
}

func TestLaneOrderAndString(t *testing.T) {
	require := require.New(t)
	require.True(model.Qubit(3).Less(model.Clbit(0)))
	require.True(model.Qubit(0).Less(model.Qubit(1)))
	require.Equal("q2", model.Qubit(2).String())
	require.Equal("c0", model.Clbit(0).String())
}

func TestLoadProgram(t *testing.T) {
	require := require.New(t)
	path := filepath.Join(t.TempDir(), "program.yaml")
	contents := `
qubits: 2
clbits: 1
entries:
  - name: h
    qubits: [0]
    t0: 0
    duration: 160
  - name: cx
    qubits: [0, 1]
    t0: 160
    duration: 800
  - name: measure
    qubits: [0]
    clbits: [0]
    t0: 960
    duration: 1200
`
	require.NoError(os.WriteFile(path, []byte(contents), 0o644))

	p, err := model.LoadProgram(path)
	require.NoError(err)
	require.Len(p.Entries(), 3)
	require.Equal(model.Ticks(2160), p.Duration())
	require.Equal([]model.Lane{model.Qubit(0), model.Qubit(1), model.Clbit(0)}, p.Lanes())
}
