// Package layout holds the pluggable functions that decide lane display
// order and horizontal-axis tick labeling. A configuration may install
// its own via the layout.* style keys; the canvas falls back to
// IndexOrder and TimeMap when none is installed.
package layout

import (
	"math"
	"sort"
	"strconv"

	"github.com/lanedraw/lanedraw/model"
)

// LaneOrder returns the display order of exactly the supplied lanes,
// first drawn at the top. Omitting or duplicating a lane is a contract
// violation and rejected by the canvas.
type LaneOrder func(lanes []model.Lane) []model.Lane

// AxisMap maps the visible window to horizontal tick positions and
// labels. Tick positions must be strictly increasing and inside the
// window.
type AxisMap func(window model.Window) Axis

// Axis is the resolved horizontal-axis labeling.
type Axis struct {
	Ticks   []float64
	Labels  []string
	Caption string
}

// IndexOrder arranges quantum lanes first, each kind ascending by
// index.
func IndexOrder(lanes []model.Lane) []model.Lane {
	ordered := make([]model.Lane, len(lanes))
	copy(ordered, lanes)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Less(ordered[j]) })
	return ordered
}

// TimeMap lays out about ten evenly spaced ticks at round tick counts,
// labeled in dt units.
func TimeMap(w model.Window) Axis {
	step := niceStep(w.Duration() / 10)
	axis := Axis{Caption: "time [dt]"}
	for t := math.Ceil(w.Min/step) * step; t <= w.Max; t += step {
		tick := t
		// Ceil of a small negative minimum yields IEEE negative zero,
		// which would label the origin as "-0".
		if tick == 0 {
			tick = math.Abs(tick)
		}
		axis.Ticks = append(axis.Ticks, tick)
		axis.Labels = append(axis.Labels, strconv.FormatFloat(tick, 'f', -1, 64))
	}
	return axis
}

// niceStep rounds a raw interval up to the nearest 1/2/5 multiple of a
// power of ten.
func niceStep(raw float64) float64 {
	if raw <= 0 {
		return 1
	}
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	for _, mult := range []float64{1, 2, 5, 10} {
		if raw <= mult*mag {
			return mult * mag
		}
	}
	return 10 * mag
}
