package style

import (
	"github.com/lanedraw/lanedraw/gen"
	"github.com/lanedraw/lanedraw/layout"
)

// Standard is the default preset: every stock generator installed,
// every entry category shown.
func Standard() Preset {
	return Preset{
		Name: "standard",
		values: map[string]interface{}{
			"generator.gates": []interface{}{
				gen.EntryGenerator(gen.GateBoxes),
				gen.EntryGenerator(gen.GateNames),
				gen.EntryGenerator(gen.FrameChanges),
			},
			"generator.bits": []interface{}{
				gen.LaneGenerator(gen.LaneLabels),
				gen.LaneGenerator(gen.TimeSlots),
			},
			"generator.barriers": []interface{}{
				gen.EntryGenerator(gen.BarrierLines),
			},
			"generator.gate_links": []interface{}{
				gen.EntryGenerator(gen.GateLinks),
			},
			"layout.bit_arrange":   layout.LaneOrder(layout.IndexOrder),
			"layout.time_axis_map": layout.AxisMap(layout.TimeMap),
		},
	}
}

// Simple is a publication-oriented preset: no annotations, no idle or
// classical lanes, no barriers or delays.
func Simple() Preset {
	p := Standard()
	p.Name = "simple"
	p.values["generator.gates"] = []interface{}{
		gen.EntryGenerator(gen.GateBoxes),
		gen.EntryGenerator(gen.FrameChanges),
	}
	p.values[KeyShowIdle] = false
	p.values[KeyShowClbits] = false
	p.values[KeyShowBarriers] = false
	p.values[KeyShowDelays] = false
	return p
}

// Debugging shows everything, including barriers and delays on idle
// and classical lanes.
func Debugging() Preset {
	p := Standard()
	p.Name = "debugging"
	p.values[KeyShowIdle] = true
	p.values[KeyShowClbits] = true
	p.values[KeyShowBarriers] = true
	p.values[KeyShowDelays] = true
	return p
}
