package gen

import (
	"github.com/lanedraw/lanedraw/draw"
	"github.com/lanedraw/lanedraw/model"
)

// GateLinks connects the lanes of a multi-lane entry with a vertical
// line at the entry midpoint. Overlapping links are spread apart later
// by the canvas, using formatter.margin.link_interval_dt.
func GateLinks(e model.ScheduleEntry, s Style) ([]draw.Primitive, error) {
	if !e.IsLink() {
		return nil, nil
	}
	return []draw.Primitive{draw.Line{
		Kind:  draw.TagGateLink,
		On:    e.Lanes,
		Time:  float64(e.T0) + float64(e.Duration)/2,
		Color: s.GateColor(e.Name),
		Alpha: s.Float("formatter.alpha.gate_link"),
		Width: s.Float("formatter.line_width.gate_link"),
		Style: s.Text("formatter.line_style.gate_link"),
		Z:     s.Int("formatter.layer.gate_link"),
	}}, nil
}
