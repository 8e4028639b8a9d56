package gen

import (
	"github.com/lanedraw/lanedraw/draw"
	"github.com/lanedraw/lanedraw/model"
)

// BarrierLines draws a barrier entry as one vertical line crossing all
// the lanes it spans.
func BarrierLines(e model.ScheduleEntry, s Style) ([]draw.Primitive, error) {
	if !e.IsBarrier() {
		return nil, nil
	}
	return []draw.Primitive{draw.Line{
		Kind:  draw.TagBarrier,
		On:    e.Lanes,
		Time:  float64(e.T0),
		Color: s.Color("formatter.color.barrier"),
		Alpha: s.Float("formatter.alpha.barrier"),
		Width: s.Float("formatter.line_width.barrier"),
		Style: s.Text("formatter.line_style.barrier"),
		Z:     s.Int("formatter.layer.barrier"),
	}}, nil
}
