package gen

import (
	"github.com/lanedraw/lanedraw/draw"
	"github.com/lanedraw/lanedraw/model"
)

// GateBoxes draws one activity box per occupied lane for every entry
// with finite duration. Box edges are inset by the time-bucket edge
// width when the entry is long enough, so adjacent gates stay visually
// separated.
func GateBoxes(e model.ScheduleEntry, s Style) ([]draw.Primitive, error) {
	if e.IsBarrier() || e.Duration <= 0 {
		return nil, nil
	}
	t0, t1 := float64(e.T0), float64(e.End())
	edge := s.Float("formatter.time_bucket.edge_dt")
	if t1-t0 > 2*edge {
		t0 += edge
		t1 -= edge
	}
	prims := make([]draw.Primitive, 0, len(e.Lanes))
	for _, lane := range e.Lanes {
		prims = append(prims, draw.Box{
			Kind:      draw.TagGateBox,
			On:        lane,
			T0:        t0,
			T1:        t1,
			Height:    s.Float("formatter.box_height.gate"),
			Fill:      s.GateColor(e.Name),
			Alpha:     s.Float("formatter.alpha.gate"),
			LineWidth: s.Float("formatter.line_width.gate"),
			Z:         s.Int("formatter.layer.gate"),
		})
	}
	return prims, nil
}

// GateNames annotates finite-duration entries with their operation name
// and parameters, centered on the occupied box. Delay entries get a
// dedicated delay label so they can be suppressed independently.
func GateNames(e model.ScheduleEntry, s Style) ([]draw.Primitive, error) {
	if e.IsBarrier() || e.Duration <= 0 {
		return nil, nil
	}
	mid := float64(e.T0) + float64(e.Duration)/2

	if e.IsDelay() {
		var prims []draw.Primitive
		for _, lane := range e.Lanes {
			prims = append(prims, draw.Label{
				Kind:  draw.TagDelayLabel,
				On:    lane,
				Time:  mid,
				Text:  displayName(e, s),
				Size:  s.Float("formatter.text_size.gate_name"),
				Color: s.Color("formatter.color.gate_name"),
				Z:     s.Int("formatter.layer.gate_name"),
			})
		}
		return prims, nil
	}

	// Multi-lane gates are annotated once, on their first lane.
	anchor := e.Lanes[0]
	prims := []draw.Primitive{draw.Label{
		Kind:  draw.TagGateName,
		On:    anchor,
		Time:  mid,
		Text:  displayName(e, s),
		Size:  s.Float("formatter.text_size.gate_name"),
		Color: s.Color("formatter.color.gate_name"),
		Z:     s.Int("formatter.layer.gate_name"),
	}}
	if len(e.Params) > 0 {
		prims = append(prims, draw.Label{
			Kind:    draw.TagGateParam,
			On:      anchor,
			Time:    mid,
			Text:    formatParams(e.Params),
			Size:    s.Float("formatter.text_size.gate_name") * 0.8,
			Color:   s.Color("formatter.color.gate_name"),
			VOffset: -0.3,
			Z:       s.Int("formatter.layer.gate_name"),
		})
	}
	return prims, nil
}

// FrameChanges draws zero-duration entries as a symbolic glyph on the
// lane's zero line, with the operation name offset above it.
func FrameChanges(e model.ScheduleEntry, s Style) ([]draw.Primitive, error) {
	if !e.IsFrameChange() {
		return nil, nil
	}
	var prims []draw.Primitive
	for _, lane := range e.Lanes {
		prims = append(prims,
			draw.Symbol{
				Kind:  draw.TagFrameChange,
				On:    lane,
				Time:  float64(e.T0),
				Text:  s.Text("formatter.symbol.frame_change"),
				Size:  s.Float("formatter.text_size.frame_change"),
				Color: s.GateColor(e.Name),
				Z:     s.Int("formatter.layer.frame_change"),
			},
			draw.Label{
				Kind:    draw.TagGateName,
				On:      lane,
				Time:    float64(e.T0),
				Text:    displayName(e, s),
				Size:    s.Float("formatter.text_size.gate_name"),
				Color:   s.Color("formatter.color.gate_name"),
				VOffset: s.Float("formatter.label_offset.frame_change"),
				Z:       s.Int("formatter.layer.gate_name"),
			})
	}
	return prims, nil
}
