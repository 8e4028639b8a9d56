package gen

import (
	"github.com/lanedraw/lanedraw/draw"
	"github.com/lanedraw/lanedraw/model"
)

// LaneLabels places the lane name at the left edge of the time window.
func LaneLabels(lane model.Lane, end model.Ticks, s Style) ([]draw.Primitive, error) {
	return []draw.Primitive{draw.Label{
		Kind:  draw.TagLaneLabel,
		On:    lane,
		Time:  draw.LeftEdge,
		Text:  lane.String(),
		Size:  s.Float("formatter.text_size.bit_name"),
		Color: s.Color("formatter.color.bit_name"),
		Z:     s.Int("formatter.layer.bit_name"),
	}}, nil
}

// TimeSlots draws the background band spanning the whole window behind
// each lane.
func TimeSlots(lane model.Lane, end model.Ticks, s Style) ([]draw.Primitive, error) {
	return []draw.Primitive{draw.Box{
		Kind:      draw.TagTimeSlot,
		On:        lane,
		T0:        draw.LeftEdge,
		T1:        draw.RightEdge,
		Height:    s.Float("formatter.box_height.timeslot"),
		Fill:      s.Color("formatter.color.timeslot"),
		Alpha:     s.Float("formatter.alpha.timeslot"),
		LineWidth: s.Float("formatter.line_width.timeslot"),
		Z:         s.Int("formatter.layer.timeslot"),
	}}, nil
}
