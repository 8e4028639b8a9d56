// Package draw defines the abstract drawing primitives the generator
// stage produces and the renderer stage paints. Primitives carry their
// own geometry, style values, a layer index (larger paints later, on
// top), and a semantic tag used for visibility filtering.
package draw

// Tag classifies a primitive by the drawing concept that produced it.
type Tag string

const (
	TagTimeSlot    Tag = "box.timeslot"
	TagGateBox     Tag = "box.gate"
	TagGateName    Tag = "label.gate_name"
	TagGateParam   Tag = "label.gate_param"
	TagDelayLabel  Tag = "label.delay"
	TagLaneLabel   Tag = "label.lane_name"
	TagBarrier     Tag = "line.barrier"
	TagGateLink    Tag = "line.gate_link"
	TagFrameChange Tag = "symbol.frame_change"
)
