package model

// Operation names with dedicated drawing treatment.
const (
	OpBarrier = "barrier"
	OpDelay   = "delay"
)

// ScheduleEntry is one timed operation occupying one or more lanes.
// Entries are immutable once their program is constructed.
type ScheduleEntry struct {
	// Name is the operation kind, e.g. "x", "cx", "delay", "barrier".
	Name string
	// Lanes lists every track the operation occupies, in program order.
	Lanes []Lane
	// T0 is the scheduled start tick; Duration may be zero for
	// instantaneous operations such as phase/frame changes.
	T0       Ticks
	Duration Ticks
	// Params holds optional operation parameters (e.g. rotation angles).
	Params []float64
	// Label optionally overrides the displayed operation name.
	Label string
}

func (e ScheduleEntry) IsBarrier() bool {
	return e.Name == OpBarrier
}

func (e ScheduleEntry) IsDelay() bool {
	return e.Name == OpDelay
}

// IsFrameChange reports whether the entry is an instantaneous operation
// drawn as a symbol rather than a box.
func (e ScheduleEntry) IsFrameChange() bool {
	return e.Duration == 0 && !e.IsBarrier()
}

// IsLink reports whether the entry ties multiple lanes together at a
// synchronization point and therefore produces a lane link.
func (e ScheduleEntry) IsLink() bool {
	return len(e.Lanes) > 1 && !e.IsBarrier()
}

func (e ScheduleEntry) End() Ticks {
	return e.T0 + e.Duration
}

// Touches reports whether the entry occupies the given lane.
func (e ScheduleEntry) Touches(lane Lane) bool {
	for _, l := range e.Lanes {
		if l == lane {
			return true
		}
	}
	return false
}
