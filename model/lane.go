package model

import "fmt"

// LaneKind distinguishes the two kinds of addressable timeline tracks.
type LaneKind int

const (
	QuantumLane LaneKind = iota
	ClassicalLane
)

func (k LaneKind) String() string {
	switch k {
	case QuantumLane:
		return "q"
	case ClassicalLane:
		return "c"
	default:
		return fmt.Sprintf("LaneKind(%d)", int(k))
	}
}

// Lane identifies one timeline track. Lanes are value types: they are
// comparable, usable as map keys, and carry no mutable state.
type Lane struct {
	Kind  LaneKind
	Index int
}

func Qubit(index int) Lane {
	return Lane{Kind: QuantumLane, Index: index}
}

func Clbit(index int) Lane {
	return Lane{Kind: ClassicalLane, Index: index}
}

func (l Lane) String() string {
	return fmt.Sprintf("%v%d", l.Kind, l.Index)
}

// Less defines the natural lane order: quantum lanes before classical
// lanes, each kind sorted by index.
func (l Lane) Less(other Lane) bool {
	if l.Kind != other.Kind {
		return l.Kind < other.Kind
	}
	return l.Index < other.Index
}
