// Package gen holds the stock drawing-primitive generators. A generator
// is a pure function from one schedule entry (or one lane) plus a
// resolved style to zero or more primitives: no side effects, no input
// mutation, deterministic output. Which generators run, and in what
// order, is configured through the generator.* style keys.
package gen

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lanedraw/lanedraw/draw"
	"github.com/lanedraw/lanedraw/model"
)

// Style is the read-only view of a resolved configuration that
// generators consume.
type Style interface {
	Float(key string) float64
	Int(key string) int
	Text(key string) string
	Color(key string) color.Color
	GateColor(name string) color.Color
	GateSymbol(name string) string
}

// EntryGenerator maps one schedule entry to drawing primitives.
type EntryGenerator func(entry model.ScheduleEntry, s Style) ([]draw.Primitive, error)

// LaneGenerator maps one lane (plus the program end tick) to drawing
// primitives such as labels and background timeslots.
type LaneGenerator func(lane model.Lane, end model.Ticks, s Style) ([]draw.Primitive, error)

// displayName picks the text shown for an entry: an explicit label
// wins, otherwise the symbol table entry for the operation name.
func displayName(e model.ScheduleEntry, s Style) string {
	if e.Label != "" {
		return e.Label
	}
	return s.GateSymbol(e.Name)
}

func formatParams(params []float64) string {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = fmt.Sprintf("%.2f", p)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
