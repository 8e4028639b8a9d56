package draw

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"github.com/lanedraw/lanedraw/model"
)

// Abstract horizontal coordinates. A primitive anchored at LeftEdge or
// RightEdge is pinned to the corresponding boundary of the resolved
// time window instead of a tick position.
var (
	LeftEdge  = math.Inf(-1)
	RightEdge = math.Inf(1)
)

var ErrBadGeometry = errors.New("draw: primitive has invalid geometry")

// Primitive is one abstract drawable unit.
type Primitive interface {
	// Tag identifies the semantic category for filtering.
	Tag() Tag
	// Layer orders painting; larger values paint later (on top).
	Layer() int
	// Lanes lists every lane the primitive is anchored to.
	Lanes() []model.Lane
	// Validate rejects non-finite or inconsistent geometry.
	Validate() error
}

// Box is a filled rectangle spanning [T0, T1] on a single lane band.
type Box struct {
	Kind      Tag
	On        model.Lane
	T0, T1    float64
	Height    float64 // fraction of the lane band height
	Fill      color.Color
	Alpha     float64
	LineWidth float64
	Z         int
}

func (b Box) Tag() Tag            { return b.Kind }
func (b Box) Layer() int          { return b.Z }
func (b Box) Lanes() []model.Lane { return []model.Lane{b.On} }

func (b Box) Validate() error {
	if badCoord(b.T0) || badCoord(b.T1) || bad(b.Height) || bad(b.Alpha) {
		return fmt.Errorf("%w: box %q", ErrBadGeometry, b.Kind)
	}
	return nil
}

// Line is a vertical line at a fixed time crossing one or more lanes,
// used for barriers and lane links.
type Line struct {
	Kind  Tag
	On    []model.Lane
	Time  float64
	Color color.Color
	Alpha float64
	Width float64
	// Style is "-" for solid or "--" for dashed.
	Style string
	Z     int
}

func (l Line) Tag() Tag            { return l.Kind }
func (l Line) Layer() int          { return l.Z }
func (l Line) Lanes() []model.Lane { return l.On }

func (l Line) Validate() error {
	if badCoord(l.Time) || bad(l.Alpha) || len(l.On) == 0 {
		return fmt.Errorf("%w: line %q", ErrBadGeometry, l.Kind)
	}
	return nil
}

// Label is a piece of text anchored to a lane and a time.
type Label struct {
	Kind  Tag
	On    model.Lane
	Time  float64
	Text  string
	Size  float64
	Color color.Color
	// VOffset shifts the text vertically in band-height fractions;
	// zero centers it on the lane.
	VOffset float64
	Z       int
}

func (t Label) Tag() Tag            { return t.Kind }
func (t Label) Layer() int          { return t.Z }
func (t Label) Lanes() []model.Lane { return []model.Lane{t.On} }

func (t Label) Validate() error {
	if badCoord(t.Time) || bad(t.VOffset) || t.Text == "" {
		return fmt.Errorf("%w: label %q", ErrBadGeometry, t.Kind)
	}
	return nil
}

// Symbol is a glyph (a short unicode string drawn as text) at a lane
// and time point, e.g. the frame-change marker.
type Symbol struct {
	Kind  Tag
	On    model.Lane
	Time  float64
	Text  string
	Size  float64
	Color color.Color
	Z     int
}

func (s Symbol) Tag() Tag            { return s.Kind }
func (s Symbol) Layer() int          { return s.Z }
func (s Symbol) Lanes() []model.Lane { return []model.Lane{s.On} }

func (s Symbol) Validate() error {
	if badCoord(s.Time) || s.Text == "" {
		return fmt.Errorf("%w: symbol %q", ErrBadGeometry, s.Kind)
	}
	return nil
}

// bad rejects NaN and infinities for plain numeric style values.
func bad(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}

// badCoord rejects NaN only: infinities are the abstract edge anchors.
func badCoord(v float64) bool {
	return math.IsNaN(v)
}
