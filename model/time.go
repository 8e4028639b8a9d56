package model

import "fmt"

// Ticks counts integer system cycles ("dt" units). All scheduling in a
// program is expressed in ticks; conversion to physical time is a
// concern of whoever scheduled the program.
type Ticks int64

func (t Ticks) String() string {
	return fmt.Sprintf("%ddt", int64(t))
}

// Window is the visible horizontal extent of a diagram. It is held in
// float64 because margins are fractional expansions of a tick range.
type Window struct {
	Min float64
	Max float64
}

func (w Window) Duration() float64 {
	return w.Max - w.Min
}

func (w Window) Contains(t float64) bool {
	return t >= w.Min && t <= w.Max
}
