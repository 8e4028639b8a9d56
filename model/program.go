package model

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrUnscheduled indicates a program that carries no timing
	// information and therefore cannot be drawn.
	ErrUnscheduled = errors.New("model: program is not scheduled")

	// ErrEmptyProgram indicates a program with no lanes at all.
	ErrEmptyProgram = errors.New("model: program has no lanes")
)

// Program is a fully scheduled sequence of operations over a fixed set
// of lanes. It is immutable after construction.
type Program struct {
	lanes    []Lane
	entries  []ScheduleEntry
	duration Ticks
}

// NewProgram validates and freezes a scheduled program. The lane set is
// the union of the explicitly supplied lanes and every lane referenced
// by an entry. Every entry must carry timing: a negative start tick or
// duration marks an unscheduled operation and fails with
// ErrUnscheduled.
func NewProgram(lanes []Lane, entries []ScheduleEntry) (*Program, error) {
	seen := make(map[Lane]bool)
	all := make([]Lane, 0, len(lanes))
	add := func(l Lane) {
		if !seen[l] {
			seen[l] = true
			all = append(all, l)
		}
	}
	for _, l := range lanes {
		add(l)
	}

	var duration Ticks
	for i, e := range entries {
		if e.T0 < 0 || e.Duration < 0 {
			return nil, fmt.Errorf("entry %d (%s): %w", i, e.Name, ErrUnscheduled)
		}
		if len(e.Lanes) == 0 {
			return nil, fmt.Errorf("entry %d (%s) occupies no lanes", i, e.Name)
		}
		for _, l := range e.Lanes {
			add(l)
		}
		if e.End() > duration {
			duration = e.End()
		}
	}
	if len(all) == 0 {
		return nil, ErrEmptyProgram
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Less(all[j]) })

	frozen := make([]ScheduleEntry, len(entries))
	copy(frozen, entries)
	return &Program{lanes: all, entries: frozen, duration: duration}, nil
}

// Lanes returns the program's lane set in natural order. The returned
// slice must not be modified.
func (p *Program) Lanes() []Lane {
	return p.lanes
}

// Entries returns the scheduled operations in program order. The
// returned slice must not be modified.
func (p *Program) Entries() []ScheduleEntry {
	return p.entries
}

// Duration is the end tick of the latest entry.
func (p *Program) Duration() Ticks {
	return p.duration
}
