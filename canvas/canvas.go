// Package canvas owns the state of one diagram: the loaded program, the
// resolved style, the disabled lanes and primitive tags, the time
// window, and the generated primitive collection. The collection is a
// cache: it is always a pure function of the other state at the moment
// Update was last called.
package canvas

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/lanedraw/lanedraw/draw"
	"github.com/lanedraw/lanedraw/gen"
	"github.com/lanedraw/lanedraw/layout"
	"github.com/lanedraw/lanedraw/model"
	"github.com/lanedraw/lanedraw/style"
)

var (
	// ErrNoProgram indicates Update or a renderer ran before LoadProgram.
	ErrNoProgram = errors.New("canvas: no program loaded")

	// ErrGenerator indicates a generator returned an error or an
	// invalid primitive; the whole Update is aborted.
	ErrGenerator = errors.New("canvas: generator contract violation")

	// ErrLayout indicates a layout callback broke its contract
	// (dropped/duplicated a lane, or produced non-increasing ticks).
	ErrLayout = errors.New("canvas: layout contract violation")
)

// Canvas aggregates drawing state for a single draw invocation.
type Canvas struct {
	cfg     *style.Config
	program *model.Program

	disabledLanes map[model.Lane]bool
	disabledTags  map[draw.Tag]bool

	rangeSet           bool
	rangeMin, rangeMax model.Ticks

	// Results of the last successful Update.
	prims   []draw.Primitive
	window  model.Window
	axis    layout.Axis
	visible []model.Lane
	rows    map[model.Lane]int
}

func New(cfg *style.Config) *Canvas {
	return &Canvas{
		cfg:           cfg,
		disabledLanes: make(map[model.Lane]bool),
		disabledTags:  make(map[draw.Tag]bool),
	}
}

// LoadProgram captures the program's lanes and entries. Generators do
// not run until Update.
func (c *Canvas) LoadProgram(p *model.Program) error {
	if p == nil {
		return ErrNoProgram
	}
	c.program = p
	return nil
}

// SetTimeRange pins the visible window. When never called, Update
// derives the default window from the program duration, the minimum
// duration floor, and the margin percentages.
func (c *Canvas) SetTimeRange(t0, t1 model.Ticks) {
	c.rangeSet = true
	c.rangeMin, c.rangeMax = t0, t1
}

// SetDisableLane toggles a lane's visibility. Removing a lane also
// removes every primitive anchored to it on the next Update.
func (c *Canvas) SetDisableLane(lane model.Lane, remove bool) {
	if remove {
		c.disabledLanes[lane] = true
	} else {
		delete(c.disabledLanes, lane)
	}
}

// SetDisableTag toggles visibility of one primitive semantic tag.
func (c *Canvas) SetDisableTag(tag draw.Tag, remove bool) {
	if remove {
		c.disabledTags[tag] = true
	} else {
		delete(c.disabledTags, tag)
	}
}

// Update rebuilds the primitive collection from scratch: lane
// generators over every active lane, entry generators per category over
// every active entry, link de-overlapping, tag and lane filtering, and
// a stable layer sort. The rebuild is all-or-nothing: on any error the
// previous collection stays untouched.
func (c *Canvas) Update() error {
	if c.program == nil {
		return ErrNoProgram
	}

	showIdle := c.cfg.Flag(style.KeyShowIdle)
	showClbits := c.cfg.Flag(style.KeyShowClbits)
	showBarriers := c.cfg.Flag(style.KeyShowBarriers)
	showDelays := c.cfg.Flag(style.KeyShowDelays)

	active := make(map[model.Lane]bool)
	var activeLanes []model.Lane
	for _, lane := range c.program.Lanes() {
		switch {
		case c.disabledLanes[lane]:
		case lane.Kind == model.ClassicalLane && !showClbits:
		case !showIdle && c.laneIdle(lane):
		default:
			active[lane] = true
			activeLanes = append(activeLanes, lane)
		}
	}

	var activeEntries []model.ScheduleEntry
	for _, e := range c.program.Entries() {
		if e.IsBarrier() && !showBarriers {
			continue
		}
		if e.IsDelay() && !showDelays {
			continue
		}
		if !allActive(e.Lanes, active) {
			continue
		}
		activeEntries = append(activeEntries, e)
	}

	gateGens, err := entryGenerators(c.cfg, "generator.gates")
	if err != nil {
		return err
	}
	barrierGens, err := entryGenerators(c.cfg, "generator.barriers")
	if err != nil {
		return err
	}
	linkGens, err := entryGenerators(c.cfg, "generator.gate_links")
	if err != nil {
		return err
	}
	laneGens, err := laneGenerators(c.cfg, "generator.bits")
	if err != nil {
		return err
	}

	var staged []draw.Primitive
	end := c.program.Duration()
	for _, lane := range activeLanes {
		for _, g := range laneGens {
			ps, err := g(lane, end, c.cfg)
			if err != nil {
				return fmt.Errorf("%w: lane %v: %v", ErrGenerator, lane, err)
			}
			if staged, err = appendValid(staged, ps); err != nil {
				return err
			}
		}
	}
	for _, e := range activeEntries {
		gens := gateGens
		if e.IsBarrier() {
			gens = barrierGens
		}
		for _, g := range gens {
			ps, err := g(e, c.cfg)
			if err != nil {
				return fmt.Errorf("%w: entry %q at %v: %v", ErrGenerator, e.Name, e.T0, err)
			}
			if staged, err = appendValid(staged, ps); err != nil {
				return err
			}
		}
		if e.IsLink() {
			for _, g := range linkGens {
				ps, err := g(e, c.cfg)
				if err != nil {
					return fmt.Errorf("%w: link %q at %v: %v", ErrGenerator, e.Name, e.T0, err)
				}
				if staged, err = appendValid(staged, ps); err != nil {
					return err
				}
			}
		}
	}

	spreadLinks(staged, c.cfg.Float("formatter.margin.link_interval_dt"))

	kept := staged[:0:0]
	for _, p := range staged {
		if c.disabledTags[p.Tag()] || !allActive(p.Lanes(), active) {
			continue
		}
		kept = append(kept, p)
	}
	sort.SliceStable(kept, func(i, j int) bool { return kept[i].Layer() < kept[j].Layer() })

	window := c.resolveWindow(end)

	ordered, err := c.arrangeLanes(activeLanes)
	if err != nil {
		return err
	}
	rows := make(map[model.Lane]int, len(ordered))
	for i, lane := range ordered {
		rows[lane] = i
	}

	axis, err := c.mapAxis(window)
	if err != nil {
		return err
	}

	c.prims = kept
	c.window = window
	c.axis = axis
	c.visible = ordered
	c.rows = rows
	return nil
}

// laneIdle reports whether no entry besides barriers occupies the lane.
func (c *Canvas) laneIdle(lane model.Lane) bool {
	for _, e := range c.program.Entries() {
		if !e.IsBarrier() && e.Touches(lane) {
			return false
		}
	}
	return true
}

func (c *Canvas) resolveWindow(end model.Ticks) model.Window {
	if c.rangeSet {
		return model.Window{Min: float64(c.rangeMin), Max: float64(c.rangeMax)}
	}
	duration := math.Max(float64(end), c.cfg.Float("formatter.margin.minimum_duration"))
	left := duration * c.cfg.Float("formatter.margin.left_percent")
	right := duration * c.cfg.Float("formatter.margin.right_percent")
	return model.Window{Min: -left, Max: duration + right}
}

func (c *Canvas) arrangeLanes(active []model.Lane) ([]model.Lane, error) {
	orderFn := layout.LaneOrder(layout.IndexOrder)
	switch v := c.cfg.Callable("layout.bit_arrange").(type) {
	case nil:
	case layout.LaneOrder:
		orderFn = v
	case func([]model.Lane) []model.Lane:
		orderFn = v
	default:
		return nil, fmt.Errorf("%w: layout.bit_arrange has type %T", style.ErrBadValue, v)
	}

	input := make([]model.Lane, len(active))
	copy(input, active)
	ordered := orderFn(input)

	if len(ordered) != len(active) {
		return nil, fmt.Errorf("%w: lane order returned %d of %d lanes", ErrLayout, len(ordered), len(active))
	}
	seen := make(map[model.Lane]bool, len(ordered))
	for _, lane := range ordered {
		if seen[lane] {
			return nil, fmt.Errorf("%w: lane order duplicates %v", ErrLayout, lane)
		}
		seen[lane] = true
	}
	for _, lane := range active {
		if !seen[lane] {
			return nil, fmt.Errorf("%w: lane order omits %v", ErrLayout, lane)
		}
	}
	return ordered, nil
}

func (c *Canvas) mapAxis(window model.Window) (layout.Axis, error) {
	axisFn := layout.AxisMap(layout.TimeMap)
	switch v := c.cfg.Callable("layout.time_axis_map").(type) {
	case nil:
	case layout.AxisMap:
		axisFn = v
	case func(model.Window) layout.Axis:
		axisFn = v
	default:
		return layout.Axis{}, fmt.Errorf("%w: layout.time_axis_map has type %T", style.ErrBadValue, v)
	}

	axis := axisFn(window)
	if len(axis.Labels) != len(axis.Ticks) {
		return layout.Axis{}, fmt.Errorf("%w: axis has %d ticks but %d labels", ErrLayout, len(axis.Ticks), len(axis.Labels))
	}
	for i, t := range axis.Ticks {
		if !window.Contains(t) {
			return layout.Axis{}, fmt.Errorf("%w: axis tick %g outside window", ErrLayout, t)
		}
		if i > 0 && t <= axis.Ticks[i-1] {
			return layout.Axis{}, fmt.Errorf("%w: axis ticks not strictly increasing at %g", ErrLayout, t)
		}
	}
	return axis, nil
}

// Primitives returns the finalized collection in paint order. The
// returned slice must not be modified.
func (c *Canvas) Primitives() []draw.Primitive { return c.prims }

// Window returns the resolved horizontal viewport.
func (c *Canvas) Window() model.Window { return c.window }

// Axis returns the resolved horizontal-axis labeling.
func (c *Canvas) Axis() layout.Axis { return c.axis }

// VisibleLanes returns visible lanes in display order, topmost first.
func (c *Canvas) VisibleLanes() []model.Lane { return c.visible }

// Row returns a visible lane's display position, 0 being topmost.
func (c *Canvas) Row(lane model.Lane) (int, bool) {
	row, ok := c.rows[lane]
	return row, ok
}

// Style returns the resolved configuration driving this canvas.
func (c *Canvas) Style() *style.Config { return c.cfg }

func allActive(lanes []model.Lane, active map[model.Lane]bool) bool {
	for _, l := range lanes {
		if !active[l] {
			return false
		}
	}
	return true
}

func appendValid(staged []draw.Primitive, ps []draw.Primitive) ([]draw.Primitive, error) {
	for _, p := range ps {
		if p == nil {
			return nil, fmt.Errorf("%w: nil primitive", ErrGenerator)
		}
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrGenerator, err)
		}
		staged = append(staged, p)
	}
	return staged, nil
}

func entryGenerators(cfg *style.Config, key string) ([]gen.EntryGenerator, error) {
	var out []gen.EntryGenerator
	for _, v := range cfg.Callables(key) {
		switch f := v.(type) {
		case gen.EntryGenerator:
			out = append(out, f)
		case func(model.ScheduleEntry, gen.Style) ([]draw.Primitive, error):
			out = append(out, f)
		default:
			return nil, fmt.Errorf("%w: %s holds %T", style.ErrBadValue, key, v)
		}
	}
	return out, nil
}

func laneGenerators(cfg *style.Config, key string) ([]gen.LaneGenerator, error) {
	var out []gen.LaneGenerator
	for _, v := range cfg.Callables(key) {
		switch f := v.(type) {
		case gen.LaneGenerator:
			out = append(out, f)
		case func(model.Lane, model.Ticks, gen.Style) ([]draw.Primitive, error):
			out = append(out, f)
		default:
			return nil, fmt.Errorf("%w: %s holds %T", style.ErrBadValue, key, v)
		}
	}
	return out, nil
}

// spreadLinks shifts gate links apart horizontally when several fall
// within the configured interval, so they stay distinguishable.
func spreadLinks(prims []draw.Primitive, interval float64) {
	if interval <= 0 {
		return
	}
	var idx []int
	for i, p := range prims {
		if line, ok := p.(draw.Line); ok && line.Kind == draw.TagGateLink {
			idx = append(idx, i)
		}
	}
	sort.Slice(idx, func(a, b int) bool {
		return prims[idx[a]].(draw.Line).Time < prims[idx[b]].(draw.Line).Time
	})
	last := math.Inf(-1)
	for _, i := range idx {
		line := prims[i].(draw.Line)
		if line.Time < last+interval {
			line.Time = last + interval
			prims[i] = line
		}
		last = line.Time
	}
}
