// Package lanedraw turns an already-scheduled program over quantum and
// classical lanes into a timeline diagram. Draw resolves a style,
// builds a canvas, runs the generator/layout pipeline, and hands the
// finalized primitive collection to a named renderer.
package lanedraw

import (
	"fmt"

	"github.com/lanedraw/lanedraw/canvas"
	"github.com/lanedraw/lanedraw/draw"
	"github.com/lanedraw/lanedraw/model"
	"github.com/lanedraw/lanedraw/render"
	"github.com/lanedraw/lanedraw/style"

	// The gonum-backed renderers are always available.
	_ "github.com/lanedraw/lanedraw/render/tlplot"
)

// DefaultRenderer is used when no renderer name is configured.
const DefaultRenderer = "raster"

type drawOptions struct {
	styleBase interface{}
	overrides map[string]interface{}

	rangeSet bool
	t0, t1   model.Ticks

	disabled []model.Lane

	showClassical *bool
	showIdle      *bool
	showBarriers  *bool
	showDelays    *bool
	showLabels    *bool

	renderer string
	surface  interface{}
	output   string
}

// Option configures one Draw invocation.
type Option func(*drawOptions)

// WithStyle sets the base style: a Preset or a raw dotted-key map.
func WithStyle(base interface{}) Option {
	return func(o *drawOptions) { o.styleBase = base }
}

// WithOverrides merges dotted-key overrides on top of the base style.
func WithOverrides(overrides map[string]interface{}) Option {
	return func(o *drawOptions) { o.overrides = overrides }
}

// WithTimeRange pins the horizontal viewport in ticks.
func WithTimeRange(t0, t1 model.Ticks) Option {
	return func(o *drawOptions) {
		o.rangeSet = true
		o.t0, o.t1 = t0, t1
	}
}

// WithDisabledLanes hides the given lanes and every primitive anchored
// to them.
func WithDisabledLanes(lanes ...model.Lane) Option {
	return func(o *drawOptions) { o.disabled = append(o.disabled, lanes...) }
}

// ShowClassical overrides the style's show_clbits control flag.
func ShowClassical(on bool) Option {
	return func(o *drawOptions) { o.showClassical = &on }
}

// ShowIdle overrides the style's show_idle control flag.
func ShowIdle(on bool) Option {
	return func(o *drawOptions) { o.showIdle = &on }
}

// ShowBarriers overrides the style's show_barriers control flag.
func ShowBarriers(on bool) Option {
	return func(o *drawOptions) { o.showBarriers = &on }
}

// ShowDelays overrides the style's show_delays control flag.
func ShowDelays(on bool) Option {
	return func(o *drawOptions) { o.showDelays = &on }
}

// ShowLabels toggles the three annotation tags (operation names,
// parameters, delay labels) in one step. Lane labels stay visible.
func ShowLabels(on bool) Option {
	return func(o *drawOptions) { o.showLabels = &on }
}

// WithRenderer selects a registered renderer by exact name.
func WithRenderer(name string) Option {
	return func(o *drawOptions) { o.renderer = name }
}

// WithSurface composes the diagram into a caller-owned drawing surface;
// the selected renderer must support external surfaces.
func WithSurface(surface interface{}) Option {
	return func(o *drawOptions) { o.surface = surface }
}

// WithOutput persists the artifact to a file after a successful render.
func WithOutput(path string) Option {
	return func(o *drawOptions) { o.output = path }
}

// Draw renders a scheduled program. On a persistence failure the
// rendered artifact is returned together with the error.
func Draw(program *model.Program, opts ...Option) (render.Artifact, error) {
	o := drawOptions{renderer: DefaultRenderer}
	for _, opt := range opts {
		opt(&o)
	}

	// Renderer selection fails before the program is ever inspected.
	r, err := render.Lookup(o.renderer)
	if err != nil {
		return nil, err
	}

	base := o.styleBase
	if base == nil {
		base = style.Standard()
	}
	cfg, err := style.Resolve(base, o.overrides)
	if err != nil {
		return nil, err
	}
	applyControl(cfg, style.KeyShowClbits, o.showClassical)
	applyControl(cfg, style.KeyShowIdle, o.showIdle)
	applyControl(cfg, style.KeyShowBarriers, o.showBarriers)
	applyControl(cfg, style.KeyShowDelays, o.showDelays)

	c := canvas.New(cfg)
	if err := c.LoadProgram(program); err != nil {
		return nil, err
	}
	if o.rangeSet {
		c.SetTimeRange(o.t0, o.t1)
	}
	for _, lane := range o.disabled {
		c.SetDisableLane(lane, true)
	}
	if o.showLabels != nil && !*o.showLabels {
		c.SetDisableTag(draw.TagDelayLabel, true)
		c.SetDisableTag(draw.TagGateParam, true)
		c.SetDisableTag(draw.TagGateName, true)
	}
	if err := c.Update(); err != nil {
		return nil, err
	}

	var artifact render.Artifact
	if o.surface != nil {
		sr, ok := r.(render.SurfaceRenderer)
		if !ok {
			return nil, fmt.Errorf("lanedraw: renderer %q does not accept an external surface", o.renderer)
		}
		artifact, err = sr.RenderOn(c, o.surface)
	} else {
		artifact, err = r.Render(c)
	}
	if err != nil {
		return nil, err
	}

	if o.output != "" {
		if err := r.Save(artifact, o.output); err != nil {
			return artifact, err
		}
	}
	return artifact, nil
}

func applyControl(cfg *style.Config, key string, value *bool) {
	if value != nil {
		_ = cfg.SetControl(key, *value)
	}
}
