// Package style resolves preset configurations and user overrides into
// one flat, validated, dotted-key configuration. Keys are grouped into
// three namespaces: formatter.* holds numeric/color/text constants and
// control flags, generator.* holds ordered generator callback lists per
// primitive category, and layout.* holds single layout callbacks.
//
// Unknown keys are rejected at resolve time, never at lookup time.
package style

type valueKind int

const (
	kindFloat valueKind = iota
	kindInt
	kindBool
	kindText
	kindColor
	kindColorMap
	kindTextMap
	kindCallable
	kindCallables
)

// Control-flag keys that may be overridden on an already resolved
// configuration (per-call show_* arguments funnel through these).
const (
	KeyShowIdle     = "formatter.control.show_idle"
	KeyShowClbits   = "formatter.control.show_clbits"
	KeyShowBarriers = "formatter.control.show_barriers"
	KeyShowDelays   = "formatter.control.show_delays"
)

// registry is the closed set of recognized dotted keys.
var registry = map[string]valueKind{
	"formatter.general.fig_width":       kindFloat,
	"formatter.general.fig_unit_height": kindFloat,
	"formatter.general.dpi":             kindInt,

	"formatter.margin.top":              kindFloat,
	"formatter.margin.bottom":           kindFloat,
	"formatter.margin.left_percent":     kindFloat,
	"formatter.margin.right_percent":    kindFloat,
	"formatter.margin.link_interval_dt": kindFloat,
	"formatter.margin.minimum_duration": kindFloat,

	"formatter.time_bucket.edge_dt": kindFloat,

	"formatter.color.background":   kindColor,
	"formatter.color.timeslot":     kindColor,
	"formatter.color.gate_name":    kindColor,
	"formatter.color.bit_name":     kindColor,
	"formatter.color.barrier":      kindColor,
	"formatter.color.gates":        kindColorMap,
	"formatter.color.default_gate": kindColor,

	"formatter.symbol.gates":        kindTextMap,
	"formatter.symbol.frame_change": kindText,

	"formatter.box_height.gate":     kindFloat,
	"formatter.box_height.timeslot": kindFloat,

	"formatter.layer.timeslot":     kindInt,
	"formatter.layer.barrier":      kindInt,
	"formatter.layer.gate_link":    kindInt,
	"formatter.layer.gate":         kindInt,
	"formatter.layer.frame_change": kindInt,
	"formatter.layer.gate_name":    kindInt,
	"formatter.layer.bit_name":     kindInt,

	"formatter.alpha.gate":      kindFloat,
	"formatter.alpha.timeslot":  kindFloat,
	"formatter.alpha.barrier":   kindFloat,
	"formatter.alpha.gate_link": kindFloat,

	"formatter.line_width.gate":      kindFloat,
	"formatter.line_width.timeslot":  kindFloat,
	"formatter.line_width.barrier":   kindFloat,
	"formatter.line_width.gate_link": kindFloat,

	"formatter.line_style.barrier":   kindText,
	"formatter.line_style.gate_link": kindText,

	"formatter.text_size.gate_name":    kindFloat,
	"formatter.text_size.bit_name":     kindFloat,
	"formatter.text_size.frame_change": kindFloat,
	"formatter.text_size.axis_label":   kindFloat,

	"formatter.label_offset.frame_change": kindFloat,

	KeyShowIdle:     kindBool,
	KeyShowClbits:   kindBool,
	KeyShowBarriers: kindBool,
	KeyShowDelays:   kindBool,

	"generator.gates":      kindCallables,
	"generator.bits":       kindCallables,
	"generator.barriers":   kindCallables,
	"generator.gate_links": kindCallables,

	"layout.bit_arrange":   kindCallable,
	"layout.time_axis_map": kindCallable,
}
