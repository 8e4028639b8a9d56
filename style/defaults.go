package style

// Default values for every formatter key. Keys absent here (the
// generator.* and layout.* callbacks) default to nothing registered,
// which is a valid if visually empty configuration; presets install
// the stock callbacks.
var defaults = map[string]interface{}{
	"formatter.general.fig_width":       14.0,
	"formatter.general.fig_unit_height": 0.8,
	"formatter.general.dpi":             150,

	"formatter.margin.top":              0.5,
	"formatter.margin.bottom":           0.5,
	"formatter.margin.left_percent":     0.02,
	"formatter.margin.right_percent":    0.02,
	"formatter.margin.link_interval_dt": 20.0,
	"formatter.margin.minimum_duration": 50.0,

	"formatter.time_bucket.edge_dt": 10.0,

	"formatter.color.background":   "#FFFFFF",
	"formatter.color.timeslot":     "#DDDDDD",
	"formatter.color.gate_name":    "#000000",
	"formatter.color.bit_name":     "#000000",
	"formatter.color.barrier":      "#222222",
	"formatter.color.gates":        defaultGateColors,
	"formatter.color.default_gate": "#BB8BFF",

	"formatter.symbol.gates":        defaultGateSymbols,
	"formatter.symbol.frame_change": "↺",

	"formatter.box_height.gate":     0.5,
	"formatter.box_height.timeslot": 0.6,

	"formatter.layer.timeslot":     0,
	"formatter.layer.barrier":      1,
	"formatter.layer.gate_link":    2,
	"formatter.layer.gate":         3,
	"formatter.layer.frame_change": 4,
	"formatter.layer.gate_name":    5,
	"formatter.layer.bit_name":     5,

	"formatter.alpha.gate":      1.0,
	"formatter.alpha.timeslot":  0.7,
	"formatter.alpha.barrier":   0.5,
	"formatter.alpha.gate_link": 0.8,

	"formatter.line_width.gate":      0.0,
	"formatter.line_width.timeslot":  0.0,
	"formatter.line_width.barrier":   3.0,
	"formatter.line_width.gate_link": 3.0,

	"formatter.line_style.barrier":   "-",
	"formatter.line_style.gate_link": "-",

	"formatter.text_size.gate_name":    12.0,
	"formatter.text_size.bit_name":     15.0,
	"formatter.text_size.frame_change": 18.0,
	"formatter.text_size.axis_label":   13.0,

	"formatter.label_offset.frame_change": 0.25,

	KeyShowIdle:     true,
	KeyShowClbits:   true,
	KeyShowBarriers: true,
	KeyShowDelays:   true,
}

// defaultGateColors maps operation names to box/symbol colors.
// Overriding formatter.color.gates replaces this table wholesale; there
// is no merge with the defaults. Lookups that miss any installed table
// fall back to formatter.color.default_gate.
var defaultGateColors = map[string]string{
	"u0":      "#FA74A6",
	"u1":      "#000000",
	"u2":      "#FA74A6",
	"u3":      "#FA74A6",
	"id":      "#05BAB6",
	"x":       "#05BAB6",
	"y":       "#05BAB6",
	"z":       "#05BAB6",
	"h":       "#6FA4FF",
	"cx":      "#6FA4FF",
	"cy":      "#6FA4FF",
	"cz":      "#6FA4FF",
	"swap":    "#6FA4FF",
	"s":       "#6FA4FF",
	"sdg":     "#6FA4FF",
	"dcx":     "#6FA4FF",
	"iswap":   "#6FA4FF",
	"t":       "#BB8BFF",
	"tdg":     "#BB8BFF",
	"r":       "#BB8BFF",
	"rx":      "#BB8BFF",
	"ry":      "#BB8BFF",
	"rz":      "#BB8BFF",
	"reset":   "#808080",
	"measure": "#808080",
}

// defaultGateSymbols maps operation names to their displayed glyphs.
// Same replace-not-merge policy as the color table; a miss falls back
// to the raw operation name.
var defaultGateSymbols = map[string]string{
	"u0":      "U₀",
	"u1":      "U₁",
	"u2":      "U₂",
	"u3":      "U₃",
	"id":      "Id",
	"x":       "X",
	"y":       "Y",
	"z":       "Z",
	"h":       "H",
	"cx":      "CX",
	"cy":      "CY",
	"cz":      "CZ",
	"swap":    "SWAP",
	"s":       "S",
	"sdg":     "S†",
	"dcx":     "DCX",
	"iswap":   "iSWAP",
	"t":       "T",
	"tdg":     "T†",
	"r":       "R",
	"rx":      "Rx",
	"ry":      "Ry",
	"rz":      "Rz",
	"reset":   "|0⟩",
	"measure": "Measure",
}
