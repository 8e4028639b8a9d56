package style

import (
	"errors"
	"fmt"
	"image/color"
	"reflect"
)

var (
	// ErrUnknownKey indicates a dotted key outside the closed registry.
	ErrUnknownKey = errors.New("style: unrecognized configuration key")

	// ErrBadValue indicates a recognized key carrying a value of the
	// wrong shape (e.g. a string where a number belongs, an unparsable
	// color code, a non-function in a generator list).
	ErrBadValue = errors.New("style: bad configuration value")
)

// Config is a resolved style configuration. After Resolve it is
// immutable for the rest of the pipeline except for the four documented
// control flags, which SetControl may override before first use.
type Config struct {
	values map[string]interface{}
}

// Preset is a named, pre-built style bundle intended as a starting
// point for overrides.
type Preset struct {
	Name   string
	values map[string]interface{}
}

// Resolve merges a base configuration with user overrides, rightmost
// wins. The base may be a Preset, a raw dotted-key map, or nil for the
// documented defaults. Every supplied key is validated against the key
// registry; an unrecognized key fails the whole resolve.
func Resolve(base interface{}, overrides map[string]interface{}) (*Config, error) {
	values := make(map[string]interface{})

	apply := func(m map[string]interface{}) error {
		for key, value := range m {
			kind, ok := registry[key]
			if !ok {
				return fmt.Errorf("%w: %q", ErrUnknownKey, key)
			}
			normalized, err := normalize(key, kind, value)
			if err != nil {
				return err
			}
			values[key] = normalized
		}
		return nil
	}

	switch b := base.(type) {
	case nil:
	case Preset:
		if err := apply(b.values); err != nil {
			return nil, err
		}
	case *Preset:
		if err := apply(b.values); err != nil {
			return nil, err
		}
	case map[string]interface{}:
		if err := apply(b); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: unsupported style input %T", ErrBadValue, base)
	}

	if err := apply(overrides); err != nil {
		return nil, err
	}
	return &Config{values: values}, nil
}

// normalize checks a value against its key's kind and converts it to
// the canonical in-memory shape.
func normalize(key string, kind valueKind, value interface{}) (interface{}, error) {
	switch kind {
	case kindFloat:
		f, ok := toFloat(value)
		if !ok {
			return nil, fmt.Errorf("%w: %q wants a number, got %T", ErrBadValue, key, value)
		}
		return f, nil
	case kindInt:
		f, ok := toFloat(value)
		if !ok {
			return nil, fmt.Errorf("%w: %q wants an integer, got %T", ErrBadValue, key, value)
		}
		return int(f), nil
	case kindBool:
		b, ok := value.(bool)
		if !ok {
			return nil, fmt.Errorf("%w: %q wants a boolean, got %T", ErrBadValue, key, value)
		}
		return b, nil
	case kindText:
		s, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("%w: %q wants a string, got %T", ErrBadValue, key, value)
		}
		return s, nil
	case kindColor:
		switch c := value.(type) {
		case color.Color:
			return c, nil
		case string:
			if _, err := parseHexColor(c); err != nil {
				return nil, fmt.Errorf("%w: %q: %v", ErrBadValue, key, err)
			}
			return c, nil
		}
		return nil, fmt.Errorf("%w: %q wants a color, got %T", ErrBadValue, key, value)
	case kindColorMap, kindTextMap:
		m, err := toStringMap(value)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrBadValue, key, err)
		}
		if kind == kindColorMap {
			for name, code := range m {
				if _, err := parseHexColor(code); err != nil {
					return nil, fmt.Errorf("%w: %q[%q]: %v", ErrBadValue, key, name, err)
				}
			}
		}
		return m, nil
	case kindCallable:
		if value == nil || reflect.TypeOf(value).Kind() != reflect.Func {
			return nil, fmt.Errorf("%w: %q wants a callback, got %T", ErrBadValue, key, value)
		}
		return value, nil
	case kindCallables:
		list, err := toCallableList(value)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrBadValue, key, err)
		}
		return list, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrBadValue, key)
}

// SetControl overrides one of the four control flags on a resolved
// configuration. A per-call override replaces the style default, it
// does not toggle it.
func (c *Config) SetControl(key string, on bool) error {
	switch key {
	case KeyShowIdle, KeyShowClbits, KeyShowBarriers, KeyShowDelays:
		c.values[key] = on
		return nil
	}
	return fmt.Errorf("%w: %q is not a control flag", ErrUnknownKey, key)
}

func (c *Config) lookup(key string) interface{} {
	if v, ok := c.values[key]; ok {
		return v
	}
	return defaults[key]
}

func (c *Config) Float(key string) float64 {
	f, _ := toFloat(c.lookup(key))
	return f
}

func (c *Config) Int(key string) int {
	f, _ := toFloat(c.lookup(key))
	return int(f)
}

func (c *Config) Flag(key string) bool {
	b, _ := c.lookup(key).(bool)
	return b
}

func (c *Config) Text(key string) string {
	s, _ := c.lookup(key).(string)
	return s
}

func (c *Config) Color(key string) color.Color {
	switch v := c.lookup(key).(type) {
	case color.Color:
		return v
	case string:
		if col, err := parseHexColor(v); err == nil {
			return col
		}
	}
	return color.Black
}

// GateColor resolves the box/symbol color for an operation name from
// the installed gate color table, falling back to the default gate
// color for unrecognized names.
func (c *Config) GateColor(name string) color.Color {
	if m, ok := c.lookup("formatter.color.gates").(map[string]string); ok {
		if code, ok := m[name]; ok {
			if col, err := parseHexColor(code); err == nil {
				return col
			}
		}
	}
	return c.Color("formatter.color.default_gate")
}

// GateSymbol resolves the displayed glyph for an operation name; a
// table miss returns the raw name.
func (c *Config) GateSymbol(name string) string {
	if m, ok := c.lookup("formatter.symbol.gates").(map[string]string); ok {
		if sym, ok := m[name]; ok {
			return sym
		}
	}
	return name
}

// Callables returns an ordered generator list; empty when the key was
// never configured.
func (c *Config) Callables(key string) []interface{} {
	list, _ := c.lookup(key).([]interface{})
	return list
}

// Callable returns a single layout callback, or nil when unset.
func (c *Config) Callable(key string) interface{} {
	return c.lookup(key)
}

func toFloat(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	}
	return 0, false
}

func toStringMap(value interface{}) (map[string]string, error) {
	switch m := value.(type) {
	case map[string]string:
		return m, nil
	case map[string]interface{}:
		out := make(map[string]string, len(m))
		for k, v := range m {
			s, ok := v.(string)
			if !ok {
				return nil, fmt.Errorf("entry %q is %T, want string", k, v)
			}
			out[k] = s
		}
		return out, nil
	}
	return nil, fmt.Errorf("want a string map, got %T", value)
}

func toCallableList(value interface{}) ([]interface{}, error) {
	rv := reflect.ValueOf(value)
	if !rv.IsValid() || rv.Kind() != reflect.Slice {
		return nil, fmt.Errorf("want a list of callbacks, got %T", value)
	}
	out := make([]interface{}, 0, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		item := rv.Index(i).Interface()
		if item == nil || reflect.TypeOf(item).Kind() != reflect.Func {
			return nil, fmt.Errorf("element %d is not a callback", i)
		}
		out = append(out, item)
	}
	return out, nil
}

func parseHexColor(code string) (color.Color, error) {
	if len(code) != 7 || code[0] != '#' {
		return nil, fmt.Errorf("color %q is not #RRGGBB", code)
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(code[1:], "%02x%02x%02x", &r, &g, &b); err != nil {
		return nil, fmt.Errorf("color %q is not #RRGGBB", code)
	}
	return color.NRGBA{R: r, G: g, B: b, A: 0xFF}, nil
}
