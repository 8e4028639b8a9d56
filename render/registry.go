package render

import (
	"fmt"
	"sort"
)

// known maps every renderer name this project ships to the module that
// provides it. A name present here but absent from the registry means
// the providing package was not linked into the binary.
var known = map[string]string{
	"raster": "gonum.org/v1/plot",
	"svg":    "gonum.org/v1/plot",
	"window": "gioui.org",
}

var registered = map[string]Renderer{}

// Register installs a renderer under a name. Renderer packages call
// this from init; registering the same name twice is a programming
// error.
func Register(name string, r Renderer) {
	if _, exists := registered[name]; exists {
		panic(fmt.Sprintf("render: renderer %q already registered", name))
	}
	registered[name] = r
}

// Lookup resolves a renderer by exact name. Unknown names are a
// configuration error; known names without a linked implementation
// report the missing dependency.
func Lookup(name string) (Renderer, error) {
	if r, ok := registered[name]; ok {
		return r, nil
	}
	if module, ok := known[name]; ok {
		return nil, fmt.Errorf("%w: %q needs %s linked into this binary", ErrUnavailable, name, module)
	}
	return nil, fmt.Errorf("%w: %q (have %v)", ErrUnknownRenderer, name, Names())
}

// Names lists the currently registered renderer names, sorted.
func Names() []string {
	names := make([]string, 0, len(registered))
	for name := range registered {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
