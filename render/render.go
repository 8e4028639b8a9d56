// Package render defines the boundary between the drawing pipeline and
// concrete renderers, plus the name registry renderers register with.
package render

import (
	"errors"

	"github.com/lanedraw/lanedraw/canvas"
)

var (
	// ErrUnknownRenderer indicates a renderer name outside the known
	// set: a configuration error, reported before any program loading.
	ErrUnknownRenderer = errors.New("render: unknown renderer")

	// ErrUnavailable indicates a valid renderer name whose backing
	// package is not linked into the binary; the error names the
	// missing dependency.
	ErrUnavailable = errors.New("render: renderer unavailable")

	// ErrPersistence indicates the artifact rendered fine but writing
	// it to disk failed. The artifact is still returned to the caller.
	ErrPersistence = errors.New("render: failed to persist artifact")
)

// Artifact is a finished rendering in the renderer's native form (e.g.
// a *plot.Plot for the gonum renderers).
type Artifact interface{}

// Renderer paints a finalized canvas. Implementations must honor the
// canvas's primitive order as paint order, per-primitive style values,
// the resolved time window as the horizontal viewport, and one vertical
// band per visible lane in display order.
type Renderer interface {
	Render(c *canvas.Canvas) (Artifact, error)
	Save(a Artifact, path string) error
}

// SurfaceRenderer additionally composes into a caller-owned drawing
// surface instead of creating its own.
type SurfaceRenderer interface {
	Renderer
	RenderOn(c *canvas.Canvas, surface interface{}) (Artifact, error)
}
