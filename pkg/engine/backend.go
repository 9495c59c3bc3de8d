package engine

import (
	"github.com/pocket-ui/pocket/pkg/display"
	"github.com/pocket-ui/pocket/pkg/graphics"
)

// Backend is the drawing side of the render loop. The engine owns the
// cycle (build, measure, dispatch, draw); the backend only measures text
// and rasterizes the finished description.
//
// Both methods are called from the render loop goroutine only.
type Backend interface {
	// MeasureText returns the extent of a single text run in the given
	// face. The engine uses it to resolve content-driven control bounds
	// before input dispatch.
	MeasureText(family string, size float64, text string) graphics.Size

	// DrawFrame rasterizes one frame description. The bounds table holds
	// the extents the engine resolved for this cycle; the backend may
	// add entries for nodes it sizes itself but must not change existing
	// ones.
	DrawFrame(root *display.Node, bounds *display.BoundsTable) error
}
