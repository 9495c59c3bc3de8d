package testing

import (
	"time"

	"github.com/pocket-ui/pocket/pkg/display"
	"github.com/pocket-ui/pocket/pkg/engine"
	"github.com/pocket-ui/pocket/pkg/graphics"
)

// center resolves the midpoint of a node's bounds from the last frame.
func (ts *Tester) center(n *display.Node) graphics.Offset {
	ts.t.Helper()
	r, ok := ts.app.Bounds().Lookup(n)
	if !ok {
		// No measured bounds; fall back to the declared extent.
		r = graphics.RectFrom(n.Pos, n.Size)
	}
	return graphics.Offset{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Tap queues a press and release at the first match's center and pumps
// one frame so the handlers run.
func (ts *Tester) Tap(f Finder) {
	ts.t.Helper()
	ts.TapAt(ts.center(ts.Find(f).First()))
}

// TapAt queues a press and release at the position and pumps one frame.
func (ts *Tester) TapAt(pos graphics.Offset) {
	ts.app.PushPointer(engine.PointerEvent{
		Phase:    engine.PhaseDown,
		Position: pos,
		Button:   engine.ButtonPrimary,
	})
	ts.app.PushPointer(engine.PointerEvent{Phase: engine.PhaseUp, Position: pos})
	ts.Pump()
}

// LongPress holds the pointer on the first match until the recognizer's
// long-press duration elapses, then releases.
func (ts *Tester) LongPress(f Finder, hold time.Duration) {
	ts.t.Helper()
	pos := ts.center(ts.Find(f).First())
	ts.app.PushPointer(engine.PointerEvent{
		Phase:    engine.PhaseDown,
		Position: pos,
		Button:   engine.ButtonPrimary,
	})
	ts.Pump()
	ts.PumpFor(hold)
	ts.app.PushPointer(engine.PointerEvent{Phase: engine.PhaseUp, Position: pos})
	ts.Pump()
}

// Drag presses on the first match's center and moves by delta over the
// given number of intermediate samples before releasing.
func (ts *Tester) Drag(f Finder, delta graphics.Offset, steps int) {
	ts.t.Helper()
	if steps < 1 {
		steps = 1
	}
	from := ts.center(ts.Find(f).First())
	ts.app.PushPointer(engine.PointerEvent{
		Phase:    engine.PhaseDown,
		Position: from,
		Button:   engine.ButtonPrimary,
	})
	ts.Pump()
	for i := 1; i <= steps; i++ {
		frac := float64(i) / float64(steps)
		ts.app.PushPointer(engine.PointerEvent{
			Phase: engine.PhaseMove,
			Position: graphics.Offset{
				X: from.X + delta.X*frac,
				Y: from.Y + delta.Y*frac,
			},
		})
		ts.Pump()
	}
	ts.app.PushPointer(engine.PointerEvent{
		Phase:    engine.PhaseUp,
		Position: graphics.Offset{X: from.X + delta.X, Y: from.Y + delta.Y},
	})
	ts.Pump()
}

// Scroll queues a scroll sample at the first match's center and pumps
// one frame.
func (ts *Tester) Scroll(f Finder, dx, dy float64) {
	ts.t.Helper()
	ts.app.PushPointer(engine.PointerEvent{
		Phase:    engine.PhaseScroll,
		Position: ts.center(ts.Find(f).First()),
		Delta:    graphics.Offset{X: dx, Y: dy},
	})
	ts.Pump()
}
