package engine

import (
	"time"

	"github.com/pocket-ui/pocket/pkg/graphics"
)

// PointerPhase tags a pointer sample.
type PointerPhase int

const (
	PhaseDown PointerPhase = iota
	PhaseMove
	PhaseUp
	PhaseScroll
)

// PointerButton identifies which button produced a sample.
type PointerButton int

const (
	ButtonNone PointerButton = iota
	ButtonPrimary
	ButtonSecondary
)

// PointerEvent is one raw input sample. Events are queued from any
// goroutine and drained at the top of the next render cycle, so a
// handler never observes an event from its own cycle.
type PointerEvent struct {
	Phase    PointerPhase
	Position graphics.Offset
	Button   PointerButton
	// Delta carries the scroll amount for PhaseScroll samples.
	Delta graphics.Offset
	Time  time.Time
}

// KeyEvent is one key press, routed to the focused text input.
type KeyEvent struct {
	Key  string
	Time time.Time
}
