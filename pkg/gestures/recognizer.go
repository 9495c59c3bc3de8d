// Package gestures classifies raw pointer samples into taps,
// double-taps, long-presses, drags and swipes.
//
// A Recognizer is a per-pointer state machine, independent of any widget
// tree: feed it PointerDown/PointerMove/PointerUp samples plus a
// per-frame Update call, and it invokes the classification callbacks.
// All time decisions sample the package clock at discrete event and
// update points; no timers run in the background.
package gestures

import (
	"math"
	"time"

	"github.com/pocket-ui/pocket/pkg/graphics"
)

// Type identifies a classified gesture.
type Type string

const (
	TypeTap       Type = "tap"
	TypeDoubleTap Type = "double_tap"
	TypeLongPress Type = "long_press"
	TypeSwipe     Type = "swipe"
	TypeDrag      Type = "drag"
)

// Direction is a swipe direction. When the horizontal and vertical
// displacements tie, horizontal wins.
type Direction string

const (
	DirectionUp    Direction = "up"
	DirectionDown  Direction = "down"
	DirectionLeft  Direction = "left"
	DirectionRight Direction = "right"
)

// Event carries the details of one classified gesture. Fields beyond
// Type and Position are populated only where meaningful: Direction,
// Distance and Velocity for swipes, Distance for drags, Duration for
// long-presses and drag ends.
type Event struct {
	Type     Type
	Position graphics.Offset
	// Velocity is displacement over press duration, per axis, in logical
	// pixels per second.
	Velocity  graphics.Offset
	Direction Direction
	Distance  float64
	Duration  time.Duration
}

// Recognizer classifies one pointer stream. Assign the callbacks you
// care about; nil callbacks are skipped. Use one Recognizer per
// independent pointer.
type Recognizer struct {
	cfg Config

	OnTap       func(Event)
	OnDoubleTap func(Event)
	OnLongPress func(Event)
	OnSwipe     func(Event)
	OnDragStart func(Event)
	OnDrag      func(Event)
	OnDragEnd   func(Event)

	pressed        bool
	origin         graphics.Offset
	pressStart     time.Time
	current        graphics.Offset
	dragging       bool
	longPressFired bool

	hasTapMemory bool
	lastTapTime  time.Time
	lastTapPos   graphics.Offset
}

// NewRecognizer creates a recognizer. Zero config fields take the
// package defaults; explicitly negative thresholds are rejected with a
// ConfigError.
func NewRecognizer(cfg Config) (*Recognizer, error) {
	cfg = cfg.withDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Recognizer{cfg: cfg}, nil
}

// Config returns the resolved thresholds in effect.
func (r *Recognizer) Config() Config { return r.cfg }

// PointerDown starts tracking a press at p.
func (r *Recognizer) PointerDown(p graphics.Offset) {
	r.pressed = true
	r.origin = p
	r.current = p
	r.pressStart = Now()
	r.dragging = false
	r.longPressFired = false
}

// PointerMove updates the tracked position. Once the displacement from
// the press origin exceeds the tap threshold the press becomes a drag:
// OnDragStart fires on the crossing sample and OnDrag on it and every
// later move. Samples without a preceding PointerDown are ignored.
func (r *Recognizer) PointerMove(p graphics.Offset) {
	if !r.pressed {
		return
	}
	r.current = p
	distance := p.Sub(r.origin).Distance()
	if distance > r.cfg.TapThreshold && !r.dragging {
		r.dragging = true
		if r.OnDragStart != nil {
			r.OnDragStart(Event{Type: TypeDrag, Position: p})
		}
	}
	if r.dragging && r.OnDrag != nil {
		r.OnDrag(Event{Type: TypeDrag, Position: p, Distance: distance})
	}
}

// PointerUp completes the press and classifies it. A drag ends as a
// drag and nothing else: it can never also be a tap or swipe. Otherwise
// a displacement past the swipe threshold at sufficient velocity is a
// swipe; a displacement within the tap threshold is a tap, upgraded to a
// double-tap when the previous tap was recent and nearby.
func (r *Recognizer) PointerUp(p graphics.Offset) {
	if !r.pressed {
		return
	}
	r.pressed = false
	duration := Now().Sub(r.pressStart)
	delta := p.Sub(r.origin)
	distance := delta.Distance()

	if r.dragging {
		r.dragging = false
		if r.OnDragEnd != nil {
			r.OnDragEnd(Event{Type: TypeDrag, Position: p, Distance: distance, Duration: duration})
		}
		return
	}

	if distance > r.cfg.SwipeThreshold {
		secs := duration.Seconds()
		var speed float64
		if secs > 0 {
			speed = distance / secs
		}
		if speed > r.cfg.SwipeVelocity {
			if r.OnSwipe != nil {
				r.OnSwipe(Event{
					Type:      TypeSwipe,
					Position:  p,
					Velocity:  graphics.Offset{X: delta.X / secs, Y: delta.Y / secs},
					Direction: swipeDirection(delta),
					Distance:  distance,
					Duration:  duration,
				})
			}
			return
		}
	}

	if distance <= r.cfg.TapThreshold {
		now := Now()
		if r.hasTapMemory &&
			now.Sub(r.lastTapTime) <= r.cfg.DoubleTapInterval &&
			p.Sub(r.lastTapPos).Distance() <= r.cfg.TapThreshold {
			r.hasTapMemory = false
			if r.OnDoubleTap != nil {
				r.OnDoubleTap(Event{Type: TypeDoubleTap, Position: p})
			}
			return
		}
		if r.OnTap != nil {
			r.OnTap(Event{Type: TypeTap, Position: p})
		}
		r.hasTapMemory = true
		r.lastTapTime = now
		r.lastTapPos = p
	}
}

// Update samples the clock for time-based classification and must be
// called once per frame. It fires long-press exactly once when a
// non-drag press has been held past the configured duration. The dt
// argument is the frame delta supplied by the render loop; long-press
// timing reads the clock directly so injected clocks stay authoritative.
func (r *Recognizer) Update(dt time.Duration) {
	_ = dt
	if !r.pressed || r.dragging || r.longPressFired {
		return
	}
	held := Now().Sub(r.pressStart)
	if held >= r.cfg.LongPressDuration {
		r.longPressFired = true
		if r.OnLongPress != nil {
			r.OnLongPress(Event{Type: TypeLongPress, Position: r.current, Duration: held})
		}
	}
}

// Pressed reports whether a press is currently tracked.
func (r *Recognizer) Pressed() bool { return r.pressed }

// Dragging reports whether the tracked press has become a drag.
func (r *Recognizer) Dragging() bool { return r.dragging }

// Reset drops all recognizer state, including the tap memory used for
// double-tap detection.
func (r *Recognizer) Reset() {
	r.pressed = false
	r.dragging = false
	r.longPressFired = false
	r.hasTapMemory = false
}

// swipeDirection picks the dominant axis; ties favor horizontal.
func swipeDirection(delta graphics.Offset) Direction {
	if math.Abs(delta.X) >= math.Abs(delta.Y) {
		if delta.X > 0 {
			return DirectionRight
		}
		return DirectionLeft
	}
	if delta.Y > 0 {
		return DirectionDown
	}
	return DirectionUp
}
