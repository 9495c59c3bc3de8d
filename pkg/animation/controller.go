package animation

import (
	"fmt"
	"time"
)

// Status is the current state of a Controller.
type Status int

const (
	// StatusDismissed means the animation is stopped at the lower bound.
	StatusDismissed Status = iota
	// StatusForward means the animation is playing toward the upper bound.
	StatusForward
	// StatusReverse means the animation is playing toward the lower bound.
	StatusReverse
	// StatusCompleted means the animation is stopped at the upper bound.
	StatusCompleted
)

func (s Status) String() string {
	switch s {
	case StatusDismissed:
		return "dismissed"
	case StatusForward:
		return "forward"
	case StatusReverse:
		return "reverse"
	case StatusCompleted:
		return "completed"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Controller drives a value from 0 to 1 over a duration.
//
// Pair it with a Tween to animate concrete values, and register a
// listener that requests a rebuild so each cycle samples the fresh
// value. Call Dispose when the owning widget unmounts.
type Controller struct {
	// Value is the current progress, within [LowerBound, UpperBound].
	Value float64
	// Duration is the full-range animation length.
	Duration time.Duration
	// Curve transforms linear progress. Nil means linear.
	Curve func(float64) float64
	// LowerBound defaults to 0, UpperBound to 1.
	LowerBound float64
	UpperBound float64

	status     Status
	ticker     *Ticker
	target     float64
	startValue float64
	listeners  []*listener
}

type listener struct {
	value  func()
	status func(Status)
}

// NewController creates a controller at the lower bound.
func NewController(duration time.Duration) *Controller {
	return &Controller{
		Duration:   duration,
		LowerBound: 0,
		UpperBound: 1,
		Curve:      LinearCurve,
		status:     StatusDismissed,
	}
}

// Forward animates from the current value to the upper bound.
func (c *Controller) Forward() { c.animateTo(c.UpperBound, StatusForward) }

// Reverse animates from the current value to the lower bound.
func (c *Controller) Reverse() { c.animateTo(c.LowerBound, StatusReverse) }

// AnimateTo animates to an arbitrary target value.
func (c *Controller) AnimateTo(target float64) {
	if target > c.Value {
		c.animateTo(target, StatusForward)
	} else {
		c.animateTo(target, StatusReverse)
	}
}

func (c *Controller) animateTo(target float64, direction Status) {
	if c.ticker != nil {
		c.ticker.Stop()
	}
	c.target = target
	c.startValue = c.Value
	c.setStatus(direction)
	c.ticker = NewTicker(c.tick)
	c.ticker.Start()
}

func (c *Controller) tick(elapsed time.Duration) {
	if c.Duration <= 0 {
		c.Value = c.target
		c.notify()
		c.settle()
		return
	}
	progress := float64(elapsed) / float64(c.Duration)
	if progress >= 1 {
		progress = 1
	}
	eased := progress
	if c.Curve != nil {
		eased = c.Curve(progress)
	}
	c.Value = c.startValue + (c.target-c.startValue)*eased
	c.notify()
	if progress >= 1 {
		c.settle()
	}
}

func (c *Controller) settle() {
	if c.ticker != nil {
		c.ticker.Stop()
		c.ticker = nil
	}
	if c.Value <= c.LowerBound {
		c.setStatus(StatusDismissed)
	} else if c.Value >= c.UpperBound {
		c.setStatus(StatusCompleted)
	}
}

// Stop halts the animation at the current value.
func (c *Controller) Stop() {
	if c.ticker != nil {
		c.ticker.Stop()
		c.ticker = nil
	}
}

// Reset stops the animation and snaps the value to the lower bound.
func (c *Controller) Reset() {
	c.Stop()
	c.Value = c.LowerBound
	c.setStatus(StatusDismissed)
	c.notify()
}

// Status returns the current animation status.
func (c *Controller) Status() Status { return c.status }

// Animating reports whether the controller is running in either
// direction.
func (c *Controller) Animating() bool {
	return c.status == StatusForward || c.status == StatusReverse
}

// AddListener registers a callback fired on every value change, in
// registration order. The returned cancel removes it.
func (c *Controller) AddListener(fn func()) (cancel func()) {
	l := &listener{value: fn}
	c.listeners = append(c.listeners, l)
	return func() { c.remove(l) }
}

// AddStatusListener registers a callback fired on status transitions.
// The returned cancel removes it.
func (c *Controller) AddStatusListener(fn func(Status)) (cancel func()) {
	l := &listener{status: fn}
	c.listeners = append(c.listeners, l)
	return func() { c.remove(l) }
}

func (c *Controller) remove(target *listener) {
	for i, l := range c.listeners {
		if l == target {
			c.listeners = append(c.listeners[:i], c.listeners[i+1:]...)
			return
		}
	}
}

func (c *Controller) setStatus(status Status) {
	if c.status == status {
		return
	}
	c.status = status
	for _, l := range snapshot(c.listeners) {
		if l.status != nil {
			l.status(status)
		}
	}
}

func (c *Controller) notify() {
	for _, l := range snapshot(c.listeners) {
		if l.value != nil {
			l.value()
		}
	}
}

// snapshot copies the listener list so callbacks can unsubscribe
// mid-notification.
func snapshot(ls []*listener) []*listener {
	out := make([]*listener, len(ls))
	copy(out, ls)
	return out
}

// Dispose stops the animation and drops all listeners.
func (c *Controller) Dispose() {
	c.Stop()
	c.listeners = nil
}
