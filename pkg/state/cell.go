// Package state provides the observable value cell at the root of the
// reactive pipeline.
//
// A Cell wraps a single value and notifies listeners when it changes.
// Notification is synchronous and runs in subscription order before Set
// returns, which keeps ordering deterministic and testable. Assigning a
// value equal to the current one fires nothing.
//
// Cells are lifecycle-independent of the widget tree: a cell outlives any
// node watching it, and mutating a cell with no mounted watchers is legal.
//
// Thread safety: cells belong to the UI loop. Get and Set must only be
// called from the render loop goroutine or from handlers it invokes.
package state

// Listener is a registered change callback. Listener identity is the
// pointer, so the same Listener can be subscribed idempotently and later
// removed.
type Listener struct {
	fn func()
}

// NewListener wraps a callback in a Listener handle.
func NewListener(fn func()) *Listener {
	return &Listener{fn: fn}
}

// Observable is the subscription surface a widget needs to watch a cell
// without knowing its value type.
type Observable interface {
	// Watch registers a callback and returns its teardown. The teardown
	// is safe to call more than once.
	Watch(fn func()) (cancel func())
}

// Cell holds one value of type T and an insertion-ordered set of listeners.
type Cell[T comparable] struct {
	value     T
	listeners []*Listener
}

// NewCell creates a cell with the given initial value.
//
// Example:
//
//	count := state.NewCell(0)
//	cancel := count.Watch(func() { fmt.Println("count changed") })
//	count.Set(1) // prints
//	count.Set(1) // equal value, no notification
//	cancel()
func NewCell[T comparable](initial T) *Cell[T] {
	return &Cell[T]{value: initial}
}

// Get returns the current value.
func (c *Cell[T]) Get() T {
	return c.value
}

// Set replaces the value. If the new value differs from the current one,
// every registered listener is invoked synchronously, in subscription
// order, before Set returns. Setting an equal value notifies nobody.
//
// Rapid sets are not coalesced: N distinct transitions fire N notification
// rounds. Short-circuiting redundant rebuild work is the render loop's
// concern, not the cell's.
func (c *Cell[T]) Set(v T) {
	if v == c.value {
		return
	}
	c.value = v
	// Snapshot so listeners may subscribe or unsubscribe mid-notification
	// without disturbing this round.
	active := make([]*Listener, len(c.listeners))
	copy(active, c.listeners)
	for _, l := range active {
		if l.fn != nil {
			l.fn()
		}
	}
}

// Update applies fn to the current value and Sets the result.
func (c *Cell[T]) Update(fn func(T) T) {
	c.Set(fn(c.value))
}

// Subscribe registers a listener. Subscribing the same Listener pointer
// twice is a no-op, so re-subscription cannot cause double notification.
func (c *Cell[T]) Subscribe(l *Listener) {
	if l == nil {
		return
	}
	for _, existing := range c.listeners {
		if existing == l {
			return
		}
	}
	c.listeners = append(c.listeners, l)
}

// Unsubscribe removes a listener if present. Removing an absent listener
// is a no-op, not an error.
func (c *Cell[T]) Unsubscribe(l *Listener) {
	for i, existing := range c.listeners {
		if existing == l {
			c.listeners = append(c.listeners[:i], c.listeners[i+1:]...)
			return
		}
	}
}

// Watch subscribes fn and returns a teardown that unsubscribes it. This is
// the subscription form widgets capture at watch time so unmounting needs
// no cell bookkeeping beyond stored teardowns.
func (c *Cell[T]) Watch(fn func()) (cancel func()) {
	l := NewListener(fn)
	c.Subscribe(l)
	return func() {
		c.Unsubscribe(l)
	}
}

// listenerCount reports the number of registered listeners (test hook).
func (c *Cell[T]) listenerCount() int {
	return len(c.listeners)
}
