package gestures

import (
	"testing"
	"time"

	"github.com/pocket-ui/pocket/pkg/graphics"
)

// fakeClock is a manually advanced clock for deterministic timing.
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time          { return c.now }
func (c *fakeClock) advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestRecognizer(t *testing.T) (*Recognizer, *fakeClock) {
	t.Helper()
	fc := &fakeClock{now: time.Unix(1000, 0)}
	prev := SetClock(fc)
	t.Cleanup(func() { SetClock(prev) })
	r, err := NewRecognizer(Config{})
	if err != nil {
		t.Fatal(err)
	}
	return r, fc
}

// record captures every classified gesture in order.
func record(r *Recognizer) *[]Event {
	var events []Event
	capture := func(e Event) { events = append(events, e) }
	r.OnTap = capture
	r.OnDoubleTap = capture
	r.OnLongPress = capture
	r.OnSwipe = capture
	r.OnDragStart = func(e Event) { events = append(events, Event{Type: "drag_start", Position: e.Position}) }
	r.OnDrag = capture
	r.OnDragEnd = func(e Event) {
		events = append(events, Event{Type: "drag_end", Position: e.Position, Distance: e.Distance, Duration: e.Duration})
	}
	return &events
}

func TestTapClassification(t *testing.T) {
	r, fc := newTestRecognizer(t)
	events := record(r)

	r.PointerDown(graphics.Offset{})
	fc.advance(50 * time.Millisecond)
	r.PointerUp(graphics.Offset{})

	if len(*events) != 1 || (*events)[0].Type != TypeTap {
		t.Fatalf("events = %v, want single tap", *events)
	}
}

func TestDoubleTapReplacesSecondTap(t *testing.T) {
	r, fc := newTestRecognizer(t)
	events := record(r)

	tap := func() {
		r.PointerDown(graphics.Offset{})
		fc.advance(50 * time.Millisecond)
		r.PointerUp(graphics.Offset{})
	}
	tap()
	fc.advance(100 * time.Millisecond)
	tap()

	if len(*events) != 2 {
		t.Fatalf("events = %v, want 2", *events)
	}
	if (*events)[0].Type != TypeTap || (*events)[1].Type != TypeDoubleTap {
		t.Errorf("sequence = [%s %s], want [tap double_tap]", (*events)[0].Type, (*events)[1].Type)
	}
}

func TestDoubleTapMemoryClears(t *testing.T) {
	r, fc := newTestRecognizer(t)
	events := record(r)

	tap := func() {
		r.PointerDown(graphics.Offset{})
		fc.advance(50 * time.Millisecond)
		r.PointerUp(graphics.Offset{})
	}
	// Three quick taps: tap, double-tap, then tap again (memory cleared
	// by the double-tap).
	tap()
	tap()
	tap()
	want := []Type{TypeTap, TypeDoubleTap, TypeTap}
	if len(*events) != len(want) {
		t.Fatalf("events = %v, want %d", *events, len(want))
	}
	for i, e := range *events {
		if e.Type != want[i] {
			t.Errorf("event %d = %s, want %s", i, e.Type, want[i])
		}
	}
}

func TestSlowSecondTapIsSingle(t *testing.T) {
	r, fc := newTestRecognizer(t)
	events := record(r)

	r.PointerDown(graphics.Offset{})
	r.PointerUp(graphics.Offset{})
	fc.advance(301 * time.Millisecond)
	r.PointerDown(graphics.Offset{})
	r.PointerUp(graphics.Offset{})

	if len(*events) != 2 {
		t.Fatalf("events = %v, want 2", *events)
	}
	if (*events)[1].Type != TypeTap {
		t.Errorf("second event = %s, want tap (interval expired)", (*events)[1].Type)
	}
}

func TestSwipeRight(t *testing.T) {
	r, fc := newTestRecognizer(t)
	events := record(r)

	r.PointerDown(graphics.Offset{})
	fc.advance(100 * time.Millisecond)
	r.PointerUp(graphics.Offset{X: 200})

	if len(*events) != 1 {
		t.Fatalf("events = %v, want 1", *events)
	}
	e := (*events)[0]
	if e.Type != TypeSwipe || e.Direction != DirectionRight {
		t.Errorf("got %s %s, want swipe right", e.Type, e.Direction)
	}
	if e.Distance != 200 {
		t.Errorf("Distance = %v, want 200", e.Distance)
	}
	if e.Velocity.X != 2000 {
		t.Errorf("Velocity.X = %v, want 2000", e.Velocity.X)
	}
}

func TestSwipeDirectionTieFavorsHorizontal(t *testing.T) {
	r, fc := newTestRecognizer(t)
	events := record(r)

	r.PointerDown(graphics.Offset{})
	fc.advance(100 * time.Millisecond)
	r.PointerUp(graphics.Offset{X: -60, Y: 60})

	if len(*events) != 1 || (*events)[0].Direction != DirectionLeft {
		t.Fatalf("events = %v, want swipe left on diagonal tie", *events)
	}
}

func TestSlowFarReleaseIsNothing(t *testing.T) {
	r, fc := newTestRecognizer(t)
	events := record(r)

	// 60px in 2s: past the swipe distance but far below swipe velocity,
	// and past the tap threshold. Classifies as nothing.
	r.PointerDown(graphics.Offset{})
	fc.advance(2 * time.Second)
	r.PointerUp(graphics.Offset{X: 60})

	if len(*events) != 0 {
		t.Errorf("events = %v, want none", *events)
	}
}

func TestDragShortCircuitsTapAndSwipe(t *testing.T) {
	r, fc := newTestRecognizer(t)
	events := record(r)

	r.PointerDown(graphics.Offset{})
	r.PointerMove(graphics.Offset{X: 5})  // within tap threshold, no drag yet
	r.PointerMove(graphics.Offset{X: 30}) // crosses threshold
	fc.advance(100 * time.Millisecond)
	r.PointerUp(graphics.Offset{X: 200}) // fast and far, but it was a drag

	want := []Type{"drag_start", TypeDrag, "drag_end"}
	if len(*events) != len(want) {
		t.Fatalf("events = %v, want %v", *events, want)
	}
	for i, e := range *events {
		if e.Type != want[i] {
			t.Errorf("event %d = %s, want %s", i, e.Type, want[i])
		}
	}
}

func TestDragEmitsPerMove(t *testing.T) {
	r, _ := newTestRecognizer(t)
	drags := 0
	r.OnDrag = func(Event) { drags++ }

	r.PointerDown(graphics.Offset{})
	r.PointerMove(graphics.Offset{X: 20})
	r.PointerMove(graphics.Offset{X: 40})
	r.PointerMove(graphics.Offset{X: 60})
	if drags != 3 {
		t.Errorf("drags = %d, want 3", drags)
	}
}

func TestLongPressFiresOnce(t *testing.T) {
	r, fc := newTestRecognizer(t)
	presses := 0
	r.OnLongPress = func(Event) { presses++ }

	r.PointerDown(graphics.Offset{X: 7, Y: 9})
	r.Update(16 * time.Millisecond)
	if presses != 0 {
		t.Fatal("long-press fired before the hold duration")
	}
	fc.advance(500 * time.Millisecond)
	r.Update(16 * time.Millisecond)
	r.Update(16 * time.Millisecond)
	if presses != 1 {
		t.Errorf("presses = %d, want exactly 1", presses)
	}
}

func TestLongPressSuppressedByDrag(t *testing.T) {
	r, fc := newTestRecognizer(t)
	presses := 0
	r.OnLongPress = func(Event) { presses++ }

	r.PointerDown(graphics.Offset{})
	r.PointerMove(graphics.Offset{X: 50})
	fc.advance(time.Second)
	r.Update(16 * time.Millisecond)
	if presses != 0 {
		t.Error("long-press must not fire during a drag")
	}
}

func TestLongPressDoesNotSuppressTap(t *testing.T) {
	r, fc := newTestRecognizer(t)
	events := record(r)

	r.PointerDown(graphics.Offset{})
	fc.advance(600 * time.Millisecond)
	r.Update(16 * time.Millisecond)
	r.PointerUp(graphics.Offset{})

	want := []Type{TypeLongPress, TypeTap}
	if len(*events) != 2 || (*events)[0].Type != want[0] || (*events)[1].Type != want[1] {
		t.Errorf("events = %v, want long_press then tap", *events)
	}
}

func TestMoveWithoutDownIgnored(t *testing.T) {
	r, _ := newTestRecognizer(t)
	events := record(r)
	r.PointerMove(graphics.Offset{X: 100})
	r.PointerUp(graphics.Offset{X: 100})
	if len(*events) != 0 {
		t.Errorf("events = %v, want none", *events)
	}
}

func TestResetDropsAllState(t *testing.T) {
	r, fc := newTestRecognizer(t)
	events := record(r)

	r.PointerDown(graphics.Offset{})
	r.PointerUp(graphics.Offset{}) // tap remembered
	r.Reset()

	fc.advance(50 * time.Millisecond)
	r.PointerDown(graphics.Offset{})
	r.PointerUp(graphics.Offset{})

	if len(*events) != 2 || (*events)[1].Type != TypeTap {
		t.Errorf("events = %v, want plain tap after reset", *events)
	}
}

func TestConfigDefaults(t *testing.T) {
	r, _ := newTestRecognizer(t)
	cfg := r.Config()
	if cfg.TapThreshold != DefaultTapThreshold ||
		cfg.LongPressDuration != DefaultLongPressDuration ||
		cfg.DoubleTapInterval != DefaultDoubleTapInterval ||
		cfg.SwipeThreshold != DefaultSwipeThreshold ||
		cfg.SwipeVelocity != DefaultSwipeVelocity {
		t.Errorf("resolved config = %+v, want package defaults", cfg)
	}
}

func TestNegativeThresholdRejected(t *testing.T) {
	if _, err := NewRecognizer(Config{TapThreshold: -1}); err == nil {
		t.Fatal("want error for negative threshold")
	}
	if _, err := NewRecognizer(Config{LongPressDuration: -time.Second}); err == nil {
		t.Fatal("want error for negative duration")
	}
}
