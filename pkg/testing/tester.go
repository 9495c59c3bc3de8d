package testing

import (
	"errors"
	"testing"
	"time"

	"github.com/pocket-ui/pocket/pkg/animation"
	"github.com/pocket-ui/pocket/pkg/core"
	"github.com/pocket-ui/pocket/pkg/engine"
	"github.com/pocket-ui/pocket/pkg/gestures"
)

// ErrSettleTimeout is returned when PumpAndSettle exceeds its budget.
var ErrSettleTimeout = errors.New("PumpAndSettle: tree did not settle")

// Tester drives an engine.App with a fake clock and a recording
// backend. Create one per test with NewTester; the previous clocks are
// restored through t.Cleanup.
type Tester struct {
	t       *testing.T
	clock   *FakeClock
	backend *RecordingBackend
	app     *engine.App
}

// NewTester mounts root into a fresh headless app. The fake clock is
// installed for both gestures and animation before the recognizer is
// created, so every timestamp the app observes is the tester's.
func NewTester(t *testing.T, root core.Widget, opts engine.Options) *Tester {
	t.Helper()
	clk := NewFakeClock()
	prevGestures := gestures.SetClock(clk)
	prevAnimation := animation.SetClock(clk)
	t.Cleanup(func() {
		animation.CancelAll()
		gestures.SetClock(prevGestures)
		animation.SetClock(prevAnimation)
	})

	backend := NewRecordingBackend()
	app, err := engine.New(root, backend, opts)
	if err != nil {
		t.Fatalf("NewTester: %v", err)
	}
	return &Tester{t: t, clock: clk, backend: backend, app: app}
}

// App exposes the underlying app for direct event pushes.
func (ts *Tester) App() *engine.App { return ts.app }

// Backend exposes the recording backend for frame assertions.
func (ts *Tester) Backend() *RecordingBackend { return ts.backend }

// Clock exposes the fake clock for manual time control.
func (ts *Tester) Clock() *FakeClock { return ts.clock }

// Pump advances the clock by one nominal frame and runs one render
// cycle.
func (ts *Tester) Pump() {
	ts.PumpFor(time.Second / engine.DefaultFrameRate)
}

// PumpFor advances the clock by d and runs one render cycle.
func (ts *Tester) PumpFor(d time.Duration) {
	ts.t.Helper()
	ts.clock.Advance(d)
	if err := ts.app.Step(); err != nil {
		ts.t.Fatalf("Step: %v", err)
	}
}

// PumpAndSettle pumps frames until the app stops requesting them or the
// budget runs out. Returns ErrSettleTimeout in the latter case.
func (ts *Tester) PumpAndSettle(budget time.Duration) error {
	frame := time.Second / engine.DefaultFrameRate
	for elapsed := time.Duration(0); elapsed <= budget; elapsed += frame {
		ts.PumpFor(frame)
		if !ts.app.NeedsFrame() && !animation.HasActiveTickers() {
			return nil
		}
	}
	return ErrSettleTimeout
}

// Find evaluates the finder against the most recent frame.
func (ts *Tester) Find(f Finder) FinderResult {
	return FinderResult{nodes: f.Evaluate(ts.app.Tree()), finder: f}
}

// TypeText queues one key press per rune. The keys reach whichever
// field is focused when the next frame is pumped.
func (ts *Tester) TypeText(s string) {
	for _, r := range s {
		ts.app.PushKey(string(r))
	}
}

// PressKey queues a single named key, such as widgets.KeyEnter.
func (ts *Tester) PressKey(key string) {
	ts.app.PushKey(key)
}
