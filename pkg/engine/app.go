// Package engine runs the render loop: a single-threaded, poll-driven
// cycle that drains queued input, rebuilds the widget tree into one
// immutable description, resolves control bounds, dispatches input
// against that same description, steps time-based state, and hands the
// frame to the drawing backend.
//
// Every cycle rebuilds the full tree. Handlers invoked during dispatch
// see the current cycle's description, but any cell they mutate is only
// observed by the next cycle's rebuild; intermediate values are never
// drawn or hit-tested.
package engine

import (
	"context"
	"sync"
	"time"

	"github.com/pocket-ui/pocket/pkg/animation"
	"github.com/pocket-ui/pocket/pkg/core"
	"github.com/pocket-ui/pocket/pkg/display"
	"github.com/pocket-ui/pocket/pkg/errors"
	"github.com/pocket-ui/pocket/pkg/gestures"
	"github.com/pocket-ui/pocket/pkg/graphics"
)

// DefaultFrameRate is the render loop frequency when Options leaves it
// zero.
const DefaultFrameRate = 60

// Options configures an App.
type Options struct {
	// FrameRate is the target cycles per second. Zero means
	// DefaultFrameRate.
	FrameRate int
	// Gestures configures the pointer classifier. Zero fields take the
	// gestures package defaults.
	Gestures gestures.Config
}

// App owns one widget tree and drives it through render cycles. It is
// the RebuildNotifier handed to mounted nodes. All methods except
// PushPointer, PushKey and Quit must be called from the loop goroutine.
type App struct {
	backend   Backend
	frameRate int

	// Recognizer classifies the app's pointer stream. Exposed so callers
	// can assign gesture callbacks.
	Recognizer *gestures.Recognizer

	mu      sync.Mutex
	pointer []PointerEvent
	keys    []KeyEvent
	dirty   bool
	quit    chan struct{}

	root        core.Widget
	tree        *display.Node
	bounds      *display.BoundsTable
	pointerDown bool
	downPos     graphics.Offset
	lastStep    time.Time
}

// New creates an app, mounts the root, and leaves it ready for Run or
// manual Step calls.
func New(root core.Widget, backend Backend, opts Options) (*App, error) {
	rec, err := gestures.NewRecognizer(opts.Gestures)
	if err != nil {
		return nil, err
	}
	if opts.FrameRate <= 0 {
		opts.FrameRate = DefaultFrameRate
	}
	a := &App{
		backend:    backend,
		frameRate:  opts.FrameRate,
		Recognizer: rec,
		quit:       make(chan struct{}),
	}
	a.attach(root)
	return a, nil
}

// RequestRebuild satisfies core.RebuildNotifier. The loop rebuilds every
// cycle regardless; the flag lets embedders skip idle frames via
// NeedsFrame.
func (a *App) RequestRebuild() {
	a.mu.Lock()
	a.dirty = true
	a.mu.Unlock()
}

// NeedsFrame reports whether state changed or input arrived since the
// last Step.
func (a *App) NeedsFrame() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.dirty || len(a.pointer) > 0 || len(a.keys) > 0
}

// PushPointer queues one pointer sample for the next cycle. Safe from
// any goroutine.
func (a *App) PushPointer(e PointerEvent) {
	if e.Time.IsZero() {
		e.Time = gestures.Now()
	}
	a.mu.Lock()
	a.pointer = append(a.pointer, e)
	a.mu.Unlock()
}

// PushKey queues one key press for the next cycle. Safe from any
// goroutine.
func (a *App) PushKey(key string) {
	a.mu.Lock()
	a.keys = append(a.keys, KeyEvent{Key: key, Time: gestures.Now()})
	a.mu.Unlock()
}

// Quit stops Run after the current cycle. Safe from any goroutine and
// idempotent.
func (a *App) Quit() {
	a.mu.Lock()
	select {
	case <-a.quit:
	default:
		close(a.quit)
	}
	a.mu.Unlock()
}

// Tree returns the description produced by the most recent Step. Loop
// goroutine only.
func (a *App) Tree() *display.Node { return a.tree }

// Bounds returns the bounds table resolved by the most recent Step.
// Loop goroutine only.
func (a *App) Bounds() *display.BoundsTable { return a.bounds }

// SetRoot swaps the mounted tree: the old root is unmounted (tearing
// down every cell subscription it registered) before the replacement is
// mounted. Loop goroutine only.
func (a *App) SetRoot(root core.Widget) {
	if a.root != nil {
		a.root.Base().Unmount()
	}
	a.attach(root)
}

func (a *App) attach(root core.Widget) {
	a.root = root
	if root != nil {
		root.Base().Mount(a)
	}
	a.RequestRebuild()
}

// Run drives Step at the configured frame rate until the context is
// cancelled or Quit is called. It returns the first backend error, or
// nil on a clean stop.
func (a *App) Run(ctx context.Context) error {
	interval := time.Second / time.Duration(a.frameRate)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-a.quit:
			return nil
		case <-ticker.C:
			if err := a.Step(); err != nil {
				return err
			}
		}
	}
}

// Step runs one full render cycle: drain input, rebuild, resolve
// bounds, dispatch, advance time-based state, draw.
func (a *App) Step() error {
	a.mu.Lock()
	pointer := a.pointer
	keys := a.keys
	a.pointer = nil
	a.keys = nil
	a.dirty = false
	a.mu.Unlock()

	now := gestures.Now()
	dt := a.frameInterval()
	if !a.lastStep.IsZero() {
		dt = now.Sub(a.lastStep)
	}
	a.lastStep = now

	defer errors.Recover("engine.Step")

	tree := core.Build(a.root)
	bounds := display.NewBoundsTable()
	a.measure(tree, bounds)
	a.tree = tree
	a.bounds = bounds

	for _, e := range pointer {
		a.dispatchPointer(tree, bounds, e)
	}
	for _, k := range keys {
		a.dispatchKey(tree, k.Key)
	}

	a.Recognizer.Update(dt)
	animation.StepTickers(now)

	if a.backend != nil && tree != nil {
		return a.backend.DrawFrame(tree, bounds)
	}
	return nil
}

func (a *App) frameInterval() time.Duration {
	return time.Second / time.Duration(a.frameRate)
}

// measure resolves node extents into the bounds table. This is the one
// derived-geometry write of the cycle; it happens strictly before any
// hit-test, so handlers that mutate cells mid-dispatch can never skew
// the geometry input resolves against.
func (a *App) measure(n *display.Node, bounds *display.BoundsTable) {
	display.Walk(n, func(node *display.Node) bool {
		size := node.Size
		switch node.Kind {
		case display.KindText:
			if size.IsEmpty() && a.backend != nil {
				size = a.backend.MeasureText(node.FontFamily, node.FontSize, node.Text)
			}
		case display.KindButton:
			if size.IsEmpty() && a.backend != nil {
				label := a.backend.MeasureText(node.FontFamily, node.FontSize, node.Text)
				size = graphics.Size{
					Width:  label.Width + node.Padding.Horizontal(),
					Height: label.Height + node.Padding.Vertical(),
				}
			}
		}
		if !size.IsEmpty() {
			bounds.Set(node, graphics.RectFrom(node.Pos, size))
		}
		return true
	})
}

func (a *App) dispatchPointer(tree *display.Node, bounds *display.BoundsTable, e PointerEvent) {
	switch e.Phase {
	case PhaseDown:
		a.Recognizer.PointerDown(e.Position)
		a.pointerDown = true
		a.downPos = e.Position
		if e.Button != ButtonPrimary {
			return
		}
		if hit := HitTest(bounds, tree, e.Position); hit != nil && hit.OnPress != nil {
			hit.OnPress()
		}
	case PhaseMove:
		a.Recognizer.PointerMove(e.Position)
		if !a.pointerDown {
			return
		}
		// The drag target is re-resolved from the press origin every
		// cycle: description nodes live one cycle, the press point does
		// not.
		target := HitTest(bounds, tree, a.downPos)
		if target != nil && target.OnDrag != nil {
			if r, ok := bounds.Lookup(target); ok {
				target.OnDrag(e.Position.Sub(r.Origin()))
			}
		}
	case PhaseUp:
		a.Recognizer.PointerUp(e.Position)
		a.pointerDown = false
	case PhaseScroll:
		target := hitTestWhere(bounds, tree, e.Position, func(n *display.Node) bool {
			return n.OnScroll != nil
		})
		if target != nil {
			target.OnScroll(e.Delta.X, e.Delta.Y)
		}
	}
}

// dispatchKey routes a key press to the focused text input, if any.
func (a *App) dispatchKey(tree *display.Node, key string) {
	display.Walk(tree, func(n *display.Node) bool {
		if n.Focused && n.OnKey != nil {
			n.OnKey(key)
			return false
		}
		return true
	})
}
