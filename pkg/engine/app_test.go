package engine

import (
	"context"
	"testing"
	"time"

	"github.com/pocket-ui/pocket/pkg/core"
	"github.com/pocket-ui/pocket/pkg/display"
	"github.com/pocket-ui/pocket/pkg/graphics"
	"github.com/pocket-ui/pocket/pkg/state"
	"github.com/pocket-ui/pocket/pkg/widgets"
)

// stubBackend measures text with fixed-cell metrics and records frames.
type stubBackend struct {
	frames []*display.Node
	tables []*display.BoundsTable
}

func (b *stubBackend) MeasureText(family string, size float64, text string) graphics.Size {
	return graphics.Size{Width: float64(len(text)) * 7, Height: 13}
}

func (b *stubBackend) DrawFrame(root *display.Node, bounds *display.BoundsTable) error {
	b.frames = append(b.frames, root)
	b.tables = append(b.tables, bounds)
	return nil
}

func newTestApp(t *testing.T, root core.Widget) (*App, *stubBackend) {
	t.Helper()
	backend := &stubBackend{}
	app, err := New(root, backend, Options{})
	if err != nil {
		t.Fatal(err)
	}
	return app, backend
}

func press(app *App, x, y float64) {
	app.PushPointer(PointerEvent{Phase: PhaseDown, Position: graphics.Offset{X: x, Y: y}, Button: ButtonPrimary})
	app.PushPointer(PointerEvent{Phase: PhaseUp, Position: graphics.Offset{X: x, Y: y}})
}

func TestPressDispatchesToButton(t *testing.T) {
	count := state.NewCell(0)
	root := widgets.NewColumn(widgets.ColumnConfig{},
		widgets.NewButton(widgets.ButtonConfig{
			Label:   "tap",
			OnPress: func() { count.Update(func(v int) int { return v + 1 }) },
		}),
	)
	app, _ := newTestApp(t, root)

	press(app, 5, 5) // inside measured label+padding bounds
	if err := app.Step(); err != nil {
		t.Fatal(err)
	}
	if count.Get() != 1 {
		t.Errorf("count = %d, want 1", count.Get())
	}
}

func TestMutationVisibleNextCycleOnly(t *testing.T) {
	label := state.NewCell("before")
	root := widgets.NewColumn(widgets.ColumnConfig{},
		widgets.NewButton(widgets.ButtonConfig{
			LabelCell: label,
			OnPress:   func() { label.Set("after") },
		}),
	)
	app, backend := newTestApp(t, root)

	press(app, 5, 5)
	if err := app.Step(); err != nil {
		t.Fatal(err)
	}
	// The frame drawn this cycle was built before dispatch ran.
	buttonText := func(n *display.Node) string {
		var text string
		display.Walk(n, func(node *display.Node) bool {
			if node.Kind == display.KindButton {
				text = node.Text
				return false
			}
			return true
		})
		return text
	}
	if got := buttonText(backend.frames[0]); got != "before" {
		t.Errorf("cycle 1 label = %q, want %q", got, "before")
	}

	if err := app.Step(); err != nil {
		t.Fatal(err)
	}
	if got := buttonText(backend.frames[1]); got != "after" {
		t.Errorf("cycle 2 label = %q, want %q", got, "after")
	}
}

func TestLastWriteWinsWithinCycle(t *testing.T) {
	n := state.NewCell(0)
	root := widgets.NewColumn(widgets.ColumnConfig{},
		widgets.NewButton(widgets.ButtonConfig{
			Label: "spam",
			OnPress: func() {
				n.Set(1)
				n.Set(2)
				n.Set(3)
			},
		}),
	)
	app, _ := newTestApp(t, root)

	press(app, 5, 5)
	if err := app.Step(); err != nil {
		t.Fatal(err)
	}
	if n.Get() != 3 {
		t.Errorf("cell = %d, want last write 3", n.Get())
	}
}

func TestTopmostChildWinsHitTest(t *testing.T) {
	var hits []string
	button := func(name string) *widgets.Button {
		return widgets.NewButton(widgets.ButtonConfig{
			Label:   "xx",
			OnPress: func() { hits = append(hits, name) },
		})
	}
	// ZStack overlays both buttons at the same origin; the last-declared
	// child paints on top and must win.
	root := widgets.NewZStack(widgets.ZStackConfig{}, button("under"), button("over"))
	app, _ := newTestApp(t, root)

	press(app, 5, 5)
	if err := app.Step(); err != nil {
		t.Fatal(err)
	}
	if len(hits) != 1 || hits[0] != "over" {
		t.Errorf("hits = %v, want [over]", hits)
	}
}

func TestDragDeliversLocalCoordinates(t *testing.T) {
	slider, err := widgets.NewSlider(widgets.SliderConfig{Min: 0, Max: 100})
	if err != nil {
		t.Fatal(err)
	}
	root := widgets.NewColumn(widgets.ColumnConfig{Padding: graphics.InsetsAll(50)}, slider)
	app, _ := newTestApp(t, root)

	app.PushPointer(PointerEvent{Phase: PhaseDown, Position: graphics.Offset{X: 50, Y: 51}, Button: ButtonPrimary})
	app.PushPointer(PointerEvent{Phase: PhaseMove, Position: graphics.Offset{X: 150, Y: 51}})
	if err := app.Step(); err != nil {
		t.Fatal(err)
	}
	// Slider sits at (50,50); pointer at x=150 is 100px into the 200px
	// track, so the value lands at 50.
	if slider.Value() != 50 {
		t.Errorf("value = %v, want 50", slider.Value())
	}
}

func TestKeyRoutedToFocusedField(t *testing.T) {
	field := widgets.NewTextField(widgets.TextFieldConfig{})
	root := widgets.NewColumn(widgets.ColumnConfig{}, field)
	app, _ := newTestApp(t, root)

	// Unfocused: keys go nowhere.
	app.PushKey("a")
	if err := app.Step(); err != nil {
		t.Fatal(err)
	}
	if field.Text() != "" {
		t.Fatalf("Text = %q, want empty before focus", field.Text())
	}

	field.Focus()
	app.PushKey("h")
	app.PushKey("i")
	if err := app.Step(); err != nil {
		t.Fatal(err)
	}
	if field.Text() != "hi" {
		t.Errorf("Text = %q, want %q", field.Text(), "hi")
	}
}

func TestSetRootUnmountsPrevious(t *testing.T) {
	cell := state.NewCell("a")
	first := widgets.NewColumn(widgets.ColumnConfig{},
		widgets.NewText(widgets.TextConfig{Cell: cell}))
	app, _ := newTestApp(t, first)

	second := widgets.NewColumn(widgets.ColumnConfig{},
		widgets.NewText(widgets.TextConfig{Text: "static"}))
	app.SetRoot(second)

	if first.Mounted() {
		t.Error("previous root still mounted")
	}
	if !second.Mounted() {
		t.Error("new root not mounted")
	}
}

func TestScrollEventReachesContainer(t *testing.T) {
	scroll := widgets.NewScroll(widgets.ScrollConfig{Width: 100, Height: 100},
		widgets.NewSpacer(0, 500))
	app, _ := newTestApp(t, scroll)

	app.PushPointer(PointerEvent{
		Phase:    PhaseScroll,
		Position: graphics.Offset{X: 10, Y: 10},
		Delta:    graphics.Offset{Y: 25},
	})
	if err := app.Step(); err != nil {
		t.Fatal(err)
	}
	if scroll.Offset().Y != 25 {
		t.Errorf("offset = %v, want 25", scroll.Offset().Y)
	}
}

func TestNeedsFrameTracksInputAndState(t *testing.T) {
	cell := state.NewCell(0)
	root := widgets.NewColumn(widgets.ColumnConfig{})
	app, _ := newTestApp(t, root)
	root.Watch(cell, nil) // root is already mounted, so this subscribes now

	if err := app.Step(); err != nil {
		t.Fatal(err)
	}
	if app.NeedsFrame() {
		t.Error("idle app must not need a frame")
	}
	cell.Set(1)
	if !app.NeedsFrame() {
		t.Error("cell change must mark the app dirty")
	}
}

func TestRunStopsOnQuit(t *testing.T) {
	app, _ := newTestApp(t, widgets.NewColumn(widgets.ColumnConfig{}))
	done := make(chan error, 1)
	go func() { done <- app.Run(context.Background()) }()
	time.Sleep(30 * time.Millisecond)
	app.Quit()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run returned %v, want nil after Quit", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not stop after Quit")
	}
}
