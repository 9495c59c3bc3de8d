package testing

import (
	"testing"

	"github.com/pocket-ui/pocket/pkg/display"
	"github.com/pocket-ui/pocket/pkg/engine"
	"github.com/pocket-ui/pocket/pkg/gestures"
	"github.com/pocket-ui/pocket/pkg/widgets"
)

func TestLongPressFiresThroughRecognizer(t *testing.T) {
	ts := NewTester(t, widgets.NewColumn(widgets.ColumnConfig{},
		widgets.NewButton(widgets.ButtonConfig{Label: "hold"}),
	), engine.Options{})

	var events []gestures.Type
	ts.App().Recognizer.OnLongPress = func(e gestures.Event) {
		events = append(events, e.Type)
	}
	ts.App().Recognizer.OnTap = func(e gestures.Event) {
		events = append(events, e.Type)
	}

	ts.Pump()
	ts.LongPress(ByButton("hold"), gestures.DefaultLongPressDuration)

	if len(events) == 0 || events[0] != gestures.TypeLongPress {
		t.Fatalf("events = %v, want a leading long_press", events)
	}
}

func TestScrollHelperShiftsContent(t *testing.T) {
	ts := NewTester(t, widgets.NewScroll(widgets.ScrollConfig{Width: 300, Height: 200},
		widgets.NewSpacer(300, 500),
	), engine.Options{})

	ts.Pump()
	first := ts.Find(ByKind(display.KindSpacer)).First().Pos
	ts.Scroll(ByKind(display.KindScroll), 0, 30)
	ts.Pump()
	shifted := ts.Find(ByKind(display.KindSpacer)).First().Pos

	if shifted.Y != first.Y-30 {
		t.Fatalf("spacer Y = %g, want %g", shifted.Y, first.Y-30)
	}
}
