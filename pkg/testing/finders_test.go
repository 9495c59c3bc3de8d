package testing

import (
	"testing"

	"github.com/pocket-ui/pocket/pkg/display"
	"github.com/pocket-ui/pocket/pkg/engine"
	"github.com/pocket-ui/pocket/pkg/widgets"
)

func findersFixture(t *testing.T) *Tester {
	t.Helper()
	ts := NewTester(t, widgets.NewColumn(widgets.ColumnConfig{},
		widgets.NewText(widgets.TextConfig{Text: "alpha"}),
		widgets.NewText(widgets.TextConfig{Text: "alphabet"}),
		widgets.NewButton(widgets.ButtonConfig{Label: "alpha"}),
	), engine.Options{})
	ts.Pump()
	return ts
}

func TestByTextIsExact(t *testing.T) {
	ts := findersFixture(t)
	if got := ts.Find(ByText("alpha")).Count(); got != 2 {
		t.Fatalf("ByText matches = %d, want 2 (text and button label)", got)
	}
	if got := ts.Find(ByTextContaining("alpha")).Count(); got != 3 {
		t.Fatalf("ByTextContaining matches = %d, want 3", got)
	}
}

func TestByButtonFiltersKind(t *testing.T) {
	ts := findersFixture(t)
	r := ts.Find(ByButton("alpha"))
	if r.Count() != 1 {
		t.Fatalf("ByButton matches = %d, want 1", r.Count())
	}
	if r.First().Kind != display.KindButton {
		t.Fatalf("match kind = %s, want button", r.First().Kind)
	}
}

func TestFinderResultAccessors(t *testing.T) {
	ts := findersFixture(t)

	if ts.Find(ByText("missing")).Exists() {
		t.Fatal("Exists should be false for no matches")
	}
	if ts.Find(ByText("missing")).FirstOrNil() != nil {
		t.Fatal("FirstOrNil should be nil for no matches")
	}

	r := ts.Find(ByKind(display.KindText))
	if r.At(1).Text != "alphabet" {
		t.Fatalf("At(1).Text = %q, want %q", r.At(1).Text, "alphabet")
	}

	defer func() {
		if recover() == nil {
			t.Fatal("First on an empty result should panic")
		}
	}()
	ts.Find(ByText("missing")).First()
}
