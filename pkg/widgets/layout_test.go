package widgets

import (
	"testing"

	"github.com/pocket-ui/pocket/pkg/core"
	"github.com/pocket-ui/pocket/pkg/display"
	"github.com/pocket-ui/pocket/pkg/graphics"
)

func sizedSpacers(heights ...float64) []core.Widget {
	out := make([]core.Widget, len(heights))
	for i, h := range heights {
		out[i] = NewSpacer(0, h)
	}
	return out
}

func TestColumnCursorAdvance(t *testing.T) {
	col := NewColumn(ColumnConfig{
		Spacing: 5,
		Padding: graphics.InsetsSymmetric(10, 20),
	}, sizedSpacers(30, 0, 40)...)
	col.SetPosition(graphics.Offset{X: 100, Y: 200})

	n := core.Build(col)
	if len(n.Children) != 3 {
		t.Fatalf("children = %d, want 3", len(n.Children))
	}
	wantY := []float64{210, 245, 250}
	for i, child := range n.Children {
		if child.Pos.X != 120 {
			t.Errorf("child %d x = %v, want 120", i, child.Pos.X)
		}
		if child.Pos.Y != wantY[i] {
			t.Errorf("child %d y = %v, want %v", i, child.Pos.Y, wantY[i])
		}
	}
}

func TestColumnNegativePaddingClamped(t *testing.T) {
	col := NewColumn(ColumnConfig{
		Padding: graphics.InsetsOnly(-10, 0, 0, -5),
	}, NewSpacer(0, 10))

	n := core.Build(col)
	if got := n.Children[0].Pos; got != (graphics.Offset{}) {
		t.Errorf("child pos = %v, want origin (negative insets clamp to zero)", got)
	}
}

func TestRowCursorAdvance(t *testing.T) {
	row := NewRow(RowConfig{Spacing: 4, Padding: graphics.InsetsAll(8)},
		NewSpacer(50, 0), NewSpacer(0, 0), NewSpacer(25, 0))
	row.SetPosition(graphics.Offset{X: 10, Y: 20})

	n := core.Build(row)
	wantX := []float64{18, 72, 76}
	for i, child := range n.Children {
		if child.Pos.X != wantX[i] {
			t.Errorf("child %d x = %v, want %v", i, child.Pos.X, wantX[i])
		}
		if child.Pos.Y != 28 {
			t.Errorf("child %d y = %v, want 28", i, child.Pos.Y)
		}
	}
}

func TestGridRowMajorPlacement(t *testing.T) {
	children := []core.Widget{
		NewSpacer(40, 20), NewSpacer(40, 35), // row 0, tallest 35
		NewSpacer(40, 10), NewSpacer(40, 10), // row 1
	}
	grid := NewGrid(GridConfig{Columns: 2, ColSpacing: 6, RowSpacing: 9}, children...)

	n := core.Build(grid)
	want := []graphics.Offset{
		{X: 0, Y: 0}, {X: 46, Y: 0},
		{X: 0, Y: 44}, {X: 46, Y: 44},
	}
	for i, child := range n.Children {
		if child.Pos != want[i] {
			t.Errorf("child %d pos = %v, want %v", i, child.Pos, want[i])
		}
	}
}

func TestGridClampsColumns(t *testing.T) {
	grid := NewGrid(GridConfig{Columns: 0}, NewSpacer(10, 10), NewSpacer(10, 10))
	n := core.Build(grid)
	if n.Children[1].Pos.X != 0 {
		t.Error("columns<1 must behave as a single column")
	}
	if n.Children[1].Pos.Y != 10 {
		t.Errorf("second child y = %v, want 10", n.Children[1].Pos.Y)
	}
}

func TestZStackOverlaysChildren(t *testing.T) {
	z := NewZStack(ZStackConfig{Padding: graphics.InsetsAll(5)},
		NewSpacer(100, 100), NewSpacer(50, 50))
	z.SetPosition(graphics.Offset{X: 1, Y: 2})

	n := core.Build(z)
	for i, child := range n.Children {
		if child.Pos != (graphics.Offset{X: 6, Y: 7}) {
			t.Errorf("child %d pos = %v, want {6 7}", i, child.Pos)
		}
	}
}

func TestScrollOffsetShiftsChildren(t *testing.T) {
	s := NewScroll(ScrollConfig{Spacing: 2}, sizedSpacers(10, 10)...)
	s.ScrollBy(0, 7)

	n := core.Build(s)
	if n.Children[0].Pos.Y != -7 {
		t.Errorf("first child y = %v, want -7", n.Children[0].Pos.Y)
	}
	if n.Children[1].Pos.Y != 5 {
		t.Errorf("second child y = %v, want 5", n.Children[1].Pos.Y)
	}
	if n.ScrollOffset != (graphics.Offset{Y: 7}) {
		t.Errorf("ScrollOffset = %v, want {0 7}", n.ScrollOffset)
	}
}

func TestScrollClampsAtZero(t *testing.T) {
	s := NewScroll(ScrollConfig{}, NewSpacer(0, 10))
	s.ScrollBy(0, -30)
	if s.Offset() != (graphics.Offset{}) {
		t.Errorf("offset = %v, want zero", s.Offset())
	}
}

func TestRebuildIsIdempotent(t *testing.T) {
	build := func() core.Widget {
		return NewColumn(ColumnConfig{Spacing: 5, Padding: graphics.InsetsAll(10)},
			NewText(TextConfig{Text: "hello"}),
			NewSpacer(0, 30),
			NewButton(ButtonConfig{Label: "go"}),
		)
	}
	w := build()
	first := core.Build(w)
	second := core.Build(w)
	if !display.Equal(first, second) {
		t.Error("two builds of an unchanged tree must compare equal")
	}
}

func TestCardStacksChildrenInsidePadding(t *testing.T) {
	card := NewCard(CardConfig{Spacing: 3}, sizedSpacers(10, 20)...)

	n := core.Build(card)
	if n.Children[0].Pos != (graphics.Offset{X: 16, Y: 16}) {
		t.Errorf("first child pos = %v, want {16 16} (default padding)", n.Children[0].Pos)
	}
	if n.Children[1].Pos.Y != 29 {
		t.Errorf("second child y = %v, want 29", n.Children[1].Pos.Y)
	}
	if n.Radius != 8 {
		t.Errorf("radius = %v, want default 8", n.Radius)
	}
}
