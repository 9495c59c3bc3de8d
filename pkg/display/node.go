// Package display defines the backend-agnostic frame description.
//
// One build of the widget tree produces one immutable Node tree. The same
// tree is used for hit-testing and for drawing within a render cycle, so
// input is never resolved against stale geometry. Nodes are plain tagged
// records: a Kind discriminator plus the union of fields the concrete
// widget kinds need. Handler fields are callable for the duration of the
// cycle that built them and carry no identity beyond that.
package display

import "github.com/pocket-ui/pocket/pkg/graphics"

// Kind tags a description node with the widget kind that produced it.
type Kind string

const (
	KindText      Kind = "text"
	KindButton    Kind = "button"
	KindSwitch    Kind = "switch"
	KindSlider    Kind = "slider"
	KindTextField Kind = "textfield"
	KindImage     Kind = "image"
	KindCard      Kind = "card"
	KindColumn    Kind = "column"
	KindRow       Kind = "row"
	KindGrid      Kind = "grid"
	KindZStack    Kind = "zstack"
	KindScroll    Kind = "scroll"
	KindSpacer    Kind = "spacer"
	KindDivider   Kind = "divider"
)

// Node is one record in a frame description. Nodes are immutable once
// built; derived geometry lives in a BoundsTable on the side, never on
// the node itself.
type Node struct {
	Kind Kind

	// Pos is the resolved top-left origin assigned by the parent layout.
	Pos graphics.Offset
	// Size carries the declared extent. Zero components mean unset; the
	// backend derives actual bounds where it can measure content.
	Size graphics.Size

	// Style.
	Background string
	Color      string
	Padding    graphics.EdgeInsets
	Margin     graphics.EdgeInsets

	// Text content (text, button, textfield).
	Text        string
	FontFamily  string
	FontSize    float64
	Align       string
	Placeholder string

	// Control state.
	Disabled bool
	On       bool    // switch
	Value    float64 // slider
	Percent  float64 // slider, 0..1
	Focused  bool    // textfield
	Secure   bool    // textfield

	// Container parameters.
	Spacing      float64
	Columns      int
	ScrollOffset graphics.Offset
	Elevation    string
	Radius       float64
	Thickness    float64 // divider
	Source       string  // image

	// Children in declaration order. Declaration order is paint order;
	// hit-testing walks it in reverse so the topmost child wins.
	Children []*Node

	// Handler references, callable this cycle only.
	OnPress  func()
	OnDrag   func(local graphics.Offset)
	OnKey    func(key string)
	OnScroll func(dx, dy float64)
}

// Interactive reports whether the node participates in hit-testing.
func (n *Node) Interactive() bool {
	return n.OnPress != nil || n.OnDrag != nil || n.OnKey != nil
}

// Equal reports structural and value equality of two description trees,
// ignoring handler references (handlers are freshly bound closures each
// build and carry no comparable identity). Two builds of an unchanged
// widget tree must compare equal.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind != b.Kind ||
		a.Pos != b.Pos ||
		a.Size != b.Size ||
		a.Background != b.Background ||
		a.Color != b.Color ||
		a.Padding != b.Padding ||
		a.Margin != b.Margin ||
		a.Text != b.Text ||
		a.FontFamily != b.FontFamily ||
		a.FontSize != b.FontSize ||
		a.Align != b.Align ||
		a.Placeholder != b.Placeholder ||
		a.Disabled != b.Disabled ||
		a.On != b.On ||
		a.Value != b.Value ||
		a.Percent != b.Percent ||
		a.Focused != b.Focused ||
		a.Secure != b.Secure ||
		a.Spacing != b.Spacing ||
		a.Columns != b.Columns ||
		a.ScrollOffset != b.ScrollOffset ||
		a.Elevation != b.Elevation ||
		a.Radius != b.Radius ||
		a.Thickness != b.Thickness ||
		a.Source != b.Source {
		return false
	}
	if len(a.Children) != len(b.Children) {
		return false
	}
	for i := range a.Children {
		if !Equal(a.Children[i], b.Children[i]) {
			return false
		}
	}
	return true
}

// Walk visits the node and all descendants in declaration order. The
// visitor returns false to stop the walk.
func Walk(n *Node, visit func(*Node) bool) bool {
	if n == nil {
		return true
	}
	if !visit(n) {
		return false
	}
	for _, child := range n.Children {
		if !Walk(child, visit) {
			return false
		}
	}
	return true
}
