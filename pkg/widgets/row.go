package widgets

import (
	"github.com/pocket-ui/pocket/pkg/core"
	"github.com/pocket-ui/pocket/pkg/display"
	"github.com/pocket-ui/pocket/pkg/graphics"
)

// RowConfig configures a Row container.
type RowConfig struct {
	// Spacing is added after every child, including zero-extent ones.
	Spacing    float64
	Padding    graphics.EdgeInsets
	Background string
	Width      float64
	Height     float64
}

// Row lays its children out left to right, the horizontal counterpart of
// Column: the cursor advances by each child's declared width plus
// spacing, and an unset width advances it by zero.
type Row struct {
	core.NodeBase
	spacing float64
}

// NewRow creates a row owning the given children.
func NewRow(cfg RowConfig, children ...core.Widget) *Row {
	r := &Row{spacing: cfg.Spacing}
	r.SetStyle(core.Style{
		Width:      cfg.Width,
		Height:     cfg.Height,
		Background: cfg.Background,
		Padding:    cfg.Padding,
	})
	r.Adopt(children...)
	return r
}

func (r *Row) Build() *display.Node {
	insets := r.Style().Padding.Normalized()
	origin := r.Position()
	x := origin.X + insets.Left
	y := origin.Y + insets.Top
	children := make([]*display.Node, 0, len(r.Children()))
	for _, child := range r.Children() {
		child.Base().SetPosition(graphics.Offset{X: x, Y: y})
		children = append(children, core.Build(child))
		x += child.Base().Style().Width + r.spacing
	}
	n := &display.Node{
		Kind:     display.KindRow,
		Pos:      origin,
		Spacing:  r.spacing,
		Children: children,
	}
	applyStyle(n, r.Base())
	return n
}
