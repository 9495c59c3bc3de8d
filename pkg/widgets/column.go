package widgets

import (
	"github.com/pocket-ui/pocket/pkg/core"
	"github.com/pocket-ui/pocket/pkg/display"
	"github.com/pocket-ui/pocket/pkg/graphics"
)

// ColumnConfig configures a Column container.
type ColumnConfig struct {
	// Spacing is added after every child, including zero-extent ones.
	Spacing    float64
	Padding    graphics.EdgeInsets
	Background string
	Width      float64
	Height     float64
}

// Column stacks its children top to bottom. Each child is placed at the
// running cursor, and the cursor advances by the child's declared height
// plus spacing. An unset height advances the cursor by zero.
type Column struct {
	core.NodeBase
	spacing float64
}

// NewColumn creates a column owning the given children.
func NewColumn(cfg ColumnConfig, children ...core.Widget) *Column {
	c := &Column{spacing: cfg.Spacing}
	c.SetStyle(core.Style{
		Width:      cfg.Width,
		Height:     cfg.Height,
		Background: cfg.Background,
		Padding:    cfg.Padding,
	})
	c.Adopt(children...)
	return c
}

func (c *Column) Build() *display.Node {
	insets := c.Style().Padding.Normalized()
	origin := c.Position()
	x := origin.X + insets.Left
	y := origin.Y + insets.Top
	children := make([]*display.Node, 0, len(c.Children()))
	for _, child := range c.Children() {
		child.Base().SetPosition(graphics.Offset{X: x, Y: y})
		children = append(children, core.Build(child))
		y += child.Base().Style().Height + c.spacing
	}
	n := &display.Node{
		Kind:     display.KindColumn,
		Pos:      origin,
		Spacing:  c.spacing,
		Children: children,
	}
	applyStyle(n, c.Base())
	return n
}
