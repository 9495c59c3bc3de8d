package widgets

import (
	"github.com/pocket-ui/pocket/pkg/core"
	"github.com/pocket-ui/pocket/pkg/display"
	"github.com/pocket-ui/pocket/pkg/graphics"
)

// GridConfig configures a Grid container.
type GridConfig struct {
	// Columns is the number of cells per row. Values below 1 are treated
	// as 1.
	Columns    int
	ColSpacing float64
	RowSpacing float64
	Padding    graphics.EdgeInsets
	Background string
}

// Grid places children row-major into a fixed number of columns. Within
// a row the cursor advances by each child's declared width plus column
// spacing; a full row advances the vertical cursor by the tallest child
// in it plus row spacing.
type Grid struct {
	core.NodeBase
	columns    int
	colSpacing float64
	rowSpacing float64
}

// NewGrid creates a grid owning the given children.
func NewGrid(cfg GridConfig, children ...core.Widget) *Grid {
	if cfg.Columns < 1 {
		cfg.Columns = 1
	}
	g := &Grid{
		columns:    cfg.Columns,
		colSpacing: cfg.ColSpacing,
		rowSpacing: cfg.RowSpacing,
	}
	g.SetStyle(core.Style{Background: cfg.Background, Padding: cfg.Padding})
	g.Adopt(children...)
	return g
}

func (g *Grid) Build() *display.Node {
	insets := g.Style().Padding.Normalized()
	origin := g.Position()
	left := origin.X + insets.Left
	x := left
	y := origin.Y + insets.Top
	rowHeight := 0.0
	children := make([]*display.Node, 0, len(g.Children()))
	for i, child := range g.Children() {
		if i > 0 && i%g.columns == 0 {
			x = left
			y += rowHeight + g.rowSpacing
			rowHeight = 0
		}
		child.Base().SetPosition(graphics.Offset{X: x, Y: y})
		children = append(children, core.Build(child))
		st := child.Base().Style()
		x += st.Width + g.colSpacing
		if st.Height > rowHeight {
			rowHeight = st.Height
		}
	}
	n := &display.Node{
		Kind:     display.KindGrid,
		Pos:      origin,
		Columns:  g.columns,
		Spacing:  g.colSpacing,
		Children: children,
	}
	applyStyle(n, g.Base())
	return n
}
