package widgets

import (
	"github.com/pocket-ui/pocket/pkg/core"
	"github.com/pocket-ui/pocket/pkg/display"
	"github.com/pocket-ui/pocket/pkg/graphics"
)

// CardConfig configures a Card container.
type CardConfig struct {
	// Padding defaults to 16 on every edge.
	Padding    graphics.EdgeInsets
	Spacing    float64
	Background string
	// Elevation names a shadow level from the theme ("low", "medium",
	// "high"). Empty means flat.
	Elevation string
	// Radius is the corner radius. Defaults to 8.
	Radius float64
	Width  float64
	Height float64
}

// Card is a surface container: a rounded, optionally elevated box that
// stacks its children vertically inside its padding.
type Card struct {
	core.NodeBase
	cfg CardConfig
}

// NewCard creates a card owning the given children.
func NewCard(cfg CardConfig, children ...core.Widget) *Card {
	if cfg.Padding == (graphics.EdgeInsets{}) {
		cfg.Padding = graphics.InsetsAll(16)
	}
	if cfg.Radius == 0 {
		cfg.Radius = 8
	}
	c := &Card{cfg: cfg}
	c.SetStyle(core.Style{
		Width:      cfg.Width,
		Height:     cfg.Height,
		Background: cfg.Background,
		Padding:    cfg.Padding,
	})
	c.Adopt(children...)
	return c
}

func (c *Card) Build() *display.Node {
	insets := c.Style().Padding.Normalized()
	origin := c.Position()
	x := origin.X + insets.Left
	y := origin.Y + insets.Top
	children := make([]*display.Node, 0, len(c.Children()))
	for _, child := range c.Children() {
		child.Base().SetPosition(graphics.Offset{X: x, Y: y})
		children = append(children, core.Build(child))
		y += child.Base().Style().Height + c.cfg.Spacing
	}
	n := &display.Node{
		Kind:      display.KindCard,
		Pos:       origin,
		Spacing:   c.cfg.Spacing,
		Elevation: c.cfg.Elevation,
		Radius:    c.cfg.Radius,
		Children:  children,
	}
	applyStyle(n, c.Base())
	return n
}
