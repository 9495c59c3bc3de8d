package widgets

import (
	"github.com/pocket-ui/pocket/pkg/core"
	"github.com/pocket-ui/pocket/pkg/display"
	"github.com/pocket-ui/pocket/pkg/graphics"
)

// ZStackConfig configures a ZStack container.
type ZStackConfig struct {
	Padding    graphics.EdgeInsets
	Background string
	Width      float64
	Height     float64
}

// ZStack overlays its children at a shared origin. Declaration order is
// paint order, so the last child draws on top and wins hit-testing.
type ZStack struct {
	core.NodeBase
}

// NewZStack creates a stack owning the given children.
func NewZStack(cfg ZStackConfig, children ...core.Widget) *ZStack {
	z := &ZStack{}
	z.SetStyle(core.Style{
		Width:      cfg.Width,
		Height:     cfg.Height,
		Background: cfg.Background,
		Padding:    cfg.Padding,
	})
	z.Adopt(children...)
	return z
}

func (z *ZStack) Build() *display.Node {
	insets := z.Style().Padding.Normalized()
	origin := z.Position()
	at := graphics.Offset{X: origin.X + insets.Left, Y: origin.Y + insets.Top}
	children := make([]*display.Node, 0, len(z.Children()))
	for _, child := range z.Children() {
		child.Base().SetPosition(at)
		children = append(children, core.Build(child))
	}
	n := &display.Node{
		Kind:     display.KindZStack,
		Pos:      origin,
		Children: children,
	}
	applyStyle(n, z.Base())
	return n
}
