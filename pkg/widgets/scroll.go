package widgets

import (
	"github.com/pocket-ui/pocket/pkg/core"
	"github.com/pocket-ui/pocket/pkg/display"
	"github.com/pocket-ui/pocket/pkg/graphics"
)

// ScrollConfig configures a Scroll container.
type ScrollConfig struct {
	// Spacing between stacked children, as in Column.
	Spacing    float64
	Padding    graphics.EdgeInsets
	Background string
	// Width and Height bound the visible viewport.
	Width  float64
	Height float64
}

// Scroll stacks its children vertically like a Column and shifts them by
// the current scroll offset. The offset is widget state, not cell state:
// scrolling requests a rebuild directly.
type Scroll struct {
	core.NodeBase
	spacing float64
	offset  graphics.Offset
}

// NewScroll creates a scroll container owning the given children.
func NewScroll(cfg ScrollConfig, children ...core.Widget) *Scroll {
	s := &Scroll{spacing: cfg.Spacing}
	s.SetStyle(core.Style{
		Width:      cfg.Width,
		Height:     cfg.Height,
		Background: cfg.Background,
		Padding:    cfg.Padding,
	})
	s.Adopt(children...)
	return s
}

// Offset reports the current scroll offset.
func (s *Scroll) Offset() graphics.Offset { return s.offset }

// ScrollBy shifts the content by the given deltas, clamping each axis at
// zero, and schedules a rebuild when mounted.
func (s *Scroll) ScrollBy(dx, dy float64) {
	next := graphics.Offset{
		X: clamp(s.offset.X+dx, 0, maxScroll),
		Y: clamp(s.offset.Y+dy, 0, maxScroll),
	}
	if next == s.offset {
		return
	}
	s.offset = next
	s.RequestRebuild()
}

// maxScroll bounds the offset; real content extents are not tracked, so
// overscroll past content simply shows blank space.
const maxScroll = 1 << 20

func (s *Scroll) Build() *display.Node {
	insets := s.Style().Padding.Normalized()
	origin := s.Position()
	x := origin.X + insets.Left - s.offset.X
	y := origin.Y + insets.Top - s.offset.Y
	children := make([]*display.Node, 0, len(s.Children()))
	for _, child := range s.Children() {
		child.Base().SetPosition(graphics.Offset{X: x, Y: y})
		children = append(children, core.Build(child))
		y += child.Base().Style().Height + s.spacing
	}
	n := &display.Node{
		Kind:         display.KindScroll,
		Pos:          origin,
		Spacing:      s.spacing,
		ScrollOffset: s.offset,
		Children:     children,
		OnScroll:     s.ScrollBy,
	}
	applyStyle(n, s.Base())
	return n
}
