package widgets

import (
	"github.com/pocket-ui/pocket/pkg/core"
	"github.com/pocket-ui/pocket/pkg/display"
	"github.com/pocket-ui/pocket/pkg/graphics"
)

// Spacer occupies fixed blank space, advancing its parent's layout
// cursor without drawing anything.
type Spacer struct {
	core.NodeBase
}

// NewSpacer creates a spacer with the given extent. Pass zero for the
// axis that does not matter.
func NewSpacer(width, height float64) *Spacer {
	s := &Spacer{}
	s.SetStyle(core.Style{Width: width, Height: height})
	return s
}

func (s *Spacer) Build() *display.Node {
	st := s.Style()
	return &display.Node{
		Kind: display.KindSpacer,
		Pos:  s.Position(),
		Size: graphics.Size{Width: st.Width, Height: st.Height},
	}
}

// DividerConfig configures a Divider widget.
type DividerConfig struct {
	// Thickness defaults to 1.
	Thickness float64
	// Color is a hex color string.
	Color string
	// Length is the extent along the divider's axis. Zero stretches to
	// the backend's frame width.
	Length float64
}

// Divider draws a thin horizontal rule.
type Divider struct {
	core.NodeBase
	cfg DividerConfig
}

// NewDivider creates a divider.
func NewDivider(cfg DividerConfig) *Divider {
	if cfg.Thickness == 0 {
		cfg.Thickness = 1
	}
	d := &Divider{cfg: cfg}
	d.SetStyle(core.Style{Width: cfg.Length, Height: cfg.Thickness})
	return d
}

func (d *Divider) Build() *display.Node {
	n := &display.Node{
		Kind:      display.KindDivider,
		Pos:       d.Position(),
		Size:      graphics.Size{Width: d.cfg.Length, Height: d.cfg.Thickness},
		Thickness: d.cfg.Thickness,
		Color:     d.cfg.Color,
	}
	applyStyle(n, d.Base())
	return n
}
