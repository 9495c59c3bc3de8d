package widgets

import (
	"github.com/pocket-ui/pocket/pkg/core"
	"github.com/pocket-ui/pocket/pkg/display"
	"github.com/pocket-ui/pocket/pkg/graphics"
)

// applyStyle copies the node-level style attributes onto a freshly built
// description node. Explicit node fields set by the widget win over the
// generic style.
func applyStyle(n *display.Node, b *core.NodeBase) {
	st := b.Style()
	if n.Size == (graphics.Size{}) {
		n.Size = graphics.Size{Width: st.Width, Height: st.Height}
	}
	if n.Background == "" {
		n.Background = st.Background
	}
	n.Padding = st.Padding.Normalized()
	n.Margin = st.Margin.Normalized()
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
