package testing

import (
	"fmt"
	"strings"

	"github.com/pocket-ui/pocket/pkg/display"
)

// Snapshot renders a frame description as indented text, one node per
// line, suitable for golden comparisons and failure messages. Handler
// references are omitted; geometry and content are printed in
// declaration order.
func Snapshot(root *display.Node) string {
	var b strings.Builder
	writeNode(&b, root, 0)
	return b.String()
}

func writeNode(b *strings.Builder, n *display.Node, depth int) {
	if n == nil {
		return
	}
	b.WriteString(strings.Repeat("  ", depth))
	b.WriteString(string(n.Kind))
	fmt.Fprintf(b, " pos=(%g,%g)", n.Pos.X, n.Pos.Y)
	if !n.Size.IsEmpty() {
		fmt.Fprintf(b, " size=(%g,%g)", n.Size.Width, n.Size.Height)
	}
	if n.Text != "" {
		fmt.Fprintf(b, " text=%q", n.Text)
	}
	if n.Placeholder != "" {
		fmt.Fprintf(b, " placeholder=%q", n.Placeholder)
	}
	if n.Kind == display.KindSwitch {
		fmt.Fprintf(b, " on=%t", n.On)
	}
	if n.Kind == display.KindSlider {
		fmt.Fprintf(b, " value=%g", n.Value)
	}
	if n.Focused {
		b.WriteString(" focused")
	}
	if n.Disabled {
		b.WriteString(" disabled")
	}
	b.WriteByte('\n')
	for _, child := range n.Children {
		writeNode(b, child, depth+1)
	}
}
