package engine

import (
	"github.com/pocket-ui/pocket/pkg/display"
	"github.com/pocket-ui/pocket/pkg/graphics"
)

// HitTest resolves the topmost interactive node at p against one cycle's
// description and bounds. A node whose own recorded bounds contain p wins
// over its children being probed; otherwise children are probed in
// reverse declaration order, so the last-declared (topmost-painted) child
// wins. Returns nil when nothing interactive is hit.
func HitTest(bounds *display.BoundsTable, n *display.Node, p graphics.Offset) *display.Node {
	if n == nil {
		return nil
	}
	if n.Interactive() {
		if r, ok := bounds.Lookup(n); ok && r.Contains(p) {
			return n
		}
	}
	for i := len(n.Children) - 1; i >= 0; i-- {
		if hit := HitTest(bounds, n.Children[i], p); hit != nil {
			return hit
		}
	}
	return nil
}

// hitTestWhere finds the topmost node matching pred whose recorded bounds
// contain p, walking the same reverse-declaration order as HitTest.
// Children win over their ancestors.
func hitTestWhere(bounds *display.BoundsTable, n *display.Node, p graphics.Offset, pred func(*display.Node) bool) *display.Node {
	if n == nil {
		return nil
	}
	for i := len(n.Children) - 1; i >= 0; i-- {
		if hit := hitTestWhere(bounds, n.Children[i], p, pred); hit != nil {
			return hit
		}
	}
	if pred(n) {
		if r, ok := bounds.Lookup(n); ok && r.Contains(p) {
			return n
		}
	}
	return nil
}
