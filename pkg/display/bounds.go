package display

import "github.com/pocket-ui/pocket/pkg/graphics"

// BoundsTable is the per-cycle side table of resolved bounds for
// interactive nodes. The description itself stays immutable; derived
// geometry is written here once, after layout and strictly before the
// first hit-test of the cycle. Bounds are derived, not authoritative:
// recomputing an entry with the same inputs yields the same rectangle,
// so redundant writes are harmless.
//
// The table is keyed by node pointer. Nodes and table share a lifetime:
// both belong to the cycle that built them.
type BoundsTable struct {
	bounds map[*Node]graphics.Rect
}

// NewBoundsTable creates an empty bounds table for one render cycle.
func NewBoundsTable() *BoundsTable {
	return &BoundsTable{bounds: make(map[*Node]graphics.Rect)}
}

// Set records the resolved bounds for a node.
func (t *BoundsTable) Set(n *Node, r graphics.Rect) {
	if n == nil {
		return
	}
	t.bounds[n] = r
}

// Lookup returns the cached bounds for a node, if any were recorded.
func (t *BoundsTable) Lookup(n *Node) (graphics.Rect, bool) {
	r, ok := t.bounds[n]
	return r, ok
}

// Len reports the number of recorded entries.
func (t *BoundsTable) Len() int {
	return len(t.bounds)
}
