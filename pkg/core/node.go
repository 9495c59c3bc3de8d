package core

import (
	"github.com/pocket-ui/pocket/pkg/errors"
	"github.com/pocket-ui/pocket/pkg/graphics"
	"github.com/pocket-ui/pocket/pkg/state"
)

// Style enumerates every recognized style attribute of a node. Unknown
// styling is a compile-time error by construction; there is no attribute
// bag to silently swallow typos.
type Style struct {
	// Width and Height are size hints in logical pixels. Zero means
	// unset: layout advances its cursor by zero for an unset extent.
	Width, Height float64

	// Background is a hex color string ("#RRGGBB" or "#RRGGBBAA"). The
	// drawing backend parses it and falls back to a default on malformed
	// input.
	Background string

	Padding graphics.EdgeInsets
	Margin  graphics.EdgeInsets
}

// watchRegistration is a mount-scoped subscription request. Registrations
// persist across unmount so an explicit remount resubscribes the same
// cells.
type watchRegistration struct {
	cell     state.Observable
	callback func()
}

// NodeBase carries the tree and lifecycle state shared by every widget:
// exclusive child ownership, style, the parent-assigned position, and the
// subscription teardowns captured at watch time.
type NodeBase struct {
	style    Style
	children []Widget
	parent   *NodeBase
	pos      graphics.Offset

	mounted  bool
	tornDown bool // set by Unmount, cleared by Mount
	building bool

	owner     RebuildNotifier
	watches   []watchRegistration
	teardowns []func()
}

// Base returns the node itself, satisfying the Widget interface for
// embedders.
func (n *NodeBase) Base() *NodeBase { return n }

// Style returns the node's style attributes.
func (n *NodeBase) Style() *Style { return &n.style }

// SetStyle replaces the node's style attributes. Intended for use by
// widget constructors before the node enters a tree.
func (n *NodeBase) SetStyle(s Style) { n.style = s }

// Children returns the node's children in declaration order.
func (n *NodeBase) Children() []Widget { return n.children }

// Position returns the origin assigned by the parent layout, (0,0) for
// an unparented root.
func (n *NodeBase) Position() graphics.Offset { return n.pos }

// SetPosition assigns the node's resolved origin. Position is written by
// the parent's layout pass only; a node never repositions itself.
func (n *NodeBase) SetPosition(pos graphics.Offset) { n.pos = pos }

// Mounted reports whether the node is currently mounted.
func (n *NodeBase) Mounted() bool { return n.mounted }

// Adopt appends children, taking exclusive ownership. A child that
// already has a parent violates the single-parent invariant and panics
// with a TreeError; silently re-parenting would let one subtree appear in
// two descriptions.
func (n *NodeBase) Adopt(children ...Widget) {
	for _, child := range children {
		if child == nil {
			continue
		}
		base := child.Base()
		if base.parent != nil {
			panic(&errors.TreeError{
				Op:         "core.Adopt",
				Node:       widgetName(child),
				Reason:     "child already has a parent; a node may appear under exactly one parent",
				StackTrace: errors.CaptureStack(),
			})
		}
		base.parent = n
		n.children = append(n.children, child)
	}
}

// Watch registers a mount-scoped subscription on a cell. While the node
// is mounted, a change to the cell invokes callback (if any) and then
// signals the owning render loop that a rebuild is needed. The teardown
// is captured at watch time, so Unmount needs no cell bookkeeping beyond
// the stored closures.
//
// Watch may be called before the first mount; the subscription activates
// on Mount. Watching while mounted subscribes immediately.
func (n *NodeBase) Watch(cell state.Observable, callback func()) {
	if cell == nil {
		return
	}
	reg := watchRegistration{cell: cell, callback: callback}
	n.watches = append(n.watches, reg)
	if n.mounted {
		n.subscribe(reg)
	}
}

// RequestRebuild forwards a rebuild request to the owning render loop.
// A no-op while unmounted.
func (n *NodeBase) RequestRebuild() {
	if n.mounted && n.owner != nil {
		n.owner.RequestRebuild()
	}
}

// Mount marks the node and its descendants live and activates every
// registered watch. Mounting an already-mounted node is a no-op.
func (n *NodeBase) Mount(owner RebuildNotifier) {
	if n.mounted {
		return
	}
	n.mounted = true
	n.tornDown = false
	n.owner = owner
	for _, child := range n.children {
		child.Base().Mount(owner)
	}
	for _, reg := range n.watches {
		n.subscribe(reg)
	}
}

// Unmount tears down subscriptions first, then unmounts descendants, then
// clears the mounted flag. Teardown-before-recursion matters: an in-flight
// notification must not reach a half-torn-down subtree.
func (n *NodeBase) Unmount() {
	if !n.mounted {
		return
	}
	for _, teardown := range n.teardowns {
		teardown()
	}
	n.teardowns = nil
	for _, child := range n.children {
		child.Base().Unmount()
	}
	n.mounted = false
	n.tornDown = true
	n.owner = nil
}

func (n *NodeBase) subscribe(reg watchRegistration) {
	cancel := reg.cell.Watch(func() {
		if reg.callback != nil {
			reg.callback()
		}
		if n.mounted && n.owner != nil {
			n.owner.RequestRebuild()
		}
	})
	n.teardowns = append(n.teardowns, cancel)
}
