// Package core defines the widget tree: the Widget contract, the shared
// NodeBase lifecycle (mount, unmount, watch), and the guarded build entry
// point that enforces the tree invariants.
//
// A widget tree is rebuilt in full every render cycle. Build produces an
// immutable display.Node tree; it must never mutate the widget tree's own
// structure. Children are fixed at construction.
package core

import (
	"reflect"

	"github.com/pocket-ui/pocket/pkg/display"
	"github.com/pocket-ui/pocket/pkg/errors"
)

// Widget is a node in the declarative UI tree.
//
// Concrete widgets embed NodeBase and implement Build. Application and
// framework code must build widgets through the package-level Build
// function, which enforces the lifecycle and re-entrancy contracts;
// calling the method directly skips those checks.
type Widget interface {
	// Build converts the widget and its children into a description node.
	// Build reads live cell values at call time but is otherwise pure: it
	// must not restructure the tree or retain the returned nodes.
	Build() *display.Node

	// Base exposes the embedded NodeBase for lifecycle and layout access.
	Base() *NodeBase
}

// View is the application-facing entry point: a screen that exposes its
// root widget. The framework mounts the body once at attach time and
// unmounts it at detach time.
type View interface {
	Body() Widget
}

// RebuildNotifier receives "needs rebuild" signals from mounted nodes.
// The render loop implements it; nodes hold it as an owning context
// instead of a parent back-reference.
type RebuildNotifier interface {
	RequestRebuild()
}

// Build is the guarded build entry point.
//
// Building before the first mount is legal and used for a first
// synchronous description. Building a node after it was explicitly
// unmounted is a contract violation: it is reported through the error
// handler and the build still proceeds (a diagnostic beats crashing a
// running UI), but no subscriptions are restored — remounting requires an
// explicit Mount. Re-entering a node already mid-build means the tree
// contains a cycle and panics with a TreeError.
func Build(w Widget) *display.Node {
	if w == nil {
		return nil
	}
	base := w.Base()
	if base.tornDown {
		errors.ReportLifecycle(&errors.LifecycleError{
			Op:         "core.Build",
			Node:       widgetName(w),
			Reason:     "built after explicit unmount without remount",
			StackTrace: errors.CaptureStack(),
		})
	}
	if base.building {
		panic(&errors.TreeError{
			Op:         "core.Build",
			Node:       widgetName(w),
			Reason:     "re-entrant build: node is already mid-rebuild",
			StackTrace: errors.CaptureStack(),
		})
	}
	base.building = true
	defer func() { base.building = false }()
	return w.Build()
}

func widgetName(w Widget) string {
	return reflect.TypeOf(w).String()
}
