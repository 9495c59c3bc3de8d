// Package errors provides structured error handling for the Pocket toolkit.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindConfig indicates an invalid configuration value supplied at construction.
	KindConfig
	// KindLifecycle indicates misuse of the mount/unmount lifecycle.
	KindLifecycle
	// KindTree indicates a widget tree invariant violation.
	KindTree
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindLifecycle:
		return "lifecycle"
	case KindTree:
		return "tree"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// ConfigError reports an invalid value supplied at construction time.
// Configuration errors fail fast: they are returned from constructors,
// never clamped or deferred.
type ConfigError struct {
	// Op is the constructor that rejected the value (e.g. "gestures.NewRecognizer").
	Op string
	// Field is the configuration field that was invalid.
	Field string
	// Value is the rejected value.
	Value any
	// Reason explains why the value was rejected.
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: invalid %s %v: %s", e.Op, e.Field, e.Value, e.Reason)
}

// LifecycleError reports misuse of the widget mount/unmount contract,
// such as building a node after it was explicitly unmounted. Lifecycle
// errors are surfaced through the global handler so a running UI degrades
// loudly instead of crashing.
type LifecycleError struct {
	// Op is the operation that detected the misuse (e.g. "core.Build").
	Op string
	// Node is the widget type involved.
	Node string
	// Reason explains the contract violation.
	Reason string
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *LifecycleError) Error() string {
	return fmt.Sprintf("%s [lifecycle] %s: %s", e.Op, e.Node, e.Reason)
}

// TreeError reports a widget tree invariant violation: a child adopted by
// two parents, or a build recursing into a node already mid-build. These
// are programming errors; constructors panic with a TreeError rather than
// producing an inconsistent description.
type TreeError struct {
	// Op is the operation that detected the violation.
	Op string
	// Node is the widget type involved.
	Node string
	// Reason explains the invariant that was broken.
	Reason string
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *TreeError) Error() string {
	return fmt.Sprintf("%s [tree] %s: %s", e.Op, e.Node, e.Reason)
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g. "engine.dispatch").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// Handler receives errors reported by the toolkit.
type Handler interface {
	// HandleLifecycle is called when a lifecycle contract is violated.
	HandleLifecycle(err *LifecycleError)
	// HandleTree is called when a tree invariant violation is reported.
	HandleTree(err *TreeError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
