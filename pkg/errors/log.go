package errors

import (
	"fmt"
	"os"
)

// LogHandler is a Handler that logs errors to stderr.
type LogHandler struct {
	// Verbose enables detailed output including stack traces.
	Verbose bool
}

// HandleLifecycle logs a LifecycleError to stderr.
func (h *LogHandler) HandleLifecycle(err *LifecycleError) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "[pocket lifecycle] %s %s: %s\n", err.Op, err.Node, err.Reason)
	if h.Verbose && err.StackTrace != "" {
		fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", err.StackTrace)
	}
}

// HandleTree logs a TreeError to stderr.
func (h *LogHandler) HandleTree(err *TreeError) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "[pocket tree] %s %s: %s\n", err.Op, err.Node, err.Reason)
	if h.Verbose && err.StackTrace != "" {
		fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", err.StackTrace)
	}
}

// HandlePanic logs a PanicError to stderr.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	if err.Op != "" {
		fmt.Fprintf(os.Stderr, "[pocket panic] %s: %v\n", err.Op, err.Value)
	} else {
		fmt.Fprintf(os.Stderr, "[pocket panic] %v\n", err.Value)
	}
	if h.Verbose && err.StackTrace != "" {
		fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", err.StackTrace)
	}
}
