package errors

import (
	"strings"
	"testing"
)

// recordingHandler captures reported errors for assertions.
type recordingHandler struct {
	lifecycle []*LifecycleError
	tree      []*TreeError
	panics    []*PanicError
}

func (h *recordingHandler) HandleLifecycle(err *LifecycleError) {
	h.lifecycle = append(h.lifecycle, err)
}

func (h *recordingHandler) HandleTree(err *TreeError) {
	h.tree = append(h.tree, err)
}

func (h *recordingHandler) HandlePanic(err *PanicError) {
	h.panics = append(h.panics, err)
}

func TestReportLifecycleSetsTimestamp(t *testing.T) {
	rec := &recordingHandler{}
	SetHandler(rec)
	defer SetHandler(nil)

	ReportLifecycle(&LifecycleError{Op: "core.Build", Node: "Button", Reason: "built after unmount"})

	if len(rec.lifecycle) != 1 {
		t.Fatalf("got %d lifecycle reports, want 1", len(rec.lifecycle))
	}
	if rec.lifecycle[0].Timestamp.IsZero() {
		t.Error("timestamp not set on report")
	}
}

func TestReportNilIsNoop(t *testing.T) {
	rec := &recordingHandler{}
	SetHandler(rec)
	defer SetHandler(nil)

	ReportLifecycle(nil)
	ReportTree(nil)
	ReportPanic(nil)

	if len(rec.lifecycle)+len(rec.tree)+len(rec.panics) != 0 {
		t.Error("nil reports should be dropped")
	}
}

func TestSetHandlerNilRestoresDefault(t *testing.T) {
	SetHandler(&recordingHandler{})
	SetHandler(nil)
	if _, ok := getHandler().(*LogHandler); !ok {
		t.Errorf("getHandler() = %T, want *LogHandler", getHandler())
	}
}

func TestConfigErrorMessage(t *testing.T) {
	err := &ConfigError{Op: "gestures.NewRecognizer", Field: "TapThreshold", Value: -1.0, Reason: "must be positive"}
	msg := err.Error()
	for _, part := range []string{"gestures.NewRecognizer", "TapThreshold", "-1", "must be positive"} {
		if !strings.Contains(msg, part) {
			t.Errorf("Error() = %q, missing %q", msg, part)
		}
	}
}

func TestRecoverReportsPanic(t *testing.T) {
	rec := &recordingHandler{}
	SetHandler(rec)
	defer SetHandler(nil)

	func() {
		defer Recover("test.op")
		panic("boom")
	}()

	if len(rec.panics) != 1 {
		t.Fatalf("got %d panic reports, want 1", len(rec.panics))
	}
	if rec.panics[0].Value != "boom" {
		t.Errorf("panic value = %v, want boom", rec.panics[0].Value)
	}
	if rec.panics[0].StackTrace == "" {
		t.Error("expected captured stack trace")
	}
}
