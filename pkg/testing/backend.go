package testing

import (
	"github.com/pocket-ui/pocket/pkg/display"
	"github.com/pocket-ui/pocket/pkg/graphics"
)

// Text metrics used by the recording backend. Fixed per-rune advance
// keeps layout in tests independent of real font rasterization.
const (
	charWidthFactor  = 0.6
	lineHeightFactor = 1.25
)

// Frame is one recorded render cycle: the description tree and the
// bounds the engine resolved for it.
type Frame struct {
	Root   *display.Node
	Bounds *display.BoundsTable
}

// RecordingBackend implements engine.Backend without drawing anything.
// It measures text with fixed metrics and keeps every frame it is
// handed, in order.
type RecordingBackend struct {
	frames []Frame
}

// NewRecordingBackend creates an empty recording backend.
func NewRecordingBackend() *RecordingBackend {
	return &RecordingBackend{}
}

// MeasureText reports a deterministic extent: 0.6 times the font size
// per rune, 1.25 times the font size tall.
func (b *RecordingBackend) MeasureText(family string, size float64, text string) graphics.Size {
	if size <= 0 {
		size = 16
	}
	runes := 0
	for range text {
		runes++
	}
	return graphics.Size{
		Width:  float64(runes) * size * charWidthFactor,
		Height: size * lineHeightFactor,
	}
}

// DrawFrame records the frame and returns nil.
func (b *RecordingBackend) DrawFrame(root *display.Node, bounds *display.BoundsTable) error {
	b.frames = append(b.frames, Frame{Root: root, Bounds: bounds})
	return nil
}

// Frames returns every recorded frame in order.
func (b *RecordingBackend) Frames() []Frame { return b.frames }

// LastFrame returns the most recent frame, or a zero Frame before the
// first cycle.
func (b *RecordingBackend) LastFrame() Frame {
	if len(b.frames) == 0 {
		return Frame{}
	}
	return b.frames[len(b.frames)-1]
}
