package widgets

import (
	"math"

	"github.com/pocket-ui/pocket/pkg/core"
	"github.com/pocket-ui/pocket/pkg/display"
	"github.com/pocket-ui/pocket/pkg/errors"
	"github.com/pocket-ui/pocket/pkg/graphics"
	"github.com/pocket-ui/pocket/pkg/state"
)

// Slider track dimensions.
const (
	defaultSliderWidth  = 200
	defaultSliderHeight = 4
)

// SliderConfig configures a Slider widget.
type SliderConfig struct {
	Min float64
	Max float64
	// Step quantizes values to Min + k*Step. Zero means continuous.
	Step float64
	// Value holds the slider value. A nil cell gets a fresh cell at Min.
	Value *state.Cell[float64]
	// OnChange is invoked after each value transition. Setting the same
	// value does not fire it.
	OnChange func(value float64)
	Disabled bool
}

// Slider selects a value from a continuous or stepped range by dragging
// along a horizontal track.
type Slider struct {
	core.NodeBase
	cfg SliderConfig
}

// NewSlider creates a slider. The range and step are validated up front:
// Max must exceed Min and Step must not be negative.
func NewSlider(cfg SliderConfig) (*Slider, error) {
	if cfg.Max <= cfg.Min {
		return nil, &errors.ConfigError{
			Op:     "widgets.NewSlider",
			Field:  "Max",
			Value:  cfg.Max,
			Reason: "must be greater than Min",
		}
	}
	if cfg.Step < 0 {
		return nil, &errors.ConfigError{
			Op:     "widgets.NewSlider",
			Field:  "Step",
			Value:  cfg.Step,
			Reason: "must not be negative",
		}
	}
	if cfg.Value == nil {
		cfg.Value = state.NewCell(cfg.Min)
	}
	s := &Slider{cfg: cfg}
	s.Watch(cfg.Value, nil)
	return s, nil
}

// Value reports the current slider value.
func (s *Slider) Value() float64 { return s.cfg.Value.Get() }

// SetValue quantizes v to the configured step, clamps it to the range,
// and stores it. OnChange fires only when the stored value actually
// changed.
func (s *Slider) SetValue(v float64) {
	if s.cfg.Step > 0 {
		v = s.cfg.Min + math.Round((v-s.cfg.Min)/s.cfg.Step)*s.cfg.Step
	}
	v = clamp(v, s.cfg.Min, s.cfg.Max)
	if v == s.cfg.Value.Get() {
		return
	}
	s.cfg.Value.Set(v)
	if s.cfg.OnChange != nil {
		s.cfg.OnChange(v)
	}
}

func (s *Slider) trackWidth() float64 {
	if w := s.Style().Width; w != 0 {
		return w
	}
	return defaultSliderWidth
}

func (s *Slider) Build() *display.Node {
	v := clamp(s.cfg.Value.Get(), s.cfg.Min, s.cfg.Max)
	width := s.trackWidth()
	height := s.Style().Height
	if height == 0 {
		height = defaultSliderHeight
	}
	n := &display.Node{
		Kind:     display.KindSlider,
		Pos:      s.Position(),
		Size:     graphics.Size{Width: width, Height: height},
		Value:    v,
		Percent:  (v - s.cfg.Min) / (s.cfg.Max - s.cfg.Min),
		Disabled: s.cfg.Disabled,
	}
	if !s.cfg.Disabled {
		n.OnDrag = func(local graphics.Offset) {
			p := clamp(local.X/width, 0, 1)
			s.SetValue(s.cfg.Min + p*(s.cfg.Max-s.cfg.Min))
		}
	}
	applyStyle(n, s.Base())
	return n
}
