package widgets

import (
	"github.com/pocket-ui/pocket/pkg/core"
	"github.com/pocket-ui/pocket/pkg/display"
	"github.com/pocket-ui/pocket/pkg/graphics"
	"github.com/pocket-ui/pocket/pkg/state"
)

// Switch track dimensions.
const (
	defaultSwitchWidth  = 51
	defaultSwitchHeight = 31
)

// SwitchConfig configures a Switch widget.
type SwitchConfig struct {
	// On holds the switch state. A nil cell gets a fresh off cell, making
	// the switch self-contained.
	On *state.Cell[bool]
	// OnToggle is invoked with the new state after each toggle.
	OnToggle func(on bool)
	Disabled bool
}

// Switch is a two-state toggle control.
type Switch struct {
	core.NodeBase
	cfg SwitchConfig
}

// NewSwitch creates a switch bound to cfg.On.
func NewSwitch(cfg SwitchConfig) *Switch {
	if cfg.On == nil {
		cfg.On = state.NewCell(false)
	}
	s := &Switch{cfg: cfg}
	s.Watch(cfg.On, nil)
	return s
}

// On reports the current switch state.
func (s *Switch) On() bool { return s.cfg.On.Get() }

// Toggle flips the switch state and notifies OnToggle. A no-op while
// disabled.
func (s *Switch) Toggle() {
	if s.cfg.Disabled {
		return
	}
	next := !s.cfg.On.Get()
	s.cfg.On.Set(next)
	if s.cfg.OnToggle != nil {
		s.cfg.OnToggle(next)
	}
}

func (s *Switch) Build() *display.Node {
	n := &display.Node{
		Kind:     display.KindSwitch,
		Pos:      s.Position(),
		Size:     graphics.Size{Width: defaultSwitchWidth, Height: defaultSwitchHeight},
		On:       s.cfg.On.Get(),
		Disabled: s.cfg.Disabled,
	}
	st := s.Style()
	if st.Width != 0 || st.Height != 0 {
		n.Size = graphics.Size{Width: st.Width, Height: st.Height}
	}
	if !s.cfg.Disabled {
		n.OnPress = s.Toggle
	}
	applyStyle(n, s.Base())
	return n
}
