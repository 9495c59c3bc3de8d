package widgets

import (
	"github.com/pocket-ui/pocket/pkg/core"
	"github.com/pocket-ui/pocket/pkg/display"
	"github.com/pocket-ui/pocket/pkg/graphics"
	"github.com/pocket-ui/pocket/pkg/state"
)

// Default button padding around the measured label.
var defaultButtonPadding = graphics.InsetsSymmetric(10, 20)

// ButtonConfig configures a Button widget.
type ButtonConfig struct {
	// Label is the button text. LabelCell, when set, supplies live text
	// instead and triggers rebuilds on change.
	Label     string
	LabelCell *state.Cell[string]
	// OnPress is invoked on a primary-button press inside the button's
	// bounds. Never invoked while Disabled.
	OnPress  func()
	Disabled bool

	Background string
	Color      string
	FontSize   float64
	// Padding defaults to 10 vertical, 20 horizontal. The button's drawn
	// extent is the measured label plus padding on each side.
	Padding graphics.EdgeInsets
}

// Button is a tappable labeled control. Its extent is content-driven:
// unless the style sets an explicit size, the render loop measures the
// label and adds the padding.
type Button struct {
	core.NodeBase
	cfg ButtonConfig
}

// NewButton creates a button.
func NewButton(cfg ButtonConfig) *Button {
	if cfg.FontSize == 0 {
		cfg.FontSize = DefaultFontSize
	}
	if cfg.Padding == (graphics.EdgeInsets{}) {
		cfg.Padding = defaultButtonPadding
	}
	b := &Button{cfg: cfg}
	if cfg.LabelCell != nil {
		b.Watch(cfg.LabelCell, nil)
	}
	return b
}

func (b *Button) Build() *display.Node {
	label := b.cfg.Label
	if b.cfg.LabelCell != nil {
		label = b.cfg.LabelCell.Get()
	}
	n := &display.Node{
		Kind:       display.KindButton,
		Pos:        b.Position(),
		Text:       label,
		FontSize:   b.cfg.FontSize,
		Color:      b.cfg.Color,
		Background: b.cfg.Background,
		Disabled:   b.cfg.Disabled,
	}
	if !b.cfg.Disabled {
		n.OnPress = b.cfg.OnPress
	}
	applyStyle(n, b.Base())
	n.Padding = b.cfg.Padding.Normalized()
	return n
}
