package widgets

import (
	"github.com/pocket-ui/pocket/pkg/core"
	"github.com/pocket-ui/pocket/pkg/display"
	"github.com/pocket-ui/pocket/pkg/state"
)

// DefaultFontSize is used when a text-bearing widget leaves FontSize zero.
const DefaultFontSize = 16

// TextConfig configures a Text widget. Either Text (a fixed string) or
// Cell (live text that triggers rebuilds on change) supplies the content;
// Cell wins when both are set.
type TextConfig struct {
	Text       string
	Cell       *state.Cell[string]
	FontFamily string
	// FontSize defaults to DefaultFontSize.
	FontSize float64
	// Color is a hex color string. Malformed values fall back to the
	// backend default at draw time.
	Color string
	// Align is "left", "center" or "right". Empty means left.
	Align string
}

// Text displays a single run of text.
type Text struct {
	core.NodeBase
	cfg TextConfig
}

// NewText creates a text widget. When cfg.Cell is set the widget watches
// it, so a Set on the cell schedules a rebuild once the widget is
// mounted.
func NewText(cfg TextConfig) *Text {
	if cfg.FontSize == 0 {
		cfg.FontSize = DefaultFontSize
	}
	t := &Text{cfg: cfg}
	if cfg.Cell != nil {
		t.Watch(cfg.Cell, nil)
	}
	return t
}

func (t *Text) Build() *display.Node {
	content := t.cfg.Text
	if t.cfg.Cell != nil {
		content = t.cfg.Cell.Get()
	}
	n := &display.Node{
		Kind:       display.KindText,
		Pos:        t.Position(),
		Text:       content,
		FontFamily: t.cfg.FontFamily,
		FontSize:   t.cfg.FontSize,
		Color:      t.cfg.Color,
		Align:      t.cfg.Align,
	}
	applyStyle(n, t.Base())
	return n
}
