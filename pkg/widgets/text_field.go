package widgets

import (
	"unicode/utf8"

	"github.com/pocket-ui/pocket/pkg/core"
	"github.com/pocket-ui/pocket/pkg/display"
	"github.com/pocket-ui/pocket/pkg/graphics"
	"github.com/pocket-ui/pocket/pkg/state"
)

// Text field box dimensions.
const (
	defaultFieldWidth  = 200
	defaultFieldHeight = 40
)

// Editing keys recognized by TextField. Any other key value is treated
// as literal input.
const (
	KeyBackspace = "backspace"
	KeyEnter     = "enter"
)

// TextFieldConfig configures a TextField widget.
type TextFieldConfig struct {
	// Text holds the field content. A nil cell gets a fresh empty cell.
	Text        *state.Cell[string]
	Placeholder string
	// MaxLength caps the content length in runes. Zero means unlimited.
	MaxLength int
	// Secure marks the content for obscured rendering.
	Secure bool
	// OnSubmit is invoked with the current content when enter is pressed.
	OnSubmit func(text string)
	Disabled bool
}

// TextField is a single-line editable text box. A press focuses it; key
// events are routed to the focused field by the render loop.
type TextField struct {
	core.NodeBase
	cfg     TextFieldConfig
	focused *state.Cell[bool]
}

// NewTextField creates a text field bound to cfg.Text.
func NewTextField(cfg TextFieldConfig) *TextField {
	if cfg.Text == nil {
		cfg.Text = state.NewCell("")
	}
	f := &TextField{cfg: cfg, focused: state.NewCell(false)}
	f.Watch(cfg.Text, nil)
	f.Watch(f.focused, nil)
	return f
}

// Text reports the current content.
func (f *TextField) Text() string { return f.cfg.Text.Get() }

// Focused reports whether the field currently receives key input.
func (f *TextField) Focused() bool { return f.focused.Get() }

// Focus directs subsequent key input to this field.
func (f *TextField) Focus() {
	if !f.cfg.Disabled {
		f.focused.Set(true)
	}
}

// Blur releases key input.
func (f *TextField) Blur() { f.focused.Set(false) }

// HandleKey applies one key event to the content: backspace removes the
// last rune, enter submits, anything else is appended subject to
// MaxLength.
func (f *TextField) HandleKey(key string) {
	if f.cfg.Disabled {
		return
	}
	switch key {
	case KeyBackspace:
		cur := f.cfg.Text.Get()
		if cur == "" {
			return
		}
		_, size := utf8.DecodeLastRuneInString(cur)
		f.cfg.Text.Set(cur[:len(cur)-size])
	case KeyEnter:
		if f.cfg.OnSubmit != nil {
			f.cfg.OnSubmit(f.cfg.Text.Get())
		}
	default:
		cur := f.cfg.Text.Get()
		if f.cfg.MaxLength > 0 &&
			utf8.RuneCountInString(cur)+utf8.RuneCountInString(key) > f.cfg.MaxLength {
			return
		}
		f.cfg.Text.Set(cur + key)
	}
}

func (f *TextField) Build() *display.Node {
	n := &display.Node{
		Kind:        display.KindTextField,
		Pos:         f.Position(),
		Size:        graphics.Size{Width: defaultFieldWidth, Height: defaultFieldHeight},
		Text:        f.cfg.Text.Get(),
		Placeholder: f.cfg.Placeholder,
		Focused:     f.focused.Get(),
		Secure:      f.cfg.Secure,
		Disabled:    f.cfg.Disabled,
	}
	st := f.Style()
	if st.Width != 0 || st.Height != 0 {
		n.Size = graphics.Size{Width: st.Width, Height: st.Height}
	}
	if !f.cfg.Disabled {
		n.OnPress = f.Focus
		n.OnKey = f.HandleKey
	}
	applyStyle(n, f.Base())
	return n
}
