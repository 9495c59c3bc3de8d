// Package raster is a software drawing backend: it rasterizes frame
// descriptions into an in-memory RGBA image using the bundled Go fonts.
// It exists for headless rendering and tests; a GPU backend would
// implement the same engine.Backend interface.
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/pocket-ui/pocket/pkg/display"
	"github.com/pocket-ui/pocket/pkg/graphics"
)

// Backend rasterizes frames into an RGBA image. Create one per window
// surface; methods must be called from the render loop goroutine.
type Backend struct {
	img        *image.RGBA
	background graphics.Color
	fonts      *fontCache
}

// Option adjusts a Backend at construction.
type Option func(*Backend)

// WithBackground sets the frame clear color from a hex string.
// Malformed values fall back to white.
func WithBackground(hex string) Option {
	return func(b *Backend) { b.background = graphics.ParseHex(hex) }
}

// New creates a software backend with the given surface size in pixels.
func New(width, height int, opts ...Option) *Backend {
	b := &Backend{
		img:        image.NewRGBA(image.Rect(0, 0, width, height)),
		background: graphics.ColorWhite,
		fonts:      newFontCache(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Image returns the most recently drawn frame.
func (b *Backend) Image() *image.RGBA { return b.img }

// WritePNG encodes the current frame to path.
func (b *Backend) WritePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, b.img)
}

// MeasureText returns the pixel extent of one text run.
func (b *Backend) MeasureText(family string, size float64, text string) graphics.Size {
	face, err := b.fonts.face(family, size)
	if err != nil {
		return graphics.Size{}
	}
	metrics := face.Metrics()
	return graphics.Size{
		Width:  fixedToFloat(font.MeasureString(face, text)),
		Height: fixedToFloat(metrics.Ascent + metrics.Descent),
	}
}

// DrawFrame clears the surface and paints the description in declaration
// order, children over parents.
func (b *Backend) DrawFrame(root *display.Node, bounds *display.BoundsTable) error {
	draw.Draw(b.img, b.img.Bounds(), image.NewUniform(toNRGBA(b.background)), image.Point{}, draw.Src)
	return b.paint(root, bounds)
}

func (b *Backend) paint(n *display.Node, bounds *display.BoundsTable) error {
	if n == nil {
		return nil
	}
	r := b.nodeRect(n, bounds)

	switch n.Kind {
	case display.KindText:
		b.fillRect(r, n.Background, graphics.ColorTransparent)
		if err := b.drawText(n.FontFamily, n.FontSize, n.Text, n.Pos, n.Color, graphics.ColorBlack); err != nil {
			return err
		}
	case display.KindButton:
		b.fillRect(r, n.Background, graphics.RGB(0, 122, 255))
		at := graphics.Offset{X: r.X + n.Padding.Left, Y: r.Y + n.Padding.Top}
		if err := b.drawText(n.FontFamily, n.FontSize, n.Text, at, n.Color, graphics.ColorWhite); err != nil {
			return err
		}
	case display.KindSwitch:
		b.drawSwitch(n, r)
	case display.KindSlider:
		b.drawSlider(n, r)
	case display.KindTextField:
		if err := b.drawTextField(n, r); err != nil {
			return err
		}
	case display.KindDivider:
		b.fillRect(r, n.Color, graphics.RGB(0xE5, 0xE5, 0xEA))
	case display.KindImage:
		// Sources are not resolved in the software backend; the image's
		// box is painted as a neutral placeholder.
		b.fillRect(r, n.Background, graphics.RGB(0xC6, 0xC6, 0xC8))
	default:
		b.fillRect(r, n.Background, graphics.ColorTransparent)
	}

	for _, child := range n.Children {
		if err := b.paint(child, bounds); err != nil {
			return err
		}
	}
	return nil
}

// nodeRect prefers the engine-resolved bounds, falling back to the
// node's declared geometry.
func (b *Backend) nodeRect(n *display.Node, bounds *display.BoundsTable) graphics.Rect {
	if bounds != nil {
		if r, ok := bounds.Lookup(n); ok {
			return r
		}
	}
	return graphics.RectFrom(n.Pos, n.Size)
}

func (b *Backend) drawSwitch(n *display.Node, r graphics.Rect) {
	track := graphics.RGB(0xE5, 0xE5, 0xEA)
	if n.On {
		track = graphics.RGB(0x34, 0xC7, 0x59)
	}
	b.fillRect(r, n.Background, track)

	knob := graphics.Rect{X: r.X + 2, Y: r.Y + 2, Width: r.Height - 4, Height: r.Height - 4}
	if n.On {
		knob.X = r.X + r.Width - knob.Width - 2
	}
	b.fill(knob, graphics.ColorWhite)
}

func (b *Backend) drawSlider(n *display.Node, r graphics.Rect) {
	b.fillRect(r, n.Background, graphics.RGB(0xE5, 0xE5, 0xEA))
	filled := r
	filled.Width = r.Width * n.Percent
	b.fill(filled, graphics.RGB(0, 122, 255))

	const knobSize = 16.0
	knob := graphics.Rect{
		X:      r.X + r.Width*n.Percent - knobSize/2,
		Y:      r.Y + r.Height/2 - knobSize/2,
		Width:  knobSize,
		Height: knobSize,
	}
	b.fill(knob, graphics.ColorWhite)
}

func (b *Backend) drawTextField(n *display.Node, r graphics.Rect) error {
	b.fillRect(r, n.Background, graphics.ColorWhite)
	border := graphics.RGB(0xC6, 0xC6, 0xC8)
	if n.Focused {
		border = graphics.RGB(0, 122, 255)
	}
	b.strokeRect(r, border)

	text := n.Text
	textColor := graphics.ParseHexOr(n.Color, graphics.ColorBlack)
	if text == "" {
		text = n.Placeholder
		textColor = graphics.RGB(0x8E, 0x8E, 0x93)
	} else if n.Secure {
		masked := make([]rune, 0, len(text))
		for range text {
			masked = append(masked, '*')
		}
		text = string(masked)
	}
	at := graphics.Offset{X: r.X + 8, Y: r.Y + (r.Height-16)/2}
	return b.drawTextColor(n.FontFamily, n.FontSize, text, at, textColor)
}

// fillRect fills r with the node's hex background, using fallback when
// the hex is empty or malformed. A transparent result skips the fill.
func (b *Backend) fillRect(r graphics.Rect, hex string, fallback graphics.Color) {
	c := fallback
	if hex != "" {
		c = graphics.ParseHexOr(hex, graphics.FallbackColor)
	}
	b.fill(r, c)
}

func (b *Backend) fill(r graphics.Rect, c graphics.Color) {
	if c == graphics.ColorTransparent || r.Width <= 0 || r.Height <= 0 {
		return
	}
	dst := image.Rect(int(r.X), int(r.Y), int(r.X+r.Width), int(r.Y+r.Height))
	draw.Draw(b.img, dst, image.NewUniform(toNRGBA(c)), image.Point{}, draw.Over)
}

func (b *Backend) strokeRect(r graphics.Rect, c graphics.Color) {
	b.fill(graphics.Rect{X: r.X, Y: r.Y, Width: r.Width, Height: 1}, c)
	b.fill(graphics.Rect{X: r.X, Y: r.Y + r.Height - 1, Width: r.Width, Height: 1}, c)
	b.fill(graphics.Rect{X: r.X, Y: r.Y, Width: 1, Height: r.Height}, c)
	b.fill(graphics.Rect{X: r.X + r.Width - 1, Y: r.Y, Width: 1, Height: r.Height}, c)
}

func (b *Backend) drawText(family string, size float64, text string, at graphics.Offset, hex string, fallback graphics.Color) error {
	return b.drawTextColor(family, size, text, at, graphics.ParseHexOr(hex, fallback))
}

func (b *Backend) drawTextColor(family string, size float64, text string, at graphics.Offset, c graphics.Color) error {
	if text == "" {
		return nil
	}
	face, err := b.fonts.face(family, size)
	if err != nil {
		return err
	}
	drawer := &font.Drawer{
		Dst:  b.img,
		Src:  image.NewUniform(toNRGBA(c)),
		Face: face,
		Dot: fixed.Point26_6{
			X: floatToFixed(at.X),
			Y: floatToFixed(at.Y) + face.Metrics().Ascent,
		},
	}
	drawer.DrawString(text)
	return nil
}

func toNRGBA(c graphics.Color) color.NRGBA {
	v := uint32(c)
	return color.NRGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: uint8(v >> 24),
	}
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}
