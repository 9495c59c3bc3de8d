package widgets

import (
	"github.com/pocket-ui/pocket/pkg/core"
	"github.com/pocket-ui/pocket/pkg/display"
	"github.com/pocket-ui/pocket/pkg/graphics"
)

// ImageConfig configures an Image widget.
type ImageConfig struct {
	// Source identifies the image asset; the drawing backend resolves it.
	Source string
	Width  float64
	Height float64
}

// Image displays a static image asset at a fixed extent.
type Image struct {
	core.NodeBase
	cfg ImageConfig
}

// NewImage creates an image widget.
func NewImage(cfg ImageConfig) *Image {
	i := &Image{cfg: cfg}
	i.SetStyle(core.Style{Width: cfg.Width, Height: cfg.Height})
	return i
}

func (i *Image) Build() *display.Node {
	n := &display.Node{
		Kind:   display.KindImage,
		Pos:    i.Position(),
		Size:   graphics.Size{Width: i.cfg.Width, Height: i.cfg.Height},
		Source: i.cfg.Source,
	}
	applyStyle(n, i.Base())
	return n
}
