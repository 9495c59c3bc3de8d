package raster

import (
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// faceKey identifies one sized face in the cache.
type faceKey struct {
	family string
	size   float64
}

// fontCache parses font data once and builds sized faces on demand.
// Faces are not safe for concurrent use, which is fine: the backend runs
// on the render loop goroutine only, and the mutex just guards cache
// population.
type fontCache struct {
	mu    sync.Mutex
	fonts map[string]*opentype.Font
	faces map[faceKey]font.Face
}

func newFontCache() *fontCache {
	return &fontCache{
		fonts: make(map[string]*opentype.Font),
		faces: make(map[faceKey]font.Face),
	}
}

// fontData maps family names onto the bundled Go fonts. Unknown
// families fall back to the regular face.
func fontData(family string) []byte {
	switch family {
	case "monospace":
		return gomono.TTF
	case "serif", "italic":
		return goitalic.TTF
	case "bold":
		return gobold.TTF
	default:
		return goregular.TTF
	}
}

func (c *fontCache) face(family string, size float64) (font.Face, error) {
	if size <= 0 {
		size = 16
	}
	key := faceKey{family: family, size: size}

	c.mu.Lock()
	defer c.mu.Unlock()
	if f, ok := c.faces[key]; ok {
		return f, nil
	}

	parsed, ok := c.fonts[family]
	if !ok {
		var err error
		parsed, err = opentype.Parse(fontData(family))
		if err != nil {
			return nil, err
		}
		c.fonts[family] = parsed
	}

	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, err
	}
	c.faces[key] = face
	return face, nil
}
