package canvas

import (
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	parseOnce   sync.Once
	regularFont *truetype.Font
	boldFont    *truetype.Font
	parseErr    error
)

func parseFonts() error {
	parseOnce.Do(func() {
		regularFont, parseErr = truetype.Parse(goregular.TTF)
		if parseErr != nil {
			return
		}
		boldFont, parseErr = truetype.Parse(gobold.TTF)
	})
	return parseErr
}

type faceKey struct {
	size float64
	bold bool
}

// faceCache holds faces for one surface. Faces carry glyph caches and are not
// safe for concurrent use; the parsed fonts are shared.
type faceCache map[faceKey]font.Face

func (fc faceCache) get(size float64, bold bool) font.Face {
	key := faceKey{size: size, bold: bold}
	if f, ok := fc[key]; ok {
		return f
	}
	ttf := regularFont
	if bold {
		ttf = boldFont
	}
	f := truetype.NewFace(ttf, &truetype.Options{Size: size, DPI: 72, Hinting: font.HintingFull})
	fc[key] = f
	return f
}
