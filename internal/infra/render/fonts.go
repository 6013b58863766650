package render

import (
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

type fontStyle int

const (
	styleRegular fontStyle = iota
	styleBold
	styleBoldItalic
	styleMono
)

//nolint:gochecknoglobals
var (
	fontsOnce sync.Once
	fonts     map[fontStyle]*opentype.Font
)

func loadFonts() {
	sources := map[fontStyle][]byte{
		styleRegular:    goregular.TTF,
		styleBold:       gobold.TTF,
		styleBoldItalic: gobolditalic.TTF,
		styleMono:       gomono.TTF,
	}

	fonts = make(map[fontStyle]*opentype.Font, len(sources))
	for style, ttf := range sources {
		parsed, err := opentype.Parse(ttf)
		if err != nil {
			continue
		}
		fonts[style] = parsed
	}
}

// newFace returns a face for one render. Faces are not safe for concurrent
// use, so they are never shared between renders. A font that fails to load
// falls back to basicfont.
func newFace(style fontStyle, size float64) font.Face {
	fontsOnce.Do(loadFonts)

	parsed, ok := fonts[style]
	if !ok {
		return basicfont.Face7x13
	}

	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return basicfont.Face7x13
	}

	return face
}
