package glyph

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
)

// freetypeBackend implements Backend using the Go port of FreeType.
// It only reads TrueType outlines; CFF based OpenType fonts need "ximage".
type freetypeBackend struct{}

// Parse implements Backend.Parse.
func (freetypeBackend) Parse(data []byte) (Font, error) {
	f, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("glyph: failed to parse font: %w", err)
	}
	return &freetypeFont{font: f}, nil
}

type freetypeFont struct {
	font *truetype.Font
}

// Name implements Font.Name.
func (f *freetypeFont) Name() string {
	return f.font.Name(truetype.NameIDFontFamily)
}

// HasGlyph implements Font.HasGlyph.
func (f *freetypeFont) HasGlyph(r rune) bool {
	return f.font.Index(r) != 0
}

// NewFace implements Font.NewFace.
func (f *freetypeFont) NewFace(pixelSize int) (font.Face, error) {
	return truetype.NewFace(f.font, &truetype.Options{
		Size:    float64(pixelSize),
		DPI:     72,
		Hinting: font.HintingNone,
	}), nil
}
