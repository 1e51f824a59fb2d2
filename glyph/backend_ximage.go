package glyph

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// ximageBackend implements Backend using golang.org/x/image/font/opentype.
type ximageBackend struct{}

// Parse implements Backend.Parse.
func (ximageBackend) Parse(data []byte) (Font, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("glyph: failed to parse font: %w", err)
	}
	return &ximageFont{font: f}, nil
}

type ximageFont struct {
	font *opentype.Font
}

// Name implements Font.Name.
func (f *ximageFont) Name() string {
	if name, err := f.font.Name(nil, sfnt.NameIDFamily); err == nil {
		return name
	}
	return ""
}

// HasGlyph implements Font.HasGlyph.
func (f *ximageFont) HasGlyph(r rune) bool {
	var buf sfnt.Buffer
	idx, err := f.font.GlyphIndex(&buf, r)
	return err == nil && idx != 0
}

// NewFace implements Font.NewFace.
func (f *ximageFont) NewFace(pixelSize int) (font.Face, error) {
	// At 72 DPI one point is one pixel, so Size is the pixel size.
	face, err := opentype.NewFace(f.font, &opentype.FaceOptions{
		Size:    float64(pixelSize),
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("glyph: failed to create face: %w", err)
	}
	return face, nil
}
