// Package glyph rasterizes single characters into 8-bit coverage bitmaps.
//
// A [Source] holds parsed font data. It hands out a [Rasterizer] for one
// square pixel size; the rasterizer renders antialiased glyphs with hinting
// disabled and reports their metrics in 26.6 fixed point, the way FreeType
// does:
//
//	src, err := glyph.NewSourceFromFile("font.ttf")
//	if err != nil {
//		return err
//	}
//	r, err := src.Rasterizer(13)
//	if err != nil {
//		return err
//	}
//	g, err := r.Rasterize('A')
//
// Two backends are built in: "ximage" (golang.org/x/image/font/opentype,
// the default) and "freetype" (github.com/golang/freetype/truetype).
package glyph

import "golang.org/x/image/math/fixed"

// Glyph is one rasterized character.
type Glyph struct {
	Rune rune

	// Advance is the horizontal distance to the next glyph origin.
	Advance fixed.Int26_6

	// BearingX is the offset from the origin to the left edge of the ink.
	BearingX fixed.Int26_6

	// BearingY is the offset from the baseline up to the top of the ink.
	BearingY fixed.Int26_6

	// Width and Height of the coverage bitmap in pixels.
	Width  int
	Height int

	// Coverage holds Width*Height ink values, row-major, 0 = no ink.
	Coverage []byte
}

// At returns the coverage at column x, row y of the bitmap.
func (g *Glyph) At(x, y int) byte {
	return g.Coverage[y*g.Width+x]
}

// Rasterizer renders glyphs at a fixed pixel size.
type Rasterizer interface {
	// Rasterize renders r. It returns an *UnsupportedRuneError when the
	// font has no glyph for r.
	Rasterize(r rune) (*Glyph, error)
}
