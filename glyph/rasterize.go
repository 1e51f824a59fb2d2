package glyph

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// faceRasterizer renders glyphs through an x/image font.Face.
// The face keeps internal scratch buffers, so a faceRasterizer must not be
// used from several goroutines at once.
type faceRasterizer struct {
	font Font
	face font.Face
}

// Rasterize implements Rasterizer.Rasterize.
func (fr *faceRasterizer) Rasterize(r rune) (*Glyph, error) {
	if !fr.font.HasGlyph(r) {
		return nil, &UnsupportedRuneError{Runes: []rune{r}}
	}

	bounds, advance, ok := fr.face.GlyphBounds(r)
	if !ok {
		return nil, &UnsupportedRuneError{Runes: []rune{r}}
	}

	// Render with the origin at (0,0); dr is then relative to the origin.
	dr, mask, maskp, _, ok := fr.face.Glyph(fixed.Point26_6{}, r)
	if !ok {
		return nil, &UnsupportedRuneError{Runes: []rune{r}}
	}

	g := &Glyph{
		Rune:     r,
		Advance:  advance,
		BearingX: bounds.Min.X,
		BearingY: -bounds.Min.Y,
	}
	if mask == nil || dr.Empty() {
		return g, nil
	}

	g.Width = dr.Dx()
	g.Height = dr.Dy()
	g.Coverage = make([]byte, g.Width*g.Height)
	copyCoverage(g.Coverage, g.Width, g.Height, mask, maskp)
	return g, nil
}

// copyCoverage copies a w x h window of mask starting at mp into dst.
// The face owns mask and reuses it on the next call.
func copyCoverage(dst []byte, w, h int, mask image.Image, mp image.Point) {
	if a, ok := mask.(*image.Alpha); ok {
		for y := range h {
			off := a.PixOffset(mp.X, mp.Y+y)
			copy(dst[y*w:(y+1)*w], a.Pix[off:off+w])
		}
		return
	}

	for y := range h {
		for x := range w {
			c := color.AlphaModel.Convert(mask.At(mp.X+x, mp.Y+y)).(color.Alpha)
			dst[y*w+x] = c.A
		}
	}
}
