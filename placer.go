package nwfont

import (
	"image"
	"image/color"

	"github.com/gogpu/nwfont/glyph"
	"github.com/gogpu/nwfont/grid"
	"github.com/gogpu/nwfont/internal/fixedpoint"
)

// baselineOffset lifts every glyph above the template baseline.
const baselineOffset = 3

// Placement describes where one glyph lands in the atlas.
type Placement struct {
	Cursor grid.Cursor

	// Origin is the top-left pixel of the cell.
	Origin image.Point

	// Glyph metrics in whole pixels.
	Advance  int
	BearingX int
	BearingY int

	// AdvanceOrigin is the left edge of the advance box, centred in the cell.
	AdvanceOrigin int

	// DX and DY are the top-left pixel of the coverage bitmap.
	DX int
	DY int

	// Clamped reports whether DY was moved up to keep the bitmap inside
	// the cell.
	Clamped bool

	// WidthLine is the one pixel high advance marker line.
	WidthLine image.Rectangle

	// Bitmap is the area covered by the coverage bitmap.
	Bitmap image.Rectangle
}

// Placer draws glyphs into the cells of an atlas.
type Placer struct {
	metrics grid.Metrics
	dst     PixelBuffer
	opts    options
}

// NewPlacer returns a placer drawing into dst using the geometry m.
func NewPlacer(m grid.Metrics, dst PixelBuffer, opts ...Option) *Placer {
	return &Placer{
		metrics: m,
		dst:     dst,
		opts:    newOptions(opts),
	}
}

// Layout computes the placement of g in cell c without drawing.
func (p *Placer) Layout(c grid.Cursor, g *glyph.Glyph) Placement {
	m := p.metrics
	pl := Placement{
		Cursor:   c,
		Origin:   m.TexOrigin(c),
		Advance:  fixedpoint.F26Dot6ToInt(g.Advance),
		BearingX: fixedpoint.F26Dot6ToInt(g.BearingX),
		BearingY: fixedpoint.F26Dot6ToInt(g.BearingY),
	}

	pl.AdvanceOrigin = pl.Origin.X + floorDiv(m.CellWidth-pl.Advance, 2)

	bottom := pl.Origin.Y + m.CellHeight
	pl.DY = pl.Origin.Y + m.BaseLine - pl.BearingY - baselineOffset
	if pl.DY+g.Height > bottom {
		pl.DY = bottom - g.Height
		pl.Clamped = true
	}
	pl.DX = pl.AdvanceOrigin + pl.BearingX

	lineY := m.WidthLineY(c)
	pl.WidthLine = image.Rect(pl.AdvanceOrigin, lineY, pl.AdvanceOrigin+max(pl.Advance, 0), lineY+1)
	pl.Bitmap = image.Rect(pl.DX, pl.DY, pl.DX+g.Width, pl.DY+g.Height)
	return pl
}

// Draw composites g into cell c: it records the advance width on the line
// below the cell and writes the coverage bitmap as inverted grey with
// alpha equal to the coverage.
//
// Nothing is written when any part of the glyph would fall outside the
// atlas; Draw then returns an *OutOfBoundsError.
func (p *Placer) Draw(c grid.Cursor, g *glyph.Glyph) (Placement, error) {
	pl := p.Layout(c, g)

	bounds := p.dst.Bounds()
	for _, r := range []image.Rectangle{pl.WidthLine, pl.Bitmap} {
		if !r.Empty() && !r.In(bounds) {
			return pl, &OutOfBoundsError{Rect: r, Bounds: bounds}
		}
	}

	for x := pl.WidthLine.Min.X; x < pl.WidthLine.Max.X; x++ {
		if err := p.dst.SetNRGBA(x, pl.WidthLine.Min.Y, p.opts.advanceColor); err != nil {
			return pl, err
		}
	}

	for row := range g.Height {
		for col := range g.Width {
			a := g.At(col, row)
			ink := color.NRGBA{R: 255 - a, G: 255 - a, B: 255 - a, A: a}
			if err := p.dst.SetNRGBA(pl.DX+col, pl.DY+row, ink); err != nil {
				return pl, err
			}
		}
	}
	return pl, nil
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
