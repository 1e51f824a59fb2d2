// Package gridtest builds synthetic atlas templates for tests.
package gridtest

import (
	"image"
	"image/color"
	"image/draw"
)

// Marker is the sentinel colour of template marker pixels.
var Marker = color.NRGBA{R: 255, G: 255, B: 255, A: 0}

// Layout describes a template to generate.
type Layout struct {
	Columns int
	Rows    int

	MarginWidth  int
	MarginHeight int

	Left      int
	Right     int
	Ascender  int
	BaseLine  int
	Descender int

	Margin     color.NRGBA
	Background color.NRGBA
}

// Default returns a 2x1 grid of 18x22 blocks with a 16x20 margin area and
// markers at Left=5, Right=20, Ascender=3, BaseLine=10, Descender=15.
func Default() Layout {
	return Layout{
		Columns:      2,
		Rows:         1,
		MarginWidth:  16,
		MarginHeight: 20,
		Left:         5,
		Right:        20,
		Ascender:     3,
		BaseLine:     10,
		Descender:    15,
		Margin:       color.NRGBA{R: 0, G: 128, B: 0, A: 255},
		Background:   color.NRGBA{R: 0, G: 0, B: 0, A: 255},
	}
}

// Tall returns Default with the baseline moved down and a taller margin
// area. Real fonts at the 13 pixel size then keep their ink clear of the
// marker row and the margin scan lines.
func Tall() Layout {
	l := Default()
	l.BaseLine = 13
	l.Descender = 18
	l.MarginHeight = 22
	return l
}

// BlockWidth returns the width of one block.
func (l Layout) BlockWidth() int { return l.MarginWidth + 2 }

// BlockHeight returns the height of one block.
func (l Layout) BlockHeight() int { return l.MarginHeight + 2 }

// New renders the template described by l.
func New(l Layout) *image.NRGBA {
	bw, bh := l.BlockWidth(), l.BlockHeight()
	img := image.NewNRGBA(image.Rect(0, 0, l.Columns*bw, l.Rows*bh))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: l.Background}, image.Point{}, draw.Src)

	for row := range l.Rows {
		for col := range l.Columns {
			r := image.Rect(col*bw+1, row*bh+1, col*bw+1+l.MarginWidth, row*bh+1+l.MarginHeight)
			draw.Draw(img, r, &image.Uniform{C: l.Margin}, image.Point{}, draw.Src)
		}
	}

	img.SetNRGBA(0, 0, Marker)
	img.SetNRGBA(l.Left, 0, Marker)
	img.SetNRGBA(l.Right, 0, Marker)
	img.SetNRGBA(0, l.Ascender, Marker)
	img.SetNRGBA(0, l.BaseLine, Marker)
	img.SetNRGBA(0, l.Descender, Marker)
	return img
}
