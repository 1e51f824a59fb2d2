// Package grid infers fixed-grid atlas geometry from a template image and
// maps glyph indices to grid cells.
//
// A template encodes its geometry with marker pixels ([MarkerColor]) in the
// reserved row 0 and column 0:
//
//	(0,0)        always a marker
//	row 0        two markers: Left and Right edge of the font box
//	column 0     three markers: Ascender, BaseLine, Descender
//	(1,1)        first pixel of the margin area; its colour is the margin colour
//
// The margin run length along row 1 and column 1 gives the size of one block.
// Each block is MarginWidth+2 by MarginHeight+2 pixels and the drawable cell
// is inset 2 pixels from the block origin.
package grid

import (
	"fmt"
	"image"
	"image/color"
)

// MarkerColor is the sentinel colour of the marker pixels: white with zero
// alpha. It must be compared non-premultiplied.
var MarkerColor = color.NRGBA{R: 255, G: 255, B: 255, A: 0}

// cellInset is the border between a block origin and its drawable cell.
const cellInset = 2

// Metrics is the grid geometry of a template. It is computed once by
// [Infer] and never modified afterwards.
type Metrics struct {
	// Marker positions along row 0 and column 0.
	Left      int
	Right     int
	Ascender  int
	BaseLine  int
	Descender int

	MarginColor  color.NRGBA
	MarginWidth  int
	MarginHeight int

	CellWidth   int
	CellHeight  int
	BlockWidth  int
	BlockHeight int
	FontWidth   int
	FontHeight  int
	Columns     int
	Rows        int

	// Width and Height of the template image.
	Width  int
	Height int
}

// newMetrics fills in the derived fields.
func newMetrics(m Metrics) Metrics {
	m.CellWidth = m.MarginWidth - 2
	m.CellHeight = m.MarginHeight - 4
	m.BlockWidth = m.MarginWidth + 2
	m.BlockHeight = m.MarginHeight + 2
	m.FontWidth = m.Right - m.Left
	m.FontHeight = m.Descender - m.Ascender
	m.Columns = m.Width / m.BlockWidth
	m.Rows = m.Height / m.BlockHeight
	return m
}

// Cells returns the number of usable cells in the grid.
func (m Metrics) Cells() int {
	return m.Columns * m.Rows
}

// PixelSize returns the square pixel size glyphs are rasterized at.
func (m Metrics) PixelSize() int {
	return m.FontWidth - 2
}

// TexOrigin returns the top-left pixel of the drawable cell at c.
func (m Metrics) TexOrigin(c Cursor) image.Point {
	return image.Point{
		X: c.X*m.BlockWidth + cellInset,
		Y: c.Y*m.BlockHeight + cellInset,
	}
}

// WidthLineY returns the row on which the advance width of the glyph in
// cell c is recorded.
func (m Metrics) WidthLineY(c Cursor) int {
	return m.TexOrigin(c).Y + m.CellHeight + 1
}

// Block returns the full block rectangle of cell c, border included.
func (m Metrics) Block(c Cursor) image.Rectangle {
	x := c.X * m.BlockWidth
	y := c.Y * m.BlockHeight
	return image.Rect(x, y, x+m.BlockWidth, y+m.BlockHeight)
}

func (m Metrics) String() string {
	return fmt.Sprintf("Left: %d\nRight: %d\nAscender: %d\nDescender: %d\nBaseline: %d\n"+
		"Block Size: (%d, %d)\nMargin: (%d, %d)\nCell: (%d, %d)\nColumns: %d\nRows: %d",
		m.Left, m.Right,
		m.Ascender, m.Descender, m.BaseLine,
		m.BlockWidth, m.BlockHeight,
		m.MarginWidth, m.MarginHeight,
		m.CellWidth, m.CellHeight,
		m.Columns, m.Rows)
}
