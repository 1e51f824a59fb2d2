package grid

import "fmt"

// Cursor addresses one cell of the grid. Obtain a validated Cursor with
// [NewCursor] or [CursorAt].
type Cursor struct {
	X int
	Y int
}

// NewCursor returns the cursor (x, y) after checking it against the grid.
//
// The upper bound is inclusive: x == Columns and y == Rows are accepted,
// matching the atlas templates this package was written for. Such a cursor
// addresses a block outside the image and drawing there fails later with an
// out of bounds error.
func NewCursor(x, y int, m Metrics) (Cursor, error) {
	if x < 0 || x > m.Columns {
		return Cursor{}, &RangeError{Axis: "X", Value: x, Limit: m.Columns}
	}
	if y < 0 || y > m.Rows {
		return Cursor{}, &RangeError{Axis: "Y", Value: y, Limit: m.Rows}
	}
	return Cursor{X: x, Y: y}, nil
}

// CursorAt returns the cursor for a linear glyph index.
func CursorAt(index int, m Metrics) (Cursor, error) {
	if index < 0 {
		return Cursor{}, &RangeError{Axis: "index", Value: index, Limit: 0}
	}
	x, y := IndexToCell(index, m.Columns)
	return NewCursor(x, y, m)
}

// Index returns the linear glyph index of c.
func (c Cursor) Index(m Metrics) int {
	return CellToIndex(c.X, c.Y, m.Columns)
}

func (c Cursor) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

// IndexToCell splits a non-negative linear index into a column and a row.
func IndexToCell(index, columns int) (x, y int) {
	x = index % columns
	y = (index - x) / columns
	return x, y
}

// CellToIndex is the inverse of [IndexToCell].
func CellToIndex(x, y, columns int) int {
	return y*columns + x
}
