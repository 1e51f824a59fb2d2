package grid

import (
	"errors"
	"image"
	"testing"
)

func testMetrics() Metrics {
	return newMetrics(Metrics{
		Left: 5, Right: 20,
		Ascender: 3, BaseLine: 10, Descender: 15,
		MarginWidth: 16, MarginHeight: 20,
		Width: 18 * 7, Height: 22 * 4,
	})
}

func TestIndexRoundTrip(t *testing.T) {
	for _, columns := range []int{1, 2, 3, 7, 16} {
		for i := range columns * 9 {
			x, y := IndexToCell(i, columns)
			if x < 0 || x >= columns || y < 0 {
				t.Fatalf("IndexToCell(%d, %d) = (%d, %d), out of grid", i, columns, x, y)
			}
			if got := CellToIndex(x, y, columns); got != i {
				t.Fatalf("CellToIndex(IndexToCell(%d, %d)) = %d", i, columns, got)
			}
		}
	}
}

func TestCursorAt(t *testing.T) {
	m := testMetrics()
	tests := []struct {
		index int
		want  Cursor
	}{
		{0, Cursor{0, 0}},
		{1, Cursor{1, 0}},
		{6, Cursor{6, 0}},
		{7, Cursor{0, 1}},
		{15, Cursor{1, 2}},
		{27, Cursor{6, 3}},
		// Inclusive upper bound: the row past the last one is accepted.
		{28, Cursor{0, 4}},
	}

	for _, tt := range tests {
		got, err := CursorAt(tt.index, m)
		if err != nil {
			t.Errorf("CursorAt(%d) error = %v", tt.index, err)
			continue
		}
		if got != tt.want {
			t.Errorf("CursorAt(%d) = %v, want %v", tt.index, got, tt.want)
		}
		if got.Index(m) != tt.index {
			t.Errorf("CursorAt(%d).Index() = %d", tt.index, got.Index(m))
		}
	}
}

func TestCursorAtOutOfRange(t *testing.T) {
	m := testMetrics()
	for _, index := range []int{-1, 35, 1000} {
		_, err := CursorAt(index, m)
		if !errors.Is(err, ErrRange) {
			t.Errorf("CursorAt(%d) error = %v, want ErrRange", index, err)
		}
	}
}

func TestNewCursor(t *testing.T) {
	m := testMetrics()
	tests := []struct {
		x, y int
		axis string
	}{
		{0, 0, ""},
		{7, 4, ""},
		{8, 0, "X"},
		{0, 5, "Y"},
		{-1, 0, "X"},
		{0, -1, "Y"},
	}

	for _, tt := range tests {
		c, err := NewCursor(tt.x, tt.y, m)
		if tt.axis == "" {
			if err != nil {
				t.Errorf("NewCursor(%d, %d) error = %v", tt.x, tt.y, err)
			} else if c.X != tt.x || c.Y != tt.y {
				t.Errorf("NewCursor(%d, %d) = %v", tt.x, tt.y, c)
			}
			continue
		}
		var re *RangeError
		if !errors.As(err, &re) {
			t.Errorf("NewCursor(%d, %d) error = %v, want *RangeError", tt.x, tt.y, err)
			continue
		}
		if re.Axis != tt.axis {
			t.Errorf("NewCursor(%d, %d) axis = %q, want %q", tt.x, tt.y, re.Axis, tt.axis)
		}
	}
}

func TestTexOrigin(t *testing.T) {
	m := testMetrics()
	tests := []struct {
		c    Cursor
		want image.Point
	}{
		{Cursor{0, 0}, image.Pt(2, 2)},
		{Cursor{1, 0}, image.Pt(20, 2)},
		{Cursor{2, 3}, image.Pt(38, 68)},
	}

	for _, tt := range tests {
		if got := m.TexOrigin(tt.c); got != tt.want {
			t.Errorf("TexOrigin(%v) = %v, want %v", tt.c, got, tt.want)
		}
	}

	if got := m.WidthLineY(Cursor{1, 1}); got != 22+2+16+1 {
		t.Errorf("WidthLineY() = %d, want %d", got, 22+2+16+1)
	}
	if got := m.Block(Cursor{1, 1}); got != image.Rect(18, 22, 36, 44) {
		t.Errorf("Block() = %v", got)
	}
}
