package grid

import (
	"fmt"
	"image"
	"image/color"
)

// PixelReader is the read access [Infer] needs. *image.NRGBA implements it.
type PixelReader interface {
	Bounds() image.Rectangle
	NRGBAAt(x, y int) color.NRGBA
}

// Infer scans the reserved row and column of a template and returns its grid
// metrics. It returns a *FormatError when a marker is missing or the
// resulting geometry is unusable.
func Infer(img PixelReader) (Metrics, error) {
	s := scanner{img: img, origin: img.Bounds().Min}
	s.width = img.Bounds().Dx()
	s.height = img.Bounds().Dy()

	if s.width < 2 || s.height < 2 {
		return Metrics{}, &FormatError{
			Field:  "size",
			Reason: fmt.Sprintf("template is %dx%d, need at least 2x2", s.width, s.height),
		}
	}

	if c := s.at(0, 0); c != MarkerColor {
		return Metrics{}, &FormatError{
			Field:  "reserved pixel",
			Reason: fmt.Sprintf("pixel (0,0) is %v, want %v", c, MarkerColor),
		}
	}

	var m Metrics
	var err error
	m.Width = s.width
	m.Height = s.height

	if m.Left, err = s.row(1, "Left"); err != nil {
		return Metrics{}, err
	}
	if m.Right, err = s.row(m.Left+1, "Right"); err != nil {
		return Metrics{}, err
	}
	if m.Ascender, err = s.column(1, "Ascender"); err != nil {
		return Metrics{}, err
	}
	if m.BaseLine, err = s.column(m.Ascender+1, "BaseLine"); err != nil {
		return Metrics{}, err
	}
	if m.Descender, err = s.column(m.BaseLine+1, "Descender"); err != nil {
		return Metrics{}, err
	}

	m.MarginColor = s.at(1, 1)
	for x := 1; x < s.width && s.at(x, 1) == m.MarginColor; x++ {
		m.MarginWidth++
	}
	for y := 1; y < s.height && s.at(1, y) == m.MarginColor; y++ {
		m.MarginHeight++
	}

	m = newMetrics(m)
	if err := m.validate(); err != nil {
		return Metrics{}, err
	}
	return m, nil
}

func (m Metrics) validate() error {
	switch {
	case m.MarginWidth < 2:
		return &FormatError{Field: "MarginWidth", Reason: fmt.Sprintf("%d pixels, need at least 2", m.MarginWidth)}
	case m.MarginHeight < 4:
		return &FormatError{Field: "MarginHeight", Reason: fmt.Sprintf("%d pixels, need at least 4", m.MarginHeight)}
	case m.Columns < 1:
		return &FormatError{Field: "Columns", Reason: fmt.Sprintf("block width %d does not fit in %d pixels", m.BlockWidth, m.Width)}
	case m.Rows < 1:
		return &FormatError{Field: "Rows", Reason: fmt.Sprintf("block height %d does not fit in %d pixels", m.BlockHeight, m.Height)}
	}
	return nil
}

// scanner reads pixels relative to the template's bounds.
type scanner struct {
	img    PixelReader
	origin image.Point
	width  int
	height int
}

func (s scanner) at(x, y int) color.NRGBA {
	return s.img.NRGBAAt(s.origin.X+x, s.origin.Y+y)
}

// row returns the first marker on row 0 at or after column from.
func (s scanner) row(from int, field string) (int, error) {
	for x := from; x < s.width; x++ {
		if s.at(x, 0) == MarkerColor {
			return x, nil
		}
	}
	return 0, &FormatError{Field: field, Reason: fmt.Sprintf("no marker on row 0 after column %d", from-1)}
}

// column returns the first marker on column 0 at or after row from.
func (s scanner) column(from int, field string) (int, error) {
	for y := from; y < s.height; y++ {
		if s.at(0, y) == MarkerColor {
			return y, nil
		}
	}
	return 0, &FormatError{Field: field, Reason: fmt.Sprintf("no marker on column 0 after row %d", from-1)}
}
