package nwfont

import (
	"image"
	"image/color"

	imgio "github.com/gogpu/nwfont/internal/image"
)

// PixelBuffer is the pixel access the glyph placer needs.
type PixelBuffer interface {
	Bounds() image.Rectangle
	NRGBAAt(x, y int) color.NRGBA
	SetNRGBA(x, y int, c color.NRGBA) error
}

// Pixmap represents a rectangular pixel buffer.
// Pixels are stored as non-premultiplied RGBA, 4 bytes per pixel, so a
// transparent pixel keeps its colour. This matters for templates: the
// marker colour is white with zero alpha.
type Pixmap struct {
	width  int
	height int
	data   []uint8
}

// NewPixmap creates a new transparent pixmap with the given dimensions.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// FromImage creates a pixmap holding a copy of img. Pixel (0,0) of the
// pixmap is img.Bounds().Min.
func FromImage(img image.Image) *Pixmap {
	nrgba := imgio.ToNRGBA(img)
	return &Pixmap{
		width:  nrgba.Rect.Dx(),
		height: nrgba.Rect.Dy(),
		data:   nrgba.Pix,
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw pixel data (non-premultiplied RGBA).
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// NRGBAAt returns the colour of a single pixel, or the zero colour outside
// the pixmap.
func (p *Pixmap) NRGBAAt(x, y int) color.NRGBA {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return color.NRGBA{}
	}
	i := (y*p.width + x) * 4
	return color.NRGBA{R: p.data[i+0], G: p.data[i+1], B: p.data[i+2], A: p.data[i+3]}
}

// SetNRGBA sets the colour of a single pixel. Writing outside the pixmap
// returns an *OutOfBoundsError and changes nothing.
func (p *Pixmap) SetNRGBA(x, y int, c color.NRGBA) error {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return &OutOfBoundsError{Rect: image.Rect(x, y, x+1, y+1), Bounds: p.Bounds()}
	}
	i := (y*p.width + x) * 4
	p.data[i+0] = c.R
	p.data[i+1] = c.G
	p.data[i+2] = c.B
	p.data[i+3] = c.A
	return nil
}

// Clone returns a deep copy of the pixmap.
func (p *Pixmap) Clone() *Pixmap {
	data := make([]uint8, len(p.data))
	copy(data, p.data)
	return &Pixmap{width: p.width, height: p.height, data: data}
}

// ToImage converts the pixmap to an image.NRGBA sharing no memory with p.
func (p *Pixmap) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// Save writes the pixmap to path. The format follows the file extension
// (PNG, BMP or TIFF; PNG when there is none).
func (p *Pixmap) Save(path string) error {
	// Encoders only keep the RGB of transparent pixels for *image.NRGBA.
	return imgio.Save(path, p.ToImage())
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	return p.NRGBAAt(x, y)
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}
