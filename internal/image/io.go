// Package image decodes atlas templates and encodes finished atlases.
//
// Only lossless formats are supported: PNG, BMP, TIFF and GIF can be read,
// PNG, BMP and TIFF can be written. Pixels are always handed out as
// non-premultiplied *image.NRGBA so that fully transparent colours keep
// their RGB components.
package image

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif" // register GIF decoder
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// I/O errors.
var (
	// ErrUnsupportedFormat is returned when the image format is not supported.
	ErrUnsupportedFormat = errors.New("image: unsupported format")

	// ErrEmptyData is returned when image data is empty.
	ErrEmptyData = errors.New("image: empty data")
)

// Load loads an image from the given file path, auto-detecting the format.
func Load(path string) (*image.NRGBA, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("image: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f)
}

// LoadFromBytes decodes an image from a byte slice, auto-detecting the format.
func LoadFromBytes(data []byte) (*image.NRGBA, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}
	return Decode(bytes.NewReader(data))
}

// Decode decodes an image from the given reader, auto-detecting the format.
func Decode(r io.Reader) (*image.NRGBA, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return nil, fmt.Errorf("%w: %w", ErrUnsupportedFormat, err)
		}
		return nil, fmt.Errorf("image: decode: %w", err)
	}
	return ToNRGBA(img), nil
}

// ToNRGBA returns a copy of img as a non-premultiplied NRGBA image whose
// bounds start at (0,0).
func ToNRGBA(img image.Image) *image.NRGBA {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))

	// Fast path for NRGBA images
	if src, ok := img.(*image.NRGBA); ok {
		for y := range height {
			off := src.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			copy(dst.Pix[y*dst.Stride:], src.Pix[off:off+width*4])
		}
		return dst
	}

	// 16-bit PNGs with alpha decode to NRGBA64.
	if src, ok := img.(*image.NRGBA64); ok {
		for y := range height {
			for x := range width {
				dst.SetNRGBA(x, y, nrgba64To8(src.NRGBA64At(bounds.Min.X+x, bounds.Min.Y+y)))
			}
		}
		return dst
	}

	// Generic slow path.
	for y := range height {
		for x := range width {
			dst.SetNRGBA(x, y, toNRGBAColor(img.At(bounds.Min.X+x, bounds.Min.Y+y)))
		}
	}
	return dst
}

// toNRGBAColor converts c without going through premultiplied RGBA when c
// is already non-premultiplied, so zero alpha pixels keep their colour.
func toNRGBAColor(c color.Color) color.NRGBA {
	switch c := c.(type) {
	case color.NRGBA:
		return c
	case color.NRGBA64:
		return nrgba64To8(c)
	}
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}

func nrgba64To8(c color.NRGBA64) color.NRGBA {
	return color.NRGBA{R: uint8(c.R >> 8), G: uint8(c.G >> 8), B: uint8(c.B >> 8), A: uint8(c.A >> 8)}
}

// EncodePNG encodes img as PNG to w.
func EncodePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("image: encode PNG: %w", err)
	}
	return nil
}

// Encode encodes img to w in the format named by ext (".png", ".bmp",
// ".tif" or ".tiff").
func Encode(w io.Writer, img image.Image, ext string) error {
	switch strings.ToLower(ext) {
	case ".png":
		return EncodePNG(w, img)
	case ".bmp":
		if err := bmp.Encode(w, img); err != nil {
			return fmt.Errorf("image: encode BMP: %w", err)
		}
		return nil
	case ".tif", ".tiff":
		if err := tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate}); err != nil {
			return fmt.Errorf("image: encode TIFF: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// Save writes img to path in the format given by the file extension.
//
// The image is encoded into a temporary file next to path which is renamed
// over path only after encoding succeeded, so a failed save never leaves a
// truncated file behind.
func Save(path string, img image.Image) error {
	path = filepath.Clean(path)
	ext := filepath.Ext(path)
	if ext == "" {
		ext = ".png"
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("image: create file: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if err := Encode(tmp, img, ext); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("image: close file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("image: rename file: %w", err)
	}
	return nil
}
