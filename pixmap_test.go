package nwfont

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/nwfont/grid"
)

// TestSetNRGBA_KeepsTransparentColour checks that a zero alpha pixel keeps
// its RGB channels, which template markers rely on.
func TestSetNRGBA_KeepsTransparentColour(t *testing.T) {
	pm := NewPixmap(4, 4)
	if err := pm.SetNRGBA(1, 2, grid.MarkerColor); err != nil {
		t.Fatalf("SetNRGBA() error = %v", err)
	}

	i := (2*4 + 1) * 4
	data := pm.Data()
	if data[i+0] != 255 || data[i+1] != 255 || data[i+2] != 255 || data[i+3] != 0 {
		t.Errorf("raw data = %v, want [255 255 255 0]", data[i:i+4])
	}
	if got := pm.NRGBAAt(1, 2); got != grid.MarkerColor {
		t.Errorf("NRGBAAt() = %v, want %v", got, grid.MarkerColor)
	}
	if got := pm.At(1, 2); got != color.Color(grid.MarkerColor) {
		t.Errorf("At() = %v, want %v", got, grid.MarkerColor)
	}
}

func TestSetNRGBA_OutOfBounds(t *testing.T) {
	pm := NewPixmap(10, 10)
	original := append([]uint8(nil), pm.Data()...)

	for _, c := range []struct{ x, y int }{
		{-1, 5}, {10, 5}, {5, -1}, {5, 10}, {-100, -100}, {100, 100},
	} {
		err := pm.SetNRGBA(c.x, c.y, color.NRGBA{R: 255, A: 255})
		if !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("SetNRGBA(%d, %d) error = %v, want ErrOutOfBounds", c.x, c.y, err)
		}
		if got := pm.NRGBAAt(c.x, c.y); got != (color.NRGBA{}) {
			t.Errorf("NRGBAAt(%d, %d) = %v, want zero colour", c.x, c.y, got)
		}
	}
	for i, v := range pm.Data() {
		if v != original[i] {
			t.Fatalf("data[%d] changed to %d", i, v)
		}
	}
}

func TestFromImage(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	src.SetNRGBA(3, 4, color.NRGBA{R: 10, G: 20, B: 30, A: 0})
	src.SetNRGBA(5, 6, color.NRGBA{R: 1, G: 2, B: 3, A: 4})

	t.Run("copies pixels", func(t *testing.T) {
		pm := FromImage(src)
		if pm.Width() != 8 || pm.Height() != 8 {
			t.Fatalf("size = %dx%d, want 8x8", pm.Width(), pm.Height())
		}
		if got := pm.NRGBAAt(3, 4); got != (color.NRGBA{R: 10, G: 20, B: 30}) {
			t.Errorf("NRGBAAt(3,4) = %v", got)
		}
		_ = pm.SetNRGBA(0, 0, color.NRGBA{A: 255})
		if src.NRGBAAt(0, 0).A != 0 {
			t.Error("FromImage() shares memory with its source")
		}
	})

	t.Run("rebases sub-image", func(t *testing.T) {
		pm := FromImage(src.SubImage(image.Rect(3, 4, 8, 8)))
		if pm.Bounds() != image.Rect(0, 0, 5, 4) {
			t.Fatalf("Bounds() = %v", pm.Bounds())
		}
		if got := pm.NRGBAAt(0, 0); got != (color.NRGBA{R: 10, G: 20, B: 30}) {
			t.Errorf("NRGBAAt(0,0) = %v", got)
		}
		if got := pm.NRGBAAt(2, 2); got != (color.NRGBA{R: 1, G: 2, B: 3, A: 4}) {
			t.Errorf("NRGBAAt(2,2) = %v", got)
		}
	})
}

func TestPixmapClone(t *testing.T) {
	pm := NewPixmap(3, 3)
	_ = pm.SetNRGBA(1, 1, color.NRGBA{G: 200, A: 255})

	c := pm.Clone()
	_ = c.SetNRGBA(1, 1, color.NRGBA{B: 200, A: 255})

	if got := pm.NRGBAAt(1, 1); got != (color.NRGBA{G: 200, A: 255}) {
		t.Errorf("original changed after clone write: %v", got)
	}
	if got := c.NRGBAAt(1, 1); got != (color.NRGBA{B: 200, A: 255}) {
		t.Errorf("clone pixel = %v", got)
	}
}

func TestPixmapToImage(t *testing.T) {
	pm := NewPixmap(2, 2)
	_ = pm.SetNRGBA(1, 0, grid.MarkerColor)

	img := pm.ToImage()
	if img.Bounds() != pm.Bounds() {
		t.Fatalf("Bounds() = %v, want %v", img.Bounds(), pm.Bounds())
	}
	if got := img.NRGBAAt(1, 0); got != grid.MarkerColor {
		t.Errorf("NRGBAAt(1,0) = %v, want marker", got)
	}
	img.SetNRGBA(0, 0, color.NRGBA{A: 255})
	if pm.NRGBAAt(0, 0).A != 0 {
		t.Error("ToImage() shares memory with the pixmap")
	}
}

func TestPixmapSavePNG(t *testing.T) {
	pm := NewPixmap(3, 2)
	_ = pm.SetNRGBA(0, 0, grid.MarkerColor)
	_ = pm.SetNRGBA(2, 1, color.NRGBA{R: 200, G: 100, B: 50, A: 128})

	path := filepath.Join(t.TempDir(), "atlas.png")
	if err := pm.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}

	got := FromImage(img)
	if c := got.NRGBAAt(0, 0); c != grid.MarkerColor {
		t.Errorf("marker after round trip = %v, want %v", c, grid.MarkerColor)
	}
	if c := got.NRGBAAt(2, 1); c != (color.NRGBA{R: 200, G: 100, B: 50, A: 128}) {
		t.Errorf("pixel after round trip = %v", c)
	}
}
