// Package nwfont builds fixed-grid bitmap font atlases.
//
// # Overview
//
// A template image describes the grid with marker pixels of the colour
// white with zero alpha. Pixel (0,0) is reserved. Two markers on row 0
// give the Left and Right edges of the glyph box, three markers on
// column 0 give the Ascender, BaseLine and Descender rows. The solid
// rectangle starting at (1,1) is the margin area of the first block and
// fixes the size of every block of the grid.
//
// nwfont infers the grid from those markers, rasterizes each character of
// a charset with a TrueType or OpenType font at the grid's pixel size, and
// draws the glyphs into consecutive cells. Below each cell a line in the
// marker colour records the glyph's advance width.
//
// # Quick Start
//
//	import "github.com/gogpu/nwfont"
//
//	src, err := glyph.NewSourceFromFile("font.ttf")
//	...
//	atlas, err := nwfont.Build(template, src, []rune("ABC"), 0)
//	...
//	err = atlas.Save("atlas.png")
//
// # Architecture
//
// The library is organized into:
//   - Public API: Builder, Placer, Pixmap
//   - grid: marker scanning, metrics, cell addressing
//   - glyph: font backends and rasterization
//   - charset: character file decoding
//
// # Coordinate System
//
// Uses image coordinates:
//   - Origin (0,0) at top-left of the template
//   - X increases right
//   - Y increases down
//
// Pixels are stored non-premultiplied so transparent marker pixels keep
// their colour through loading, drawing and saving.
package nwfont

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
