package glyph

import (
	"bytes"
	"fmt"

	gotext "github.com/go-text/typesetting/font"
)

// cmapIndex answers "does the font map this rune" from the font's cmap
// table, without building a face.
type cmapIndex struct {
	font *gotext.Font
}

func newCmapIndex(data []byte) (*cmapIndex, error) {
	face, err := gotext.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("glyph: failed to read character map: %w", err)
	}
	return &cmapIndex{font: face.Font}, nil
}

func (c *cmapIndex) has(r rune) bool {
	gid, ok := c.font.NominalGlyph(r)
	return ok && gid != 0
}
