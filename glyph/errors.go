package glyph

import (
	"errors"
	"fmt"
)

// Sentinel errors for the glyph package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("glyph: empty font data")

	// ErrInvalidPixelSize is returned for a non-positive pixel size.
	ErrInvalidPixelSize = errors.New("glyph: pixel size must be positive")

	// ErrUnknownBackend is returned by NewSource for an unregistered backend.
	ErrUnknownBackend = errors.New("glyph: unknown backend")

	// ErrUnsupportedRune matches every *UnsupportedRuneError.
	ErrUnsupportedRune = errors.New("glyph: unsupported rune")
)

// UnsupportedRuneError is returned when a font has no glyph for a rune.
type UnsupportedRuneError struct {
	Runes []rune
}

func (e *UnsupportedRuneError) Error() string {
	if len(e.Runes) == 1 {
		return fmt.Sprintf("glyph: font has no glyph for %q (U+%04X)", e.Runes[0], e.Runes[0])
	}
	return fmt.Sprintf("glyph: font has no glyph for %d runes, first %q (U+%04X)", len(e.Runes), e.Runes[0], e.Runes[0])
}

// Is reports whether target is ErrUnsupportedRune.
func (e *UnsupportedRuneError) Is(target error) bool {
	return target == ErrUnsupportedRune
}
