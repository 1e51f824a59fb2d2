package nwfont

import (
	"errors"
	"fmt"
	"image"
)

// ErrOutOfBounds matches every *OutOfBoundsError.
var ErrOutOfBounds = errors.New("nwfont: write outside the atlas")

// OutOfBoundsError is returned when drawing would write pixels outside the
// atlas image.
type OutOfBoundsError struct {
	// Rect is the area the write needed.
	Rect image.Rectangle

	// Bounds of the atlas.
	Bounds image.Rectangle
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("nwfont: area %v outside atlas %v", e.Rect, e.Bounds)
}

// Is reports whether target is ErrOutOfBounds.
func (e *OutOfBoundsError) Is(target error) bool {
	return target == ErrOutOfBounds
}

// RuneError wraps an error that aborted drawing a character.
type RuneError struct {
	Rune  rune
	Index int
	Err   error
}

func (e *RuneError) Error() string {
	return fmt.Sprintf("nwfont: drawing %q at index %d: %v", e.Rune, e.Index, e.Err)
}

func (e *RuneError) Unwrap() error {
	return e.Err
}
