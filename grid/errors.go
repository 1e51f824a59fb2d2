package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for the grid package.
var (
	// ErrFormat matches every *FormatError.
	ErrFormat = errors.New("grid: malformed template")

	// ErrRange matches every *RangeError.
	ErrRange = errors.New("grid: cursor out of range")
)

// FormatError is returned when a template image does not carry the
// sentinel markers that encode the grid geometry.
type FormatError struct {
	// Field names the metric being inferred, e.g. "Left" or "Descender".
	Field string

	// Reason is a human readable description of the failure.
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("grid: bad template %s: %s", e.Field, e.Reason)
}

// Is reports whether target is ErrFormat.
func (e *FormatError) Is(target error) bool {
	return target == ErrFormat
}

// RangeError is returned when a cursor coordinate lies outside the grid.
type RangeError struct {
	Axis  string
	Value int
	Limit int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("grid: %s value %d exceeds %d", e.Axis, e.Value, e.Limit)
}

// Is reports whether target is ErrRange.
func (e *RangeError) Is(target error) bool {
	return target == ErrRange
}
