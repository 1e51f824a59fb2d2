// Package fixedpoint converts rasterizer fixed-point metrics to whole pixels.
//
// Both conversions truncate toward zero and mask the magnitude before
// shifting, so bits above the magnitude field never leak into the result
// and large values cannot flip the sign.
package fixedpoint

import "golang.org/x/image/math/fixed"

const (
	// mask26Dot6 keeps the 31-bit magnitude of a 26.6 value minus its fraction.
	mask26Dot6 = 0x7FFFFFC0

	// mask16Dot16 is the magnitude mask applied to 16.16 values.
	mask16Dot16 = 0x3FFFC0
)

// F26Dot6ToInt converts a 26.6 fixed-point value to an integer pixel count.
//
//	F26Dot6ToInt(64)  == 1
//	F26Dot6ToInt(-64) == -1
//	F26Dot6ToInt(127) == 1
func F26Dot6ToInt(v fixed.Int26_6) int {
	return convert(int64(v), mask26Dot6, 6)
}

// F16Dot16ToInt converts a 16.16 fixed-point value to an integer.
//
// The mask only keeps bits 6..21, so results are limited to the range
// [-63, 63]. Nothing in the placement path uses 16.16 values; the helper
// exists for callers working with scale factors reported in that format.
func F16Dot16ToInt(v int32) int {
	return convert(int64(v), mask16Dot16, 16)
}

func convert(v, mask int64, shift uint) int {
	mag := v
	if mag < 0 {
		mag = -mag
	}
	ret := int((mag & mask) >> shift)
	if v < 0 {
		return -ret
	}
	return ret
}
