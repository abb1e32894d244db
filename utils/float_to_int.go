// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// Clamp limits x to the closed range [lo, hi]. NaN is returned unchanged.
func Clamp(x, lo, hi float64) float64 {
	if x > hi {
		return hi
	} else if x < lo {
		return lo
	}

	return x
}

// Float64ToInt8 scales a value in [-1, 1] to [-127, 127], truncating toward zero.
func Float64ToInt8(x float64) int8 {
	x = Clamp(x, -1, 1)

	// 127 keeps the range symmetric, -128 is never produced
	return int8(x * math.MaxInt8)
}

// Float64ToInt8Round is Float64ToInt8 with round-half-away-from-zero instead
// of truncation.
func Float64ToInt8Round(x float64) int8 {
	x = Clamp(x, -1, 1)

	return int8(math.Round(x * math.MaxInt8))
}

// IntToFloat64 converts a signed PCM integer of the given bit depth into
// [-1, 1). Unknown depths are treated as 16-bit.
func IntToFloat64(v int, bitDepth int) float64 {
	var fullScale float64
	switch bitDepth {
	case 8:
		fullScale = 1 << 7
	case 24:
		fullScale = 1 << 23
	case 32:
		fullScale = 1 << 31
	default:
		fullScale = 1 << 15
	}

	return float64(v) / fullScale
}

// Int16LEToFloat64 decodes one little-endian signed 16-bit sample.
func Int16LEToFloat64(low, high byte) float64 {
	v := int16(uint16(low) | uint16(high)<<8)

	return float64(v) / (1 << 15)
}
