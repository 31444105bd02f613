// SPDX-License-Identifier: EPL-2.0

package utils

func Float32ToInt16(x float32) int16 {
	// Clamp and scale
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	// Use 32767 for positive max to avoid overflow
	return int16(x * 32767.0)
}

// FullScale returns the magnitude of the most negative value of a signed
// PCM sample of bitDepth bits (128 for 8-bit, 32768 for 16-bit, ...).
// Depths outside 1..32 are treated as 16-bit.
func FullScale(bitDepth int) float64 {
	if bitDepth < 1 || bitDepth > 32 {
		bitDepth = 16
	}

	return float64(int64(1) << (bitDepth - 1))
}

// IntToFloat32 normalizes a signed PCM sample of bitDepth bits to [-1, 1).
func IntToFloat32(v int, bitDepth int) float32 {
	return float32(float64(v) / FullScale(bitDepth))
}

// Float32ToInt converts a sample in [-1, 1] to signed PCM of bitDepth bits.
// Values outside the range are clamped.
func Float32ToInt(x float32, bitDepth int) int {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	scale := FullScale(bitDepth)

	return int(float64(x) * (scale - 1))
}
