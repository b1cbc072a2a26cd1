// SPDX-License-Identifier: EPL-2.0

package utils

// FullScale is the magnitude of the most negative signed 16-bit sample.
const FullScale float32 = 32768

// ScaleToInt16 multiplies x by gain and maps the result onto signed 16-bit
// full scale. The value is truncated toward zero, never rounded, and is not
// clamped: callers keep gain*x within [-1, 1).
func ScaleToInt16(gain, x float32) int16 {
	return int16(gain * x * FullScale)
}

// Abs32 returns |x| without the float64 round trip of math.Abs.
func Abs32(x float32) float32 {
	if x < 0 {
		return -x
	}

	return x
}
