// SPDX-License-Identifier: EPL-2.0

package audio

import "github.com/ik5/sfrender/utils"

// Interleave16 scales every sample of b by gain, truncates it to int16 and
// interleaves the channels as L, R, L, R, ...
func Interleave16(b StereoBuffer, gain float32) []int16 {
	out := make([]int16, 2*len(b.Left))

	for t := range b.Left {
		out[2*t] = utils.ScaleToInt16(gain, b.Left[t])
		out[2*t+1] = utils.ScaleToInt16(gain, b.Right[t])
	}

	return out
}
