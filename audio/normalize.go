// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"math"

	"github.com/ik5/sfrender/utils"
)

// TargetPeak is the fraction of full scale the loudest sample is scaled to.
const TargetPeak float32 = 0.99

// Peak returns the largest absolute sample value across both channels.
func Peak(b StereoBuffer) float32 {
	var peak float32

	for t := range b.Left {
		if v := utils.Abs32(b.Left[t]); v > peak {
			peak = v
		}

		if v := utils.Abs32(b.Right[t]); v > peak {
			peak = v
		}
	}

	return peak
}

// ScaleFactor returns TargetPeak / Peak(b): the linear gain that brings the
// loudest sample of b to 99% of full scale. A buffer whose peak is zero, or
// so close to zero that the factor overflows float32, has no finite scale
// factor and yields ErrSilentBuffer.
func ScaleFactor(b StereoBuffer) (float32, error) {
	if err := b.Validate(); err != nil {
		return 0, err
	}

	peak := Peak(b)
	if peak == 0 {
		return 0, ErrSilentBuffer
	}

	scale := TargetPeak / peak
	if f := float64(scale); math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, ErrSilentBuffer
	}

	return scale, nil
}

// Gain is ScaleFactor with silence mapped to a zero gain, so an all-zero
// buffer encodes as all-zero samples instead of failing.
func Gain(b StereoBuffer) (gain float32, silent bool, err error) {
	gain, err = ScaleFactor(b)
	if errors.Is(err, ErrSilentBuffer) {
		return 0, true, nil
	}

	return gain, false, err
}
