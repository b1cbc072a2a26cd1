// SPDX-License-Identifier: EPL-2.0

package audio

// StereoBuffer holds one rendered waveform as two channels of equal length.
// A buffer is owned by a single render-and-encode cycle; encoders only read it.
type StereoBuffer struct {
	Left  []float32
	Right []float32
}

// NewStereoBuffer allocates a zero-filled buffer of frames samples per channel.
func NewStereoBuffer(frames int) StereoBuffer {
	return StereoBuffer{
		Left:  make([]float32, frames),
		Right: make([]float32, frames),
	}
}

// Frames is the number of samples per channel.
func (b StereoBuffer) Frames() int { return len(b.Left) }

// Validate reports ErrChannelMismatch or ErrEmptyBuffer.
func (b StereoBuffer) Validate() error {
	if len(b.Left) != len(b.Right) {
		return ErrChannelMismatch
	}

	if len(b.Left) == 0 {
		return ErrEmptyBuffer
	}

	return nil
}
