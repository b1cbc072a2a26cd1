// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidDstSize = errors.New("dst size must be multiple of channels")

	// ErrSilentBuffer is returned when a buffer has no non-zero sample and
	// therefore no peak to normalize against.
	ErrSilentBuffer = errors.New("silent buffer: peak is zero")

	// ErrEmptyBuffer is returned for a buffer with no frames.
	ErrEmptyBuffer = errors.New("empty buffer")

	// ErrChannelMismatch is returned when left and right differ in length.
	ErrChannelMismatch = errors.New("left and right channel lengths differ")

	// ErrInvalidRatio is returned for a non-positive resampling ratio.
	ErrInvalidRatio = errors.New("resampling ratio must be positive")
)
