// SPDX-License-Identifier: EPL-2.0

package sampler

import "errors"

var (
	// ErrUnsupportedSample is returned when no decoder handles the sample format.
	ErrUnsupportedSample = errors.New("unsupported sample format")

	// ErrEmptySample is returned when the decoded sample holds no frames.
	ErrEmptySample = errors.New("sample has no audio frames")

	// ErrInvalidRootNote is returned for a root note outside 0-127.
	ErrInvalidRootNote = errors.New("root note out of MIDI range")
)
