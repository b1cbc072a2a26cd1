// SPDX-License-Identifier: EPL-2.0

package synth

import "errors"

var (
	ErrNoInstrument      = errors.New("no instrument loaded")
	ErrInvalidSampleRate = errors.New("sample rate must be positive")
	ErrOutOfRange        = errors.New("value out of MIDI range")
	ErrBufferMismatch    = errors.New("left and right buffers differ in length")
)
