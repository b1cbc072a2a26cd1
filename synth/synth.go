// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"fmt"
	"io"
)

// MIDI limits for note-on events.
const (
	MaxChannel  = 15
	MaxNote     = 127
	MaxVelocity = 127
)

// Loader parses an instrument bank.
type Loader interface {
	Load(r io.Reader) (Instrument, error)
}

// Instrument is a loaded instrument bank. It is never mutated after Load,
// so one Instrument may hand out renderers to any number of goroutines.
type Instrument interface {
	NewRenderer(sampleRate int) (Renderer, error)
}

// Renderer is one synthesizer instance. It is not safe for concurrent use.
type Renderer interface {
	NoteOn(channel, note, velocity int)
	// Render writes len(left) frames into left and right, which must have
	// equal length.
	Render(left, right []float32) error
}

// RenderNote runs a fresh renderer for a single note-on event and returns
// frames samples per channel.
func RenderNote(inst Instrument, sampleRate, channel, note, velocity, frames int) (left, right []float32, err error) {
	switch {
	case inst == nil:
		return nil, nil, ErrNoInstrument
	case sampleRate <= 0:
		return nil, nil, fmt.Errorf("%w: %d", ErrInvalidSampleRate, sampleRate)
	case channel < 0 || channel > MaxChannel:
		return nil, nil, fmt.Errorf("%w: channel %d", ErrOutOfRange, channel)
	case note < 0 || note > MaxNote:
		return nil, nil, fmt.Errorf("%w: note %d", ErrOutOfRange, note)
	case velocity < 0 || velocity > MaxVelocity:
		return nil, nil, fmt.Errorf("%w: velocity %d", ErrOutOfRange, velocity)
	case frames < 0:
		return nil, nil, fmt.Errorf("%w: %d frames", ErrOutOfRange, frames)
	}

	r, err := inst.NewRenderer(sampleRate)
	if err != nil {
		return nil, nil, fmt.Errorf("new renderer: %w", err)
	}

	r.NoteOn(channel, note, velocity)

	left = make([]float32, frames)
	right = make([]float32, frames)
	if err := r.Render(left, right); err != nil {
		return nil, nil, fmt.Errorf("render: %w", err)
	}

	return left, right, nil
}
