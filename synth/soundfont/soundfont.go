// SPDX-License-Identifier: EPL-2.0

// Package soundfont renders notes from SF2 banks with go-meltysynth.
package soundfont

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/sfrender/synth"
	"github.com/sinshu/go-meltysynth/meltysynth"
)

var ErrInvalidSoundFont = errors.New("invalid SoundFont")

// Loader reads SF2 banks.
type Loader struct{}

// Load parses a whole SF2 file from r.
func (Loader) Load(r io.Reader) (synth.Instrument, error) {
	sf, err := meltysynth.NewSoundFont(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSoundFont, err)
	}

	return &Instrument{sf: sf}, nil
}

// Instrument is a parsed SoundFont shared read-only by its renderers.
type Instrument struct {
	sf *meltysynth.SoundFont
}

func (i *Instrument) NewRenderer(sampleRate int) (synth.Renderer, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w: %d", synth.ErrInvalidSampleRate, sampleRate)
	}

	settings := meltysynth.NewSynthesizerSettings(int32(sampleRate))
	s, err := meltysynth.NewSynthesizer(i.sf, settings)
	if err != nil {
		return nil, fmt.Errorf("new synthesizer: %w", err)
	}

	return &renderer{synth: s}, nil
}

type renderer struct {
	synth *meltysynth.Synthesizer
}

func (r *renderer) NoteOn(channel, note, velocity int) {
	r.synth.NoteOn(int32(channel), int32(note), int32(velocity))
}

func (r *renderer) Render(left, right []float32) error {
	if len(left) != len(right) {
		return synth.ErrBufferMismatch
	}

	r.synth.Render(left, right)

	return nil
}
