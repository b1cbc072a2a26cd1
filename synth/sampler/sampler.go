// SPDX-License-Identifier: EPL-2.0

// Package sampler builds an instrument from one recorded sample, re-pitched
// per MIDI note relative to its root note.
package sampler

import (
	"fmt"
	"io"
	"math"

	"github.com/ik5/sfrender/audio"
	"github.com/ik5/sfrender/synth"
)

// DefaultRootNote is the MIDI note a sample is assumed to be recorded at.
const DefaultRootNote = 60

const readChunk = 4096

// Loader decodes a recorded sample through the decoder registered for
// Format and turns it into an Instrument.
type Loader struct {
	Registry *audio.Registry
	Format   string
	// RootNote is the note the sample was recorded at; 0 is a valid note.
	RootNote int
}

// NewLoader returns a Loader for format with RootNote set to DefaultRootNote.
func NewLoader(registry *audio.Registry, format string) *Loader {
	return &Loader{Registry: registry, Format: format, RootNote: DefaultRootNote}
}

// Load decodes the whole sample from r and mixes it down to mono.
func (l *Loader) Load(r io.Reader) (synth.Instrument, error) {
	dec, ok := l.Registry.Get(l.Format)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedSample, l.Format)
	}

	src, err := dec.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode %s sample: %w", l.Format, err)
	}
	defer src.Close()

	mono, err := readAll(audio.NewMonoMixer(src))
	if err != nil {
		return nil, fmt.Errorf("read %s sample: %w", l.Format, err)
	}

	return NewInstrument(src.SampleRate(), mono, l.RootNote)
}

func readAll(src audio.Source) ([]float32, error) {
	var out []float32
	buf := make([]float32, readChunk)

	for {
		n, err := src.ReadSamples(buf)
		out = append(out, buf[:n]...)

		if err == io.EOF {
			return out, nil
		}

		if err != nil {
			return nil, err
		}

		if n == 0 {
			return out, nil
		}
	}
}

// Instrument is a mono sample recorded at RootNote. It plays every other
// note by reading the sample faster or slower.
type Instrument struct {
	sampleRate int
	rootNote   int
	data       []float32
}

// NewInstrument wraps mono, a sample at sampleRate recorded at rootNote. The
// slice is shared by every renderer and must not be modified afterwards.
func NewInstrument(sampleRate int, mono []float32, rootNote int) (*Instrument, error) {
	switch {
	case sampleRate <= 0:
		return nil, fmt.Errorf("%w: %d", synth.ErrInvalidSampleRate, sampleRate)
	case len(mono) == 0:
		return nil, ErrEmptySample
	case rootNote < 0 || rootNote > synth.MaxNote:
		return nil, fmt.Errorf("%w: %d", ErrInvalidRootNote, rootNote)
	}

	return &Instrument{
		sampleRate: sampleRate,
		rootNote:   rootNote,
		data:       mono,
	}, nil
}

func (i *Instrument) SampleRate() int { return i.sampleRate }
func (i *Instrument) RootNote() int   { return i.rootNote }
func (i *Instrument) Frames() int     { return len(i.data) }

// Ratio is how many sample frames are consumed per output frame when
// playing note at outRate.
func (i *Instrument) Ratio(note, outRate int) float64 {
	transpose := math.Exp2(float64(note-i.rootNote) / 12)
	return transpose * float64(i.sampleRate) / float64(outRate)
}

func (i *Instrument) NewRenderer(sampleRate int) (synth.Renderer, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w: %d", synth.ErrInvalidSampleRate, sampleRate)
	}

	return &renderer{
		inst:    i,
		outRate: sampleRate,
		buf:     make([]float32, readChunk),
	}, nil
}

type renderer struct {
	inst    *Instrument
	outRate int

	voice *audio.Resampler
	gain  float32
	buf   []float32
}

// NoteOn starts the sample at the pitch of note. The sample has a single
// timbre, so channel is ignored; velocity 0 is a note-off.
func (r *renderer) NoteOn(_, note, velocity int) {
	if velocity == 0 {
		r.voice = nil
		return
	}

	src := audio.NewSliceSource(r.inst.sampleRate, 1, r.inst.data)
	voice, err := audio.NewRatioResampler(src, r.inst.Ratio(note, r.outRate))
	if err != nil {
		// Ratio is always positive for a valid instrument.
		r.voice = nil
		return
	}

	r.voice = voice
	r.gain = float32(velocity) / synth.MaxVelocity
}

func (r *renderer) Render(left, right []float32) error {
	if len(left) != len(right) {
		return synth.ErrBufferMismatch
	}

	done := 0
	for r.voice != nil && done < len(left) {
		want := min(len(r.buf), len(left)-done)
		n, err := r.voice.ReadSamples(r.buf[:want])

		for k := range n {
			v := r.buf[k] * r.gain
			left[done+k] = v
			right[done+k] = v
		}
		done += n

		if err == io.EOF || (n == 0 && err == nil) {
			r.voice = nil
			break
		}

		if err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	clear(left[done:])
	clear(right[done:])

	return nil
}
