// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"errors"
	"math"
	"slices"
	"sync"

	"github.com/ik5/sfrender/synth"
)

// ErrRenderFailed is what a FakeInstrument returns for FailNote.
var ErrRenderFailed = errors.New("fake render failed")

// FakeInstrument is a deterministic synth.Instrument. Each note renders a
// stereo sine at the note's equal-tempered pitch, with the right channel at
// half the amplitude of the left, scaled by velocity.
type FakeInstrument struct {
	// Amplitude of the left channel at velocity 127.
	Amplitude float32
	// Silent notes render all zeros.
	Silent map[int]bool
	// FailNote makes Render return ErrRenderFailed for that note; -1 disables.
	FailNote int

	mu        sync.Mutex
	renderers int
	notes     []int
}

func NewFakeInstrument() *FakeInstrument {
	return &FakeInstrument{
		Amplitude: 0.25,
		Silent:    map[int]bool{},
		FailNote:  -1,
	}
}

func (i *FakeInstrument) NewRenderer(sampleRate int) (synth.Renderer, error) {
	if sampleRate <= 0 {
		return nil, synth.ErrInvalidSampleRate
	}

	i.mu.Lock()
	i.renderers++
	i.mu.Unlock()

	return &fakeRenderer{inst: i, sampleRate: sampleRate, note: -1}, nil
}

// Renderers is the number of renderers created so far.
func (i *FakeInstrument) Renderers() int {
	i.mu.Lock()
	defer i.mu.Unlock()

	return i.renderers
}

// Notes returns every note-on seen, sorted.
func (i *FakeInstrument) Notes() []int {
	i.mu.Lock()
	defer i.mu.Unlock()

	out := slices.Clone(i.notes)
	slices.Sort(out)

	return out
}

// Frequency is the equal-tempered pitch of a MIDI note, A4 = 440 Hz.
func Frequency(note int) float64 {
	return 440 * math.Exp2(float64(note-69)/12)
}

type fakeRenderer struct {
	inst       *FakeInstrument
	sampleRate int
	note       int
	velocity   int
	frame      int
}

func (r *fakeRenderer) NoteOn(_, note, velocity int) {
	r.note = note
	r.velocity = velocity

	r.inst.mu.Lock()
	r.inst.notes = append(r.inst.notes, note)
	r.inst.mu.Unlock()
}

func (r *fakeRenderer) Render(left, right []float32) error {
	if len(left) != len(right) {
		return synth.ErrBufferMismatch
	}

	if r.note >= 0 && r.note == r.inst.FailNote {
		return ErrRenderFailed
	}

	if r.note < 0 || r.velocity == 0 || r.inst.Silent[r.note] {
		clear(left)
		clear(right)
		return nil
	}

	amp := r.inst.Amplitude * float32(r.velocity) / synth.MaxVelocity
	step := 2 * math.Pi * Frequency(r.note) / float64(r.sampleRate)
	for t := range left {
		v := amp * float32(math.Sin(step*float64(r.frame+t)))
		left[t] = v
		right[t] = v / 2
	}
	r.frame += len(left)

	return nil
}
