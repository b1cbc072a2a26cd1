// SPDX-License-Identifier: EPL-2.0

package sampler

import (
	"bytes"
	"errors"
	"io"
	"math"
	"testing"

	"github.com/ik5/sfrender/audio"
	"github.com/ik5/sfrender/internal/audiotest"
	"github.com/ik5/sfrender/synth"
)

type fakeDecoder struct {
	src audio.Source
	err error
}

func (d fakeDecoder) Decode(io.Reader) (audio.Source, error) {
	return d.src, d.err
}

func sine(rate, frames int, freq float64) []float32 {
	out := make([]float32, frames)
	for i := range out {
		out[i] = float32(math.Sin(2 * math.Pi * freq * float64(i) / float64(rate)))
	}
	return out
}

// zeroCrossings counts sign changes from negative to non-negative.
func zeroCrossings(x []float32) int {
	n := 0
	for i := 1; i < len(x); i++ {
		if x[i-1] < 0 && x[i] >= 0 {
			n++
		}
	}
	return n
}

func TestNewInstrument_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		rate int
		data []float32
		root int
		want error
	}{
		{"zero rate", 0, []float32{1}, 60, synth.ErrInvalidSampleRate},
		{"empty", 44100, nil, 60, ErrEmptySample},
		{"root too high", 44100, []float32{1}, 128, ErrInvalidRootNote},
		{"root negative", 44100, []float32{1}, -1, ErrInvalidRootNote},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewInstrument(tt.rate, tt.data, tt.root)
			if !errors.Is(err, tt.want) {
				t.Errorf("NewInstrument() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestInstrument_Ratio(t *testing.T) {
	t.Parallel()

	inst, err := NewInstrument(22050, []float32{1}, 60)
	if err != nil {
		t.Fatalf("NewInstrument() error = %v", err)
	}

	tests := []struct {
		note, outRate int
		want          float64
	}{
		{60, 22050, 1},
		{72, 22050, 2},
		{48, 22050, 0.5},
		{60, 44100, 0.5},
		{67, 22050, math.Exp2(7.0 / 12)},
	}

	for _, tt := range tests {
		if got := inst.Ratio(tt.note, tt.outRate); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("Ratio(%d, %d) = %v, want %v", tt.note, tt.outRate, got, tt.want)
		}
	}
}

func TestRenderer_PitchFollowsNote(t *testing.T) {
	t.Parallel()

	const rate = 8000
	inst, err := NewInstrument(rate, sine(rate, rate, 100), DefaultRootNote)
	if err != nil {
		t.Fatalf("NewInstrument() error = %v", err)
	}

	render := func(note int) []float32 {
		left, _, err := synth.RenderNote(inst, rate, 0, note, 127, rate/4)
		if err != nil {
			t.Fatalf("RenderNote(%d) error = %v", note, err)
		}
		return left
	}

	root := zeroCrossings(render(60))
	octave := zeroCrossings(render(72))

	// 100 Hz for a quarter second is 25 cycles; an octave up is 50
	if root < 24 || root > 26 {
		t.Errorf("root note crossings = %d, want ≈25", root)
	}

	if octave < 48 || octave > 51 {
		t.Errorf("octave crossings = %d, want ≈50", octave)
	}
}

func TestRenderer_VelocityAndChannels(t *testing.T) {
	t.Parallel()

	inst, _ := NewInstrument(1000, []float32{0.8, 0.8, 0.8, 0.8, 0.8, 0.8}, 60)
	r, err := inst.NewRenderer(1000)
	if err != nil {
		t.Fatalf("NewRenderer() error = %v", err)
	}

	r.NoteOn(3, 60, 127)
	left, right := make([]float32, 3), make([]float32, 3)
	if err := r.Render(left, right); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	for i := range left {
		if math.Abs(float64(left[i]-0.8)) > 1e-6 {
			t.Errorf("left[%d] = %v, want 0.8", i, left[i])
		}
		if left[i] != right[i] {
			t.Errorf("frame %d: left %v != right %v", i, left[i], right[i])
		}
	}

	half, _ := inst.NewRenderer(1000)
	half.NoteOn(0, 60, 64)
	left2, right2 := make([]float32, 3), make([]float32, 3)
	_ = half.Render(left2, right2)

	if want := float32(0.8 * 64.0 / 127); math.Abs(float64(left2[0]-want)) > 1e-6 {
		t.Errorf("velocity 64 sample = %v, want %v", left2[0], want)
	}
}

func TestRenderer_SilenceAfterSample(t *testing.T) {
	t.Parallel()

	inst, _ := NewInstrument(1000, []float32{0.5, 0.5, 0.5, 0.5}, 60)
	r, _ := inst.NewRenderer(1000)
	r.NoteOn(0, 60, 127)

	left, right := make([]float32, 100), make([]float32, 100)
	for i := range left {
		left[i], right[i] = 9, 9 // garbage that must be overwritten
	}

	if err := r.Render(left, right); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	for i := 10; i < 100; i++ {
		if left[i] != 0 || right[i] != 0 {
			t.Fatalf("frame %d = (%v, %v), want silence", i, left[i], right[i])
		}
	}
}

func TestRenderer_NoNoteIsSilent(t *testing.T) {
	t.Parallel()

	inst, _ := NewInstrument(1000, []float32{1, 1, 1, 1}, 60)

	for _, velocity := range []int{-1, 0} {
		r, _ := inst.NewRenderer(1000)
		if velocity >= 0 {
			r.NoteOn(0, 60, velocity)
		}

		left, right := make([]float32, 8), make([]float32, 8)
		if err := r.Render(left, right); err != nil {
			t.Fatalf("Render() error = %v", err)
		}

		for i := range left {
			if left[i] != 0 || right[i] != 0 {
				t.Errorf("velocity %d: frame %d not silent", velocity, i)
			}
		}
	}
}

func TestRenderer_BufferMismatch(t *testing.T) {
	t.Parallel()

	inst, _ := NewInstrument(1000, []float32{1}, 60)
	r, _ := inst.NewRenderer(1000)

	if err := r.Render(make([]float32, 2), make([]float32, 3)); !errors.Is(err, synth.ErrBufferMismatch) {
		t.Errorf("Render() error = %v, want ErrBufferMismatch", err)
	}
}

func TestLoader_Load(t *testing.T) {
	t.Parallel()

	registry := audio.NewRegistry()
	registry.Register("fake", fakeDecoder{src: audiotest.NewConstantSource(16000, 2, 500, 0.4)})

	got, err := NewLoader(registry, "fake").Load(bytes.NewReader(nil))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	inst := got.(*Instrument)
	if inst.SampleRate() != 16000 {
		t.Errorf("SampleRate() = %d, want 16000", inst.SampleRate())
	}

	if inst.Frames() != 500 {
		t.Errorf("Frames() = %d, want 500 (stereo mixed to mono)", inst.Frames())
	}

	if inst.RootNote() != DefaultRootNote {
		t.Errorf("RootNote() = %d, want %d", inst.RootNote(), DefaultRootNote)
	}
}

func TestLoader_RootNote(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		root    int
		wantErr error
	}{
		{"lowest note", 0, nil},
		{"middle C", 60, nil},
		{"highest note", 127, nil},
		{"out of range", 128, ErrInvalidRootNote},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			registry := audio.NewRegistry()
			registry.Register("fake", fakeDecoder{src: audiotest.NewConstantSource(8000, 1, 100, 0.5)})

			l := &Loader{Registry: registry, Format: "fake", RootNote: tt.root}
			got, err := l.Load(bytes.NewReader(nil))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Load() error = %v, want %v", err, tt.wantErr)
				}
				return
			}

			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}

			if root := got.(*Instrument).RootNote(); root != tt.root {
				t.Errorf("RootNote() = %d, want %d", root, tt.root)
			}
		})
	}
}

func TestLoader_Errors(t *testing.T) {
	t.Parallel()

	decodeErr := errors.New("bad header")
	registry := audio.NewRegistry()
	registry.Register("broken", fakeDecoder{err: decodeErr})
	registry.Register("empty", fakeDecoder{src: audiotest.NewSilentSource(8000, 1, 0)})

	tests := []struct {
		format string
		want   error
	}{
		{"flac", ErrUnsupportedSample},
		{"broken", decodeErr},
		{"empty", ErrEmptySample},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			t.Parallel()

			l := &Loader{Registry: registry, Format: tt.format}
			if _, err := l.Load(bytes.NewReader(nil)); !errors.Is(err, tt.want) {
				t.Errorf("Load() error = %v, want %v", err, tt.want)
			}
		})
	}
}
