// SPDX-License-Identifier: EPL-2.0

package soundfont

import (
	"bytes"
	"errors"
	"testing"

	"github.com/ik5/sfrender/synth"
)

func TestLoader_RejectsNonSoundFont(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"garbage", []byte("definitely not a soundfont")},
		{"wave riff", append([]byte("RIFF\x04\x00\x00\x00WAVE"), make([]byte, 32)...)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			inst, err := Loader{}.Load(bytes.NewReader(tt.data))
			if err == nil {
				t.Fatal("Load() error = nil, want error")
			}

			if !errors.Is(err, ErrInvalidSoundFont) {
				t.Errorf("Load() error = %v, want ErrInvalidSoundFont", err)
			}

			if inst != nil {
				t.Errorf("Load() instrument = %v, want nil", inst)
			}
		})
	}
}

func TestInstrument_RejectsInvalidSampleRate(t *testing.T) {
	t.Parallel()

	inst := &Instrument{}
	for _, rate := range []int{0, -44100} {
		_, err := inst.NewRenderer(rate)
		if !errors.Is(err, synth.ErrInvalidSampleRate) {
			t.Errorf("NewRenderer(%d) error = %v, want ErrInvalidSampleRate", rate, err)
		}
	}
}

func TestLoader_ImplementsSynthLoader(t *testing.T) {
	t.Parallel()

	var _ synth.Loader = Loader{}
	var _ synth.Instrument = (*Instrument)(nil)
}
