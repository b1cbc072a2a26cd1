// SPDX-License-Identifier: EPL-2.0

package sfrender

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ik5/sfrender/audio"
)

func TestWriteFile(t *testing.T) {
	t.Parallel()

	buf := audio.StereoBuffer{
		Left:  []float32{0.5, -0.25, 0},
		Right: []float32{0.25, 0.1, -0.5},
	}

	tests := []struct {
		format Format
		size   int64
	}{
		{FormatPCM, 3 * 4},
		{FormatWAV, 44 + 3*4},
	}

	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), "out."+tt.format.Extension())

			silent, err := WriteFile(path, tt.format, 44100, buf)
			if err != nil || silent {
				t.Fatalf("WriteFile() = %v, %v", silent, err)
			}

			info, err := os.Stat(path)
			if err != nil {
				t.Fatal(err)
			}
			if info.Size() != tt.size {
				t.Errorf("size = %d, want %d", info.Size(), tt.size)
			}
		})
	}
}

func TestWriteFile_PCMSamples(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "note.pcm")
	buf := audio.StereoBuffer{Left: []float32{0.5, -1}, Right: []float32{0, 0.25}}

	if _, err := WriteFile(path, FormatPCM, 44100, buf); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	// gain 0.99: 0.495, 0, -0.99, 0.2475 of full scale.
	want := []int16{16220, 0, -32440, 8110}
	for i, w := range want {
		got := int16(uint16(data[2*i]) | uint16(data[2*i+1])<<8)
		if got != w {
			t.Errorf("sample %d = %d, want %d", i, got, w)
		}
	}
}

func TestWriteFile_Silent(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "quiet.pcm")

	silent, err := WriteFile(path, FormatPCM, 44100, audio.NewStereoBuffer(100))
	if err != nil || !silent {
		t.Fatalf("WriteFile() = %v, %v, want true, nil", silent, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	if len(data) != 400 {
		t.Fatalf("len = %d, want 400", len(data))
	}

	for i, b := range data {
		if b != 0 {
			t.Fatalf("byte %d = %d, want 0", i, b)
		}
	}
}

func TestWriteFile_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	good := audio.NewStereoBuffer(4)

	tests := []struct {
		name   string
		format Format
		buf    audio.StereoBuffer
		want   error
	}{
		{"unknown format", Format(0), good, ErrUnknownFormat},
		{"mismatch", FormatPCM, audio.StereoBuffer{Left: make([]float32, 2), Right: make([]float32, 3)}, audio.ErrChannelMismatch},
		{"empty", FormatWAV, audio.StereoBuffer{}, audio.ErrEmptyBuffer},
	}

	for _, tt := range tests {
		path := filepath.Join(dir, tt.name)

		if _, err := WriteFile(path, tt.format, 44100, tt.buf); !errors.Is(err, tt.want) {
			t.Errorf("%s: WriteFile() error = %v, want %v", tt.name, err, tt.want)
		}

		if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
			t.Errorf("%s: file created for a rejected write", tt.name)
		}
	}
}
