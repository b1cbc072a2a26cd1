// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

type fakeOgg struct {
	sampleRate int
	channels   int
	data       []float32
	err        error
}

func (f *fakeOgg) SampleRate() int { return f.sampleRate }
func (f *fakeOgg) Channels() int   { return f.channels }

func (f *fakeOgg) Read(p []float32) (int, error) {
	if f.err != nil {
		return 0, f.err
	}

	if len(f.data) == 0 {
		return 0, io.EOF
	}

	n := copy(p, f.data)
	f.data = f.data[n:]

	return n, nil
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader([]byte("This is not Ogg Vorbis data")))
	if err == nil {
		t.Error("Decode() error = nil, want error for invalid data")
	}
}

func TestSource_ReadSamples_WholeFrames(t *testing.T) {
	t.Parallel()

	src := &source{
		dec:        &fakeOgg{sampleRate: 22050, channels: 2, data: []float32{0.1, 0.2, 0.3, 0.4, 0.5, 0.6}},
		sampleRate: 22050,
		channels:   2,
	}

	buf := make([]float32, 5)
	n, err := src.ReadSamples(buf)
	if err != nil {
		t.Fatalf("ReadSamples() error = %v", err)
	}

	if n != 4 {
		t.Errorf("ReadSamples() n = %d, want 4 (two whole frames)", n)
	}

	if buf[3] != 0.4 {
		t.Errorf("buf[3] = %v, want 0.4", buf[3])
	}

	if n, _ := src.ReadSamples(buf[:1]); n != 0 {
		t.Errorf("ReadSamples() with less than a frame n = %d, want 0", n)
	}
}

func TestSource_ReadSamples_Error(t *testing.T) {
	t.Parallel()

	src := &source{dec: &fakeOgg{channels: 1, err: errors.New("bad page")}, channels: 1}

	_, err := src.ReadSamples(make([]float32, 8))
	if err == nil || err == io.EOF {
		t.Errorf("ReadSamples() error = %v, want decoder error", err)
	}
}
