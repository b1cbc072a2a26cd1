// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/ik5/sfrender/utils"
)

// maxEmptyReads bounds how often a source may answer (0, nil) before it is
// treated as exhausted.
const maxEmptyReads = 64

// Resampler steps through src at a fixed ratio using Catmull-Rom
// interpolation over a sliding window of four frames. It works on
// interleaved samples and keeps the channel count. When it reads the source
// faster than real time (ratio > 1) a one-pole low-pass takes the edge off
// aliasing.
type Resampler struct {
	src      Source
	ratio    float64 // source frames consumed per output frame
	channels int

	// window[0..3] hold frames t-1, t, t+1, t+2; output is interpolated
	// between window[1] and window[2] at offset pos.
	window [4][]float32
	valid  [4]bool
	primed bool
	eof    bool
	pos    float64

	frameBuf []float32

	smooth  bool
	alpha   float32
	lowpass []float32
}

// NewRatioResampler reads ratio source frames for every output frame and
// reports the source rate as its own. Played back at that rate the result
// is src transposed by a factor of ratio, which is how a recorded sample
// is pitched to another note.
func NewRatioResampler(src Source, ratio float64) (*Resampler, error) {
	if ratio <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRatio, ratio)
	}

	channels := src.Channels()

	r := &Resampler{
		src:      src,
		ratio:    ratio,
		channels: channels,
		frameBuf: make([]float32, channels),
		smooth:   ratio > 1,
		alpha:    0.5,
		lowpass:  make([]float32, channels),
	}

	for i := range r.window {
		r.window[i] = make([]float32, channels)
	}

	return r, nil
}

func (r *Resampler) SampleRate() int { return r.src.SampleRate() }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// readFrame pulls one frame from src into dst. It returns false once the
// source is exhausted.
func (r *Resampler) readFrame(dst []float32) (bool, error) {
	if r.eof {
		return false, nil
	}

	var (
		n   int
		err error
	)
	for range maxEmptyReads {
		n, err = r.src.ReadSamples(r.frameBuf)
		if n > 0 || err != nil {
			break
		}
	}

	if err == io.EOF || (n == 0 && err == nil) {
		r.eof = true
	} else if err != nil {
		return false, fmt.Errorf("%w", err)
	}

	if n < r.channels {
		return false, nil
	}

	copy(dst, r.frameBuf)
	if r.smooth {
		for c := range r.channels {
			dst[c] = r.alpha*dst[c] + (1-r.alpha)*r.lowpass[c]
			r.lowpass[c] = dst[c]
		}
	}

	return true, nil
}

func (r *Resampler) prime() error {
	r.primed = true

	n, err := r.src.ReadSamples(r.frameBuf)
	if err != nil && err != io.EOF {
		return fmt.Errorf("%w", err)
	}
	if err == io.EOF {
		r.eof = true
	}
	if n < r.channels {
		r.eof = true
		return nil
	}

	// The first frame seeds the filter and doubles as its own predecessor.
	copy(r.window[1], r.frameBuf)
	copy(r.window[0], r.frameBuf)
	copy(r.lowpass, r.frameBuf)
	r.valid[0], r.valid[1] = true, true

	for i := 2; i < len(r.window); i++ {
		ok, err := r.readFrame(r.window[i])
		if err != nil {
			return err
		}
		r.valid[i] = ok
	}

	return nil
}

func (r *Resampler) advance() error {
	first := r.window[0]
	copy(r.window[:3], r.window[1:])
	copy(r.valid[:3], r.valid[1:])
	r.window[3] = first

	ok, err := r.readFrame(r.window[3])
	r.valid[3] = ok

	return err
}

// ReadSamples produces interleaved output frames. len(dst) must be a
// multiple of Channels().
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if !r.primed {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	want := len(dst) / r.channels
	written := 0

	for written < want {
		for r.pos >= 1 {
			r.pos--
			if err := r.advance(); err != nil {
				return written * r.channels, err
			}
		}

		if !r.valid[1] || !r.valid[2] {
			return written * r.channels, io.EOF
		}

		next := r.window[3]
		if !r.valid[3] {
			next = r.window[2]
		}

		t := float32(r.pos)
		base := written * r.channels
		for c := range r.channels {
			dst[base+c] = utils.CatmullRom(r.window[0][c], r.window[1][c], r.window[2][c], next[c], t)
		}

		written++
		r.pos += r.ratio
	}

	return written * r.channels, nil
}
