// SPDX-License-Identifier: EPL-2.0

package audio

import "io"

// SliceSource streams an in-memory interleaved sample slice. The slice is
// never written to, so many SliceSources may share one backing array.
type SliceSource struct {
	data       []float32
	sampleRate int
	channels   int
	pos        int
}

// NewSliceSource streams data, interleaved with the given channel count.
func NewSliceSource(sampleRate, channels int, data []float32) *SliceSource {
	return &SliceSource{
		data:       data,
		sampleRate: sampleRate,
		channels:   channels,
	}
}

func (s *SliceSource) SampleRate() int { return s.sampleRate }
func (s *SliceSource) Channels() int   { return s.channels }
func (s *SliceSource) BufSize() int    { return 4096 }
func (s *SliceSource) Close() error    { return nil }

func (s *SliceSource) ReadSamples(dst []float32) (int, error) {
	if s.pos >= len(s.data) {
		return 0, io.EOF
	}

	// whole frames only
	n := len(dst) - len(dst)%s.channels
	n = copy(dst[:n], s.data[s.pos:])
	s.pos += n

	if s.pos >= len(s.data) {
		return n, io.EOF
	}

	return n, nil
}
