// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/ik5/sfrender/audio"
)

// FrameSize is the byte length of one stereo 16-bit frame.
const FrameSize = 4

// Encode returns buf as headerless 16-bit stereo PCM: for every frame the
// left sample then the right one, each little-endian, after scaling by gain
// and truncating to int16. The layout does not depend on host byte order.
func Encode(buf audio.StereoBuffer, gain float32) ([]byte, error) {
	if err := buf.Validate(); err != nil {
		return nil, err
	}

	samples := audio.Interleave16(buf, gain)
	out := make([]byte, 2*len(samples))
	for i, s := range samples {
		binary.LittleEndian.PutUint16(out[2*i:], uint16(s))
	}

	return out, nil
}

// Write encodes buf and hands the bytes to w in a single Write call.
func Write(w io.Writer, buf audio.StereoBuffer, gain float32) error {
	data, err := Encode(buf, gain)
	if err != nil {
		return err
	}

	n, err := w.Write(data)
	if err != nil {
		return fmt.Errorf("write pcm: %w", err)
	}

	if n != len(data) {
		return fmt.Errorf("write pcm: %w", io.ErrShortWrite)
	}

	return nil
}
