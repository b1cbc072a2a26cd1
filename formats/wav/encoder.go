// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
	"github.com/ik5/sfrender/audio"
)

// Container parameters written by WriteStereo16.
const (
	Channels  = 2
	BitDepth  = 16
	pcmFormat = 1
)

// WriteStereo16 writes buf as a 2-channel, 16-bit integer PCM WAV at
// sampleRate. Every sample is multiplied by gain and truncated to int16;
// frames are interleaved left, right. The RIFF and data chunk sizes are
// committed when the encoder is closed, so a failed close is reported.
func WriteStereo16(w io.WriteSeeker, sampleRate int, buf audio.StereoBuffer, gain float32) error {
	if err := buf.Validate(); err != nil {
		return err
	}

	samples := audio.Interleave16(buf, gain)
	data := make([]int, len(samples))
	for i, s := range samples {
		data[i] = int(s)
	}

	enc := gowav.NewEncoder(w, sampleRate, BitDepth, Channels, pcmFormat)

	err := enc.Write(&goaudio.IntBuffer{
		Format: &goaudio.Format{
			SampleRate:  sampleRate,
			NumChannels: Channels,
		},
		Data:           data,
		SourceBitDepth: BitDepth,
	})
	if err != nil {
		_ = enc.Close()
		return fmt.Errorf("write wav samples: %w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalize wav header: %w", err)
	}

	return nil
}
