// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes WAV files through github.com/go-audio/wav.
//
// # Supported Formats
//
// Writing:
//   - integer PCM, 16 bits per sample
//   - 2 channels, interleaved left then right
//   - any sample rate
//
// Reading:
//   - integer PCM, 16, 24 or 32 bits per sample
//   - any channel count and sample rate
//
// # File Format
//
// WriteStereo16 produces a canonical 44-byte header followed by the
// samples:
//
//	offset  size  field
//	     0     4  "RIFF"
//	     4     4  file size - 8
//	     8     4  "WAVE"
//	    12     4  "fmt "
//	    16     4  16 (fmt chunk size)
//	    20     2  1 (integer PCM)
//	    22     2  2 (channels)
//	    24     4  sample rate
//	    28     4  byte rate (sample rate * 4)
//	    32     2  block align (4)
//	    34     2  16 (bits per sample)
//	    36     4  "data"
//	    40     4  data size (frames * 4)
//	    44        frames, little-endian int16 L, R, L, R, ...
//
// The bytes after the header are identical to what package pcm writes for
// the same buffer and gain.
//
// # Writing WAV Files
//
// Scale the buffer with audio.Gain and hand it to WriteStereo16:
//
//	gain, _, err := audio.Gain(buf)
//	if err != nil {
//	    return err
//	}
//
//	f, _ := os.Create("DEFAULT_60.WAV")
//	defer f.Close()
//
//	err = wav.WriteStereo16(f, 44100, buf, gain)
//
// The container needs an io.WriteSeeker because the RIFF and data chunk
// sizes are patched in when the encoder closes. A failure at that point is
// returned as "finalize wav header", since the file on disk would claim the
// wrong length.
//
// # Decoding WAV Files
//
// Decoder returns an audio.Source with samples in [-1, 1):
//
//	source, err := wav.Decoder{}.Decode(file)
//	if err != nil {
//	    return err
//	}
//	defer source.Close()
//
//	buf := make([]float32, source.BufSize())
//	n, err := source.ReadSamples(buf)
//
// Inputs that are not an io.ReadSeeker are buffered in memory first, since
// go-audio seeks between chunks. The sample-based instrument bank loads its
// recordings this way.
//
// # Error Handling
//
//   - ErrNotWavFile: the input has no valid RIFF/WAVE header
//   - ErrOnlyPCMSupported: the format tag is not integer PCM (e.g. float)
//   - ErrUnsupportedBitDepth: the sample width is not 16, 24 or 32 bits
//
// Use errors.Is to test for them:
//
//	if errors.Is(err, wav.ErrNotWavFile) {
//	    fmt.Println("not a WAV file")
//	}
package wav
