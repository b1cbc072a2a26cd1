// SPDX-License-Identifier: EPL-2.0

// Package pcm writes raw, headerless 16-bit stereo PCM.
//
// # Byte Layout
//
// A file is a flat run of 4-byte frames, one per time step:
//
//	offset  0     1      2     3      4     5      ...
//	        L-lo  L-hi   R-lo  R-hi   L-lo  L-hi   ...
//	        `-- frame 0 --------'     `-- frame 1 ...
//
// Each sample is a signed 16-bit integer, little-endian whatever the host
// byte order. Its length is always FrameSize times the frame count, so a
// 20 second note at 44.1 kHz is exactly 3,528,000 bytes.
//
// Nothing in the file records the sample rate, the channel count or the
// sample width; a reader must know them. Most tools take them as options,
// for example:
//
//	ffplay -f s16le -ar 44100 -ch_layout stereo DEFAULT_60.pcm
//
// # Quantization
//
// Every sample is multiplied by the gain and truncated toward zero, not
// rounded, into an int16. With the gain from audio.Gain the loudest sample
// lands at 32440 (0.99 of full scale), so nothing reaches the int16 limits.
// A zero gain writes a file of zeros with the same length.
//
// # Usage
//
// Encode returns the bytes; Write hands them to an io.Writer in one call:
//
//	gain, silent, err := audio.Gain(buf)
//	if err != nil {
//	    return err
//	}
//
//	f, _ := os.Create("DEFAULT_60.pcm")
//	defer f.Close()
//
//	if err := pcm.Write(f, buf, gain); err != nil {
//	    return err
//	}
//
// A writer that accepts fewer bytes than given without an error causes
// io.ErrShortWrite.
//
// # Errors
//
// Buffer validation errors come straight from audio.StereoBuffer.Validate:
//   - audio.ErrChannelMismatch: left and right differ in length
//   - audio.ErrEmptyBuffer: there are no frames to write
//
// Write errors are wrapped with a "write pcm" prefix and still match the
// underlying error through errors.Is.
package pcm
