// SPDX-License-Identifier: EPL-2.0

// Package audio holds the sample-level building blocks of the renderer.
//
//   - StereoBuffer, the split left/right float32 buffer a note renders into
//   - the peak normalizer (Peak, ScaleFactor, Gain)
//   - Interleave16, the truncating 16-bit quantizer
//   - the streaming Source interface, decoder Registry, Resampler and MonoMixer
//
// # Normalization
//
// Every buffer is scaled so its loudest sample, over both channels, lands
// at TargetPeak of full scale:
//
//	gain, silent, err := audio.Gain(buf)
//	samples := audio.Interleave16(buf, gain)
//
// A buffer of zeros has no scale factor. ScaleFactor reports
// ErrSilentBuffer for it; Gain returns a zero gain and silent = true so the
// buffer still encodes, as zeros.
//
// # Sources
//
// Decoders produce a Source. NewRatioResampler steps through one at a fixed
// ratio with cubic interpolation, which is how a recorded sample is
// re-pitched:
//
//	r, err := audio.NewRatioResampler(audio.NewSliceSource(rate, 1, mono), 2)
//
// MonoMixer averages the channels of any Source into one.
package audio
