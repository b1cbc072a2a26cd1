// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 samples for the sample-based instrument bank.
//
// Decoding is done by github.com/hajimehoshi/go-mp3, which always yields
// 16-bit stereo; mono files come back with both channels equal.
package mp3
