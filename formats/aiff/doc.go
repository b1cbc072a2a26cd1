// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF samples for the sample-based instrument bank,
// using github.com/go-audio/aiff.
//
//	src, err := aiff.Decoder{}.Decode(file)
//
// Samples come back as float32 in [-1, 1); 16, 24 and 32-bit files are
// accepted.
package aiff
