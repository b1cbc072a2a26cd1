// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis samples for the sample-based
// instrument bank, using github.com/jfreymuth/oggvorbis. The decoder
// already produces float32 in [-1, 1], so samples pass through unchanged.
package vorbis
