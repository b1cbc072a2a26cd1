// SPDX-License-Identifier: EPL-2.0

// Package synth defines the contract between the render pipeline and a
// synthesis engine.
//
// An engine is used in three steps:
//
//	inst, err := loader.Load(file)           // once per bank
//	r, err := inst.NewRenderer(44100)        // once per note
//	r.NoteOn(0, 60, 127)
//	err = r.Render(left, right)
//
// The pipeline never looks inside an Instrument. Two engines ship with the
// module: synth/soundfont (SF2 banks) and synth/sampler (a single recorded
// sample re-pitched per note).
package synth
