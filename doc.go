// SPDX-License-Identifier: EPL-2.0

// Package sfrender renders one audio file per MIDI note from an instrument
// bank.
//
// For every note in a range (0-127 by default) a Batch sends a single
// note-on to a fresh renderer, captures a fixed-length stereo waveform,
// peak-normalizes it so the loudest sample sits at 99% of full scale and
// writes it as 16-bit stereo, either raw PCM or WAV:
//
//	inst, err := sfrender.OpenInstrument("piano.sf2")
//	if err != nil {
//	    return err
//	}
//
//	cfg := sfrender.DefaultConfig()
//	cfg.Format = sfrender.FormatPCM
//
//	report, err := sfrender.NewBatch(inst, cfg, log.Default()).Run(ctx)
//
// # Output
//
// Files are named <Prefix><note>.<ext>, for example DEFAULT_0.WAV through
// DEFAULT_127.WAV, or DEFAULT_60.pcm for raw output. Raw PCM files hold
// interleaved little-endian int16 frames (left then right) and nothing
// else. WAV files carry the same data inside a canonical RIFF container
// declaring 2 channels, the sample rate and 16 bits per sample.
//
// # Normalization
//
// Each note is scaled by 0.99/peak, where peak is the largest absolute
// sample over both channels, then truncated toward zero to int16. A note
// that renders pure silence has no peak; it is written as a full-length
// file of zeros and listed in Report.Silent.
//
// # Instrument banks
//
// OpenInstrument picks the engine from the file extension. ".sf2" loads a
// SoundFont (github.com/sinshu/go-meltysynth). ".wav", ".aif", ".aiff",
// ".mp3" and ".ogg" load a single recorded sample that is re-pitched for
// every note around middle C (see synth/sampler).
//
// # Errors
//
// The first failure aborts the batch. Errors are classed as configuration
// (ErrUnknownFormat, ErrInvalidConfig), load (ErrLoad), render (ErrRender)
// or encode (ErrEncode); the last two arrive as *NoteError naming the note
// and file. ExitCode turns a class into a process exit status.
package sfrender
