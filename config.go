// SPDX-License-Identifier: EPL-2.0

package sfrender

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/ik5/sfrender/synth"
)

// Defaults used by the command line tool.
const (
	DefaultPrefix     = "DEFAULT_"
	DefaultSampleRate = 44100
	DefaultDuration   = 20 * time.Second
	DefaultVelocity   = synth.MaxVelocity
	DefaultChannel    = 0
)

// Config holds every parameter of a batch run.
type Config struct {
	// Format selects the encoder.
	Format Format
	// Dir receives the output files.
	Dir string
	// Prefix starts every file name, followed by the note number.
	Prefix string

	SampleRate int
	Duration   time.Duration

	Channel  int
	Velocity int

	// FirstNote and LastNote bound the rendered notes, inclusive.
	FirstNote int
	LastNote  int

	// Workers is the number of notes rendered at once.
	Workers int
}

// DefaultConfig renders every note for 20 seconds at 44.1 kHz into WAV files
// in the working directory, one note at a time.
func DefaultConfig() Config {
	return Config{
		Format:     FormatWAV,
		Dir:        ".",
		Prefix:     DefaultPrefix,
		SampleRate: DefaultSampleRate,
		Duration:   DefaultDuration,
		Channel:    DefaultChannel,
		Velocity:   DefaultVelocity,
		FirstNote:  0,
		LastNote:   synth.MaxNote,
		Workers:    1,
	}
}

// FrameCount is the number of samples per channel rendered for each note.
func (c Config) FrameCount() int {
	return int(int64(c.Duration) * int64(c.SampleRate) / int64(time.Second))
}

// FileName is the output name for note, e.g. DEFAULT_60.WAV.
func (c Config) FileName(note int) string {
	return fmt.Sprintf("%s%d.%s", c.Prefix, note, c.Format.Extension())
}

// Path joins Dir and FileName(note).
func (c Config) Path(note int) string {
	return filepath.Join(c.Dir, c.FileName(note))
}

// Notes is the number of files a run produces.
func (c Config) Notes() int { return c.LastNote - c.FirstNote + 1 }

// Validate reports ErrUnknownFormat or ErrInvalidConfig for settings that
// cannot produce a run.
func (c Config) Validate() error {
	if !c.Format.valid() {
		return fmt.Errorf("%w: %v", ErrUnknownFormat, c.Format)
	}

	switch {
	case c.SampleRate <= 0:
		return fmt.Errorf("%w: sample rate %d", ErrInvalidConfig, c.SampleRate)
	case c.FrameCount() < 1:
		return fmt.Errorf("%w: duration %v renders no frames", ErrInvalidConfig, c.Duration)
	case c.Channel < 0 || c.Channel > synth.MaxChannel:
		return fmt.Errorf("%w: channel %d", ErrInvalidConfig, c.Channel)
	case c.Velocity < 1 || c.Velocity > synth.MaxVelocity:
		return fmt.Errorf("%w: velocity %d", ErrInvalidConfig, c.Velocity)
	case c.FirstNote < 0 || c.LastNote > synth.MaxNote || c.FirstNote > c.LastNote:
		return fmt.Errorf("%w: notes %d..%d", ErrInvalidConfig, c.FirstNote, c.LastNote)
	case c.Workers < 1:
		return fmt.Errorf("%w: workers %d", ErrInvalidConfig, c.Workers)
	}

	return nil
}
