// SPDX-License-Identifier: EPL-2.0

package sfrender

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ik5/sfrender/audio"
	"github.com/ik5/sfrender/formats/aiff"
	"github.com/ik5/sfrender/formats/mp3"
	"github.com/ik5/sfrender/formats/vorbis"
	"github.com/ik5/sfrender/formats/wav"
	"github.com/ik5/sfrender/synth"
	"github.com/ik5/sfrender/synth/sampler"
	"github.com/ik5/sfrender/synth/soundfont"
)

// SampleDecoders returns the decoders a sample bank can be loaded with,
// keyed by lower-case file extension.
func SampleDecoders() *audio.Registry {
	r := audio.NewRegistry()
	r.Register("wav", wav.Decoder{})
	r.Register("aif", aiff.Decoder{})
	r.Register("aiff", aiff.Decoder{})
	r.Register("mp3", mp3.Decoder{})
	r.Register("ogg", vorbis.Decoder{})

	return r
}

// LoaderFor picks the engine for a bank file extension: "sf2" is a
// SoundFont, any decodable audio format is a single-sample bank.
func LoaderFor(ext string) (synth.Loader, error) {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	if ext == "sf2" {
		return soundfont.Loader{}, nil
	}

	decoders := SampleDecoders()
	if _, ok := decoders.Get(ext); ok {
		return sampler.NewLoader(decoders, ext), nil
	}

	return nil, fmt.Errorf("unsupported bank type %q (want sf2, %s)", ext, strings.Join(decoders.Formats(), ", "))
}

// OpenInstrument loads the instrument bank at path. Every failure is an
// ErrLoad.
func OpenInstrument(path string) (synth.Instrument, error) {
	loader, err := LoaderFor(filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrLoad, path, err)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}
	defer f.Close()

	inst, err := loader.Load(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrLoad, path, err)
	}

	return inst, nil
}
