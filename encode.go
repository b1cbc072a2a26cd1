// SPDX-License-Identifier: EPL-2.0

package sfrender

import (
	"fmt"
	"os"

	"github.com/ik5/sfrender/audio"
	"github.com/ik5/sfrender/formats/pcm"
	"github.com/ik5/sfrender/formats/wav"
)

// WriteFile peak-normalizes buf and writes it to path in format f. A silent
// buffer is written as zeros of full length and reported through silent.
func WriteFile(path string, f Format, sampleRate int, buf audio.StereoBuffer) (silent bool, err error) {
	if !f.valid() {
		return false, fmt.Errorf("%w: %v", ErrUnknownFormat, f)
	}

	gain, silent, err := audio.Gain(buf)
	if err != nil {
		return false, err
	}

	file, err := os.Create(path)
	if err != nil {
		return false, err
	}

	switch f {
	case FormatWAV:
		err = wav.WriteStereo16(file, sampleRate, buf, gain)
	case FormatPCM:
		err = pcm.Write(file, buf, gain)
	}

	if cerr := file.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("close %s: %w", path, cerr)
	}

	return silent, err
}
