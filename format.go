// SPDX-License-Identifier: EPL-2.0

package sfrender

import "fmt"

// Format is the closed set of output encodings.
type Format int

const (
	FormatWAV Format = iota + 1
	FormatPCM
)

// ParseFormat accepts exactly "wav" or "pcm".
func ParseFormat(s string) (Format, error) {
	switch s {
	case "wav":
		return FormatWAV, nil
	case "pcm":
		return FormatPCM, nil
	default:
		return 0, fmt.Errorf("%w: %q (want wav or pcm)", ErrUnknownFormat, s)
	}
}

func (f Format) String() string {
	switch f {
	case FormatWAV:
		return "wav"
	case FormatPCM:
		return "pcm"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// Extension is the file name suffix for f, without the dot.
func (f Format) Extension() string {
	switch f {
	case FormatWAV:
		return "WAV"
	case FormatPCM:
		return "pcm"
	default:
		return ""
	}
}

func (f Format) valid() bool { return f == FormatWAV || f == FormatPCM }
