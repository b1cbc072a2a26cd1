// SPDX-License-Identifier: EPL-2.0

package sfrender

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownFormat is returned for an output selector other than "wav" or "pcm".
	ErrUnknownFormat = errors.New("unknown output format")

	// ErrInvalidConfig is returned by Config.Validate.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrLoad marks failures to open or parse the instrument bank.
	ErrLoad = errors.New("load instrument bank")

	// ErrRender marks synthesis failures for a note.
	ErrRender = errors.New("render note")

	// ErrEncode marks failures to create, write or finalize a note's file.
	ErrEncode = errors.New("encode note")
)

// Exit codes, one per failure class.
const (
	ExitOK     = 0
	ExitOther  = 1
	ExitConfig = 2
	ExitLoad   = 3
	ExitRender = 4
	ExitEncode = 5
)

// NoteError reports the stage (ErrRender or ErrEncode) and the note that
// failed. errors.Is matches both the stage and the underlying cause.
type NoteError struct {
	Stage error
	Note  int
	File  string
	Err   error
}

func (e *NoteError) Error() string {
	return fmt.Sprintf("%v %d (%s): %v", e.Stage, e.Note, e.File, e.Err)
}

func (e *NoteError) Unwrap() []error { return []error{e.Stage, e.Err} }

// ExitCode maps err onto the process exit status for its failure class.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrUnknownFormat), errors.Is(err, ErrInvalidConfig):
		return ExitConfig
	case errors.Is(err, ErrLoad):
		return ExitLoad
	case errors.Is(err, ErrRender):
		return ExitRender
	case errors.Is(err, ErrEncode):
		return ExitEncode
	default:
		return ExitOther
	}
}
