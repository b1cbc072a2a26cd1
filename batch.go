// SPDX-License-Identifier: EPL-2.0

package sfrender

import (
	"context"
	"fmt"
	"io"
	"log"
	"sync"

	"github.com/ik5/sfrender/audio"
	"github.com/ik5/sfrender/synth"
	"golang.org/x/sync/errgroup"
)

// Report summarizes a finished run.
type Report struct {
	// Files lists the written paths in note order.
	Files []string
	// Silent lists the notes that rendered no sound and were written as zeros.
	Silent []int
}

// Batch renders one file per note from a shared instrument.
type Batch struct {
	inst   synth.Instrument
	cfg    Config
	logger *log.Logger
}

// NewBatch prepares a run. A nil logger discards progress output.
func NewBatch(inst synth.Instrument, cfg Config, logger *log.Logger) *Batch {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	return &Batch{inst: inst, cfg: cfg, logger: logger}
}

// Render synthesizes note into a fresh buffer of Config.FrameCount frames.
func (b *Batch) Render(note int) (audio.StereoBuffer, error) {
	left, right, err := synth.RenderNote(b.inst, b.cfg.SampleRate, b.cfg.Channel, note, b.cfg.Velocity, b.cfg.FrameCount())
	if err != nil {
		return audio.StereoBuffer{}, err
	}

	return audio.StereoBuffer{Left: left, Right: right}, nil
}

// RenderNote announces, renders and writes a single note.
func (b *Batch) RenderNote(note int) (silent bool, err error) {
	name := b.cfg.FileName(note)
	b.logger.Printf("rendering %s", name)

	buf, err := b.Render(note)
	if err != nil {
		return false, &NoteError{Stage: ErrRender, Note: note, File: name, Err: err}
	}

	silent, err = WriteFile(b.cfg.Path(note), b.cfg.Format, b.cfg.SampleRate, buf)
	if err != nil {
		return false, &NoteError{Stage: ErrEncode, Note: note, File: name, Err: err}
	}

	if silent {
		b.logger.Printf("%s: silent buffer, writing zero samples", name)
	}

	return silent, nil
}

// Run renders every note from FirstNote to LastNote. The first failure
// stops the run; files written before it are left in place. With more
// than one worker, notes run concurrently, each on its own renderer.
func (b *Batch) Run(ctx context.Context) (Report, error) {
	if err := b.cfg.Validate(); err != nil {
		return Report{}, err
	}

	if b.inst == nil {
		return Report{}, fmt.Errorf("%w: %w", ErrLoad, synth.ErrNoInstrument)
	}

	if b.cfg.Workers == 1 {
		return b.runSequential(ctx)
	}

	return b.runParallel(ctx)
}

func (b *Batch) runSequential(ctx context.Context) (Report, error) {
	var report Report

	for note := b.cfg.FirstNote; note <= b.cfg.LastNote; note++ {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		silent, err := b.RenderNote(note)
		if err != nil {
			return report, err
		}

		report.add(b.cfg.Path(note), note, silent)
	}

	return report, nil
}

func (b *Batch) runParallel(ctx context.Context) (Report, error) {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.cfg.Workers)

	var (
		mu     sync.Mutex
		done   = make([]bool, b.cfg.Notes())
		silent = make([]bool, b.cfg.Notes())
	)

	for note := b.cfg.FirstNote; note <= b.cfg.LastNote; note++ {
		if gctx.Err() != nil {
			break
		}

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			quiet, err := b.RenderNote(note)
			if err != nil {
				return err
			}

			mu.Lock()
			done[note-b.cfg.FirstNote] = true
			silent[note-b.cfg.FirstNote] = quiet
			mu.Unlock()

			return nil
		})
	}

	err := g.Wait()
	if err == nil {
		err = ctx.Err()
	}

	var report Report
	for i, ok := range done {
		if ok {
			note := b.cfg.FirstNote + i
			report.add(b.cfg.Path(note), note, silent[i])
		}
	}

	return report, err
}

func (r *Report) add(path string, note int, silent bool) {
	r.Files = append(r.Files, path)
	if silent {
		r.Silent = append(r.Silent, note)
	}
}
