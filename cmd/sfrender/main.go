// SPDX-License-Identifier: EPL-2.0

// Command sfrender writes DEFAULT_0 through DEFAULT_127 audio files, one
// per MIDI note, from an instrument bank.
//
//	sfrender -sf2 piano.sf2 -output wav
//	sfrender -s piano.sf2 -o pcm -jobs 8
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/ik5/sfrender"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr, sfrender.DefaultConfig())
	stop()

	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer, cfg sfrender.Config) int {
	fs := flag.NewFlagSet("sfrender", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var bankPath, output string
	fs.StringVar(&bankPath, "sf2", "", "instrument bank: .sf2 SoundFont, or a .wav/.aiff/.mp3/.ogg sample")
	fs.StringVar(&bankPath, "s", "", "shorthand for -sf2")
	fs.StringVar(&output, "output", "", "output format: wav or pcm")
	fs.StringVar(&output, "o", "", "shorthand for -output")
	fs.IntVar(&cfg.Workers, "jobs", cfg.Workers, "notes rendered in parallel")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return sfrender.ExitOK
		}
		return sfrender.ExitConfig
	}

	errLog := log.New(stderr, "sfrender: ", 0)

	if bankPath == "" || output == "" {
		errLog.Print("both -sf2 and -output are required")
		fs.Usage()
		return sfrender.ExitConfig
	}

	format, err := sfrender.ParseFormat(output)
	if err != nil {
		errLog.Print(err)
		return sfrender.ExitCode(err)
	}
	cfg.Format = format

	if err := cfg.Validate(); err != nil {
		errLog.Print(err)
		return sfrender.ExitCode(err)
	}

	inst, err := sfrender.OpenInstrument(bankPath)
	if err != nil {
		errLog.Print(err)
		return sfrender.ExitCode(err)
	}

	batch := sfrender.NewBatch(inst, cfg, log.New(stdout, "", 0))
	report, err := batch.Run(ctx)
	if err != nil {
		errLog.Print(err)
		return sfrender.ExitCode(err)
	}

	if len(report.Silent) > 0 {
		fmt.Fprintf(stdout, "%d of %d notes were silent: %v\n", len(report.Silent), len(report.Files), report.Silent)
	}

	return sfrender.ExitOK
}
