package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// outputMode selects what a conversion writes.
type outputMode int

const (
	modeHTML outputMode = iota
	modeStyled
	modePNG
	modeTags
	modeCompare
)

var modeExtensions = [...]string{".html", ".json", ".png", ".tags.txt", ".diff"}

// Extension returns the file extension used for outputs of the mode.
func (m outputMode) Extension() string {
	return modeExtensions[m]
}

var (
	ErrConflictingModes = errors.New("only one of --styled, --png, --tags, --compare may be set")
	ErrNegativeWorkers  = errors.New("--workers must not be negative")
)

type cliFlags struct {
	output      string
	config      string
	workers     int
	normalize   bool
	verbose     bool
	printConfig bool
	mode        outputMode
	inputs      []string
}

// parseFlags parses args (including the program name) into cliFlags.
func parseFlags(args []string) (*cliFlags, error) {
	f := &cliFlags{}
	fs := flag.NewFlagSet("simplemd", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var styled, png, tags, compare bool
	fs.StringVarP(&f.output, "output", "o", "", "output file, or directory when converting several inputs")
	fs.StringVarP(&f.config, "config", "c", "", "YAML render config")
	fs.IntVarP(&f.workers, "workers", "w", 0, "concurrent conversions (0 = GOMAXPROCS)")
	fs.BoolVar(&f.normalize, "normalize", false, "NFC-normalize input before parsing")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "log progress to stderr")
	fs.BoolVar(&f.printConfig, "print-config", false, "print the effective render config and exit")
	fs.BoolVar(&styled, "styled", false, "write styled text with entities as JSON")
	fs.BoolVar(&png, "png", false, "write a PNG preview")
	fs.BoolVar(&tags, "tags", false, "write the tag dump")
	fs.BoolVar(&compare, "compare", false, "diff text and tags against goldmark and check the html output")

	if err := fs.Parse(args[1:]); err != nil {
		return nil, fmt.Errorf("%w\n\n%s", err, fs.FlagUsages())
	}
	if f.workers < 0 {
		return nil, ErrNegativeWorkers
	}

	selected := 0
	for mode, set := range map[outputMode]bool{modeStyled: styled, modePNG: png, modeTags: tags, modeCompare: compare} {
		if set {
			f.mode = mode
			selected++
		}
	}
	if selected > 1 {
		return nil, ErrConflictingModes
	}

	if fs.NArg() > 0 {
		f.inputs = fs.Args()
	}
	return f, nil
}
