// Command simplemd converts simple markdown files to HTML, styled JSON, PNG
// previews or tag dumps.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/fatih/color"
	"go.uber.org/automaxprocs/maxprocs"

	sm "github.com/riverfjs/simplemarkdown-go"
	"github.com/riverfjs/simplemarkdown-go/internal/yamlutil"
)

func main() {
	flags, err := parseFlags(os.Args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply.
	if flags.verbose {
		_, _ = maxprocs.Set(maxprocs.Logger(sm.Logger.Printf))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, flags, os.Stdout); err != nil {
		sm.Logger.Println(err)
		os.Exit(1)
	}
}

func run(ctx context.Context, flags *cliFlags, stdout io.Writer) error {
	config := sm.DefaultConfig()
	if flags.config != "" {
		loaded, err := sm.LoadConfig(flags.config)
		if err != nil {
			return err
		}
		config = loaded
	}

	if flags.printConfig {
		out, err := yamlutil.Marshal(config)
		if err != nil {
			return err
		}
		_, err = stdout.Write(out)
		return err
	}

	inputs := flags.inputs
	if len(inputs) == 0 {
		inputs = []string{"-"}
	}
	jobs, err := planJobs(inputs, flags.output, flags.mode)
	if err != nil {
		return err
	}

	colorize := flags.output == "" && !color.NoColor
	r := newRenderer(flags.mode, config, flags.normalize, colorize)

	failed := 0
	for _, res := range convertBatch(ctx, r, jobs, flags.workers, stdout) {
		switch {
		case res.err != nil:
			failed++
			sm.Logger.Printf("%s: %v", res.inputPath, res.err)
		case flags.verbose && res.outputPath != "":
			sm.Logger.Printf("%s -> %s (%v)", res.inputPath, res.outputPath, res.duration)
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d conversions failed", failed, len(jobs))
	}
	return nil
}
