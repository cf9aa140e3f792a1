package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/google/renameio"
)

const filePermissions = 0o644

var (
	ErrReadMarkdown = errors.New("failed to read markdown file")
	ErrWriteOutput  = errors.New("failed to write output")
	ErrOutputNotDir = errors.New("--output must be a directory when converting several inputs")
)

// fileJob is one input and where its output goes. An empty outputPath means stdout.
type fileJob struct {
	inputPath  string
	outputPath string
}

// conversionResult holds the outcome of a single conversion.
type conversionResult struct {
	inputPath  string
	outputPath string
	err        error
	duration   time.Duration
}

// planJobs resolves output paths. A single input goes to output (or stdout
// when empty); several inputs go into the output directory, or next to each
// input when output is empty.
func planJobs(inputs []string, output string, mode outputMode) ([]fileJob, error) {
	if len(inputs) == 1 {
		return []fileJob{{inputPath: inputs[0], outputPath: output}}, nil
	}
	if output != "" {
		info, err := os.Stat(output)
		if err != nil || !info.IsDir() {
			return nil, fmt.Errorf("%w: %s", ErrOutputNotDir, output)
		}
	}

	jobs := make([]fileJob, 0, len(inputs))
	for _, input := range inputs {
		name := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input)) + mode.Extension()
		dir := filepath.Dir(input)
		if output != "" {
			dir = output
		}
		jobs = append(jobs, fileJob{inputPath: input, outputPath: filepath.Join(dir, name)})
	}
	return jobs, nil
}

// resolveWorkers returns the pool size, at most one worker per job.
func resolveWorkers(requested, jobs int) int {
	workers := requested
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return max(1, min(workers, jobs))
}

// convertBatch converts files concurrently. Results keep the order of jobs.
func convertBatch(ctx context.Context, r *renderer, jobs []fileJob, workers int, stdout io.Writer) []conversionResult {
	if len(jobs) == 0 {
		return nil
	}

	results := make([]conversionResult, len(jobs))
	queue := make(chan int, len(jobs))
	var stdoutMu sync.Mutex

	var wg sync.WaitGroup
	for w := 0; w < resolveWorkers(workers, len(jobs)); w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range queue {
				job := jobs[idx]
				if ctx.Err() != nil {
					results[idx] = conversionResult{inputPath: job.inputPath, err: ctx.Err()}
					continue
				}
				start := time.Now()
				err := convertFile(r, job, stdout, &stdoutMu)
				results[idx] = conversionResult{
					inputPath:  job.inputPath,
					outputPath: job.outputPath,
					err:        err,
					duration:   time.Since(start),
				}
			}
		}()
	}

	for idx := range jobs {
		queue <- idx
	}
	close(queue)
	wg.Wait()
	return results
}

func convertFile(r *renderer, job fileJob, stdout io.Writer, stdoutMu *sync.Mutex) error {
	var (
		data []byte
		err  error
	)
	if job.inputPath == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(job.inputPath)
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrReadMarkdown, job.inputPath, err)
	}

	out, err := r.render(string(data))
	if err != nil {
		return fmt.Errorf("%s: %w", job.inputPath, err)
	}

	if job.outputPath == "" {
		stdoutMu.Lock()
		defer stdoutMu.Unlock()
		if _, err := stdout.Write(out); err != nil {
			return fmt.Errorf("%w: %w", ErrWriteOutput, err)
		}
		return nil
	}
	if err := renameio.WriteFile(job.outputPath, out, filePermissions); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWriteOutput, job.outputPath, err)
	}
	return nil
}
