// Package pipeline converts a batch of vok2 files one after another.
// A failing file is reported and skipped; it never aborts the batch.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/japaniel/vok2vok/pkg/export"
	"github.com/japaniel/vok2vok/pkg/vok2"
	"go.uber.org/zap"
)

//go:generate mockgen -destination=mock/converter_mock.go -package=mock_pipeline . Converter

// Converter turns one source file into one output file.
type Converter interface {
	Output(source string) string
	Convert(ctx context.Context, source, output string, overwrite bool) error
}

// Status is the outcome for one file.
type Status int

const (
	Converted Status = iota
	Skipped
	Failed
)

func (s Status) String() string {
	switch s {
	case Converted:
		return "converted"
	case Skipped:
		return "skipped"
	case Failed:
		return "failed"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Result records what happened to one source file.
type Result struct {
	Source string
	Output string
	Status Status
	Err    error
}

// Report collects the results of a batch.
type Report struct {
	Results []Result
}

// Attempted is the number of files handed to the batch.
func (r Report) Attempted() int { return len(r.Results) }

// Converted is the number of files written.
func (r Report) Converted() int {
	n := 0
	for _, res := range r.Results {
		if res.Status == Converted {
			n++
		}
	}
	return n
}

// Summary is the closing line printed after a batch.
func (r Report) Summary(target string) string {
	return fmt.Sprintf("Converted %d / %d vok2 files to %s.", r.Converted(), r.Attempted(), target)
}

// Runner processes files sequentially: each file is read, converted and
// written before the next one starts.
type Runner struct {
	Converter Converter
	Overwrite bool
	// Logger receives structured per-file events. nil means no logging.
	Logger *zap.Logger
	// Out receives the user-facing skip and failure lines. nil discards them.
	Out io.Writer
	// OnProgress is called after each file with the number of files done and the total.
	OnProgress func(current, total int)
}

// NewRunner creates a Runner writing user-facing lines to os.Stdout.
func NewRunner(conv Converter, overwrite bool, logger *zap.Logger) *Runner {
	return &Runner{
		Converter: conv,
		Overwrite: overwrite,
		Logger:    logger,
		Out:       os.Stdout,
	}
}

// Run converts files in order. Cancelling ctx stops the batch between
// files; files not started are reported as failed with ctx.Err().
func (r *Runner) Run(ctx context.Context, files []string) Report {
	log := r.Logger
	if log == nil {
		log = zap.NewNop()
	}

	report := Report{Results: make([]Result, 0, len(files))}
	for i, source := range files {
		if err := ctx.Err(); err != nil {
			log.Warn("batch interrupted", zap.Int("remaining", len(files)-i), zap.Error(err))
			for _, rest := range files[i:] {
				report.Results = append(report.Results, Result{
					Source: rest,
					Output: r.Converter.Output(rest),
					Status: Failed,
					Err:    err,
				})
			}
			break
		}

		res := r.convertOne(ctx, source)
		switch res.Status {
		case Converted:
			log.Info("converted", zap.String("file", res.Source), zap.String("output", res.Output))
		case Skipped:
			log.Info("skipped", zap.String("file", res.Source), zap.String("output", res.Output), zap.Error(res.Err))
		case Failed:
			log.Error("conversion failed", zap.String("file", res.Source), zap.String("output", res.Output), zap.Error(res.Err))
		}
		report.Results = append(report.Results, res)

		if r.OnProgress != nil {
			r.OnProgress(i+1, len(files))
		}
	}
	return report
}

func (r *Runner) convertOne(ctx context.Context, source string) Result {
	res := Result{Source: source, Output: r.Converter.Output(source)}

	if _, err := os.Stat(source); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			r.printf("%s not found, skipping.\n", source)
			err = fmt.Errorf("%s: %w", source, vok2.ErrNotFound)
		} else {
			r.printf("%s: %v, skipping.\n", source, err)
		}
		res.Status, res.Err = Failed, err
		return res
	}

	if _, err := export.Check(res.Output, r.Overwrite); err != nil {
		return r.classify(res, err)
	}

	if err := r.Converter.Convert(ctx, source, res.Output, r.Overwrite); err != nil {
		return r.classify(res, err)
	}

	res.Status = Converted
	return res
}

// classify turns a conversion error into a skip or a failure.
func (r *Runner) classify(res Result, err error) Result {
	res.Err = err
	if errors.Is(err, export.ErrDestinationExists) {
		r.printf("%s already exists, skipping (use -f to override).\n", res.Output)
		res.Status = Skipped
		return res
	}
	r.printf("%s: %v, skipping.\n", res.Source, err)
	res.Status = Failed
	return res
}

func (r *Runner) printf(format string, args ...interface{}) {
	if r.Out == nil {
		return
	}
	fmt.Fprintf(r.Out, format, args...)
}
