// Command vok2vok converts vocabulary files of the legacy vok2 trainer
// (XML plus an optional .kk box file) into vok5 sqlite databases or
// semicolon-separated text.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/japaniel/vok2vok/pkg/config"
	"github.com/japaniel/vok2vok/pkg/export"
	"github.com/japaniel/vok2vok/pkg/pipeline"
	"github.com/japaniel/vok2vok/pkg/vok2"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

const helpText = `vok2vok - convert vok2 vocabulary files to vok5 or csv

Usage:
  vok2vok [flags] [files...]

Without files, every *.vok2 file in the current directory is converted.
Each input produces one output next to it with the same base name:
  words.vok2 (+ words.kk)  ->  words.vok5   (default)
  words.vok2               ->  words.csv    (--csv)
Existing outputs are skipped unless -f is given.

Flags:
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	flags := pflag.NewFlagSet("vok2vok", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Bool("csv", false, "write csv files instead of vok5")
	flags.BoolP("overwrite", "f", false, "overwrite existing output files")
	flags.Int("default-box", vok2.DefaultBox, "box number for every word when no .kk file exists")
	flags.BoolP("verbose", "v", false, "log every file and debug details")
	configFile := flags.String("config", "", "path to a vok2vok config file")
	flags.Usage = func() {
		fmt.Fprint(stderr, helpText)
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}

	cfg, err := config.Load(*configFile, flags)
	if err != nil {
		fmt.Fprintf(stderr, "failed load config: %v\n", err)
		return 1
	}

	logger, err := setupLogger(cfg)
	if err != nil {
		fmt.Fprintf(stderr, "failed init logger: %v\n", err)
		return 1
	}
	defer logger.Sync()

	files := flags.Args()
	if len(files) == 0 {
		files, err = filepath.Glob("*" + cfg.Extensions.Source)
		if err != nil {
			logger.Error("glob source files", zap.Error(err))
			return 1
		}
	}
	if len(files) == 0 {
		flags.Usage()
		return 2
	}

	// Interrupts stop the batch after the file in progress.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	var conv pipeline.Converter
	if cfg.CSV {
		conv = export.CSV{Ext: cfg.Extensions.CSV}
	} else {
		fmt.Fprintf(stdout, "Processing %d vok2 (and kk) files...\n", len(files))
		conv = export.Vok5{
			Ext:        cfg.Extensions.Vok5,
			BoxExt:     cfg.Extensions.Boxes,
			DefaultBox: cfg.DefaultBox,
			Logger:     logger,
		}
	}

	runner := pipeline.NewRunner(conv, cfg.Overwrite, logger)
	runner.Out = stdout
	report := runner.Run(ctx, files)

	fmt.Fprintln(stdout, report.Summary(cfg.Target()))
	return 0
}

func setupLogger(cfg *config.Config) (*zap.Logger, error) {
	var zc zap.Config
	if cfg.Env == "production" {
		zc = zap.NewProductionConfig()
	} else {
		zc = zap.NewDevelopmentConfig()
	}
	// Skips and successes are already printed to stdout; the log only
	// carries failures unless verbose output is requested.
	zc.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	if cfg.Verbose {
		zc.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return zc.Build()
}
