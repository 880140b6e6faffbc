package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"cohortsplit/internal/config"
	"cohortsplit/internal/ingest"
	"cohortsplit/internal/pipeline"
)

const (
	exitOK = iota
	exitUsage
	exitNotFound
	exitDecode
	exitUnexpected
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return exitUnexpected
	}

	fs := flag.NewFlagSet("cohortsplit", flag.ContinueOnError)
	output := fs.String("output", cfg.OutputDir, "directory to write the three output tables")
	encName := fs.String("encoding", cfg.Encoding, "input/output file encoding")
	year := fs.Int("year", cfg.CohortYear, "override cohort year in student identifiers (0 = derive from filename)")
	workbook := fs.Bool("xlsx", false, "also write a single .xlsx workbook")
	verbose := fs.Bool("verbose", false, "enable debug logging")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: cohortsplit [flags] [input.csv|input.xlsx]")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if fs.NArg() > 1 {
		fs.Usage()
		return exitUsage
	}
	if fs.NArg() == 1 {
		cfg.InputPath = fs.Arg(0)
	}
	cfg.OutputDir = *output
	cfg.Encoding = *encName
	cfg.CohortYear = *year
	cfg.WriteWorkbook = *workbook

	logger, err := newLogger(*verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return exitUnexpected
	}
	defer func() { _ = logger.Sync() }()

	if _, err := pipeline.Run(cfg, logger); err != nil {
		switch {
		case errors.Is(err, ingest.ErrNotFound):
			logger.Error("input file not found", zap.Error(err))
			return exitNotFound
		case errors.Is(err, ingest.ErrDecode):
			logger.Error("encoding error reading input", zap.Error(err))
			return exitDecode
		default:
			logger.Error("unexpected error", zap.Error(err))
			return exitUnexpected
		}
	}
	return exitOK
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.OutputPaths = []string{"stderr"}
	cfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05")
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return cfg.Build()
}
