package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/imageworks/stitcher/internal/cli"
	"github.com/imageworks/stitcher/internal/pipeline"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("stitcher %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		}
	}

	if err := run(os.Stdout, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error
// handling.
func run(out io.Writer, args []string) error {
	cfg, shouldExit, err := cli.Parse(args, out)
	if err != nil || shouldExit {
		return err
	}

	logger := newLogger(cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(logger)

	p := pipeline.New(logger)
	switch cfg.Mode {
	case cli.ModeBase:
		return p.StitchBase(cfg.Base, cfg.Output)
	case cli.ModeCorners:
		return p.StitchCorners(cfg.TopLeft, cfg.TopRight, cfg.BottomLeft, cfg.BottomRight, cfg.Output)
	case cli.ModeGrid:
		return p.StitchGrid(cfg.Tiles, cfg.Columns, cfg.Rows, cfg.Output)
	}
	return nil
}

// newLogger builds the slog logger for one invocation. Logs go to stderr;
// stdout carries nothing but usage output.
func newLogger(level, format string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: lvl}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}
