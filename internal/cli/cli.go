package cli

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
)

// Mode identifies which input-resolution mode an invocation selected.
type Mode int

const (
	// ModeNone means no inputs were requested; usage has been printed.
	ModeNone Mode = iota

	// ModeBase is the naming-convention 2x2 mode: a shared filename prefix
	// with -tl/-tr/-bl/-br suffixes.
	ModeBase

	// ModeCorners is the explicit four-corner 2x2 mode.
	ModeCorners

	// ModeGrid is the general columns x rows mode with positional tile paths.
	ModeGrid
)

// Config holds the resolved invocation: the selected mode, its inputs, and
// the logging configuration.
type Config struct {
	Mode Mode

	// Base is the shared filename prefix (ModeBase).
	Base string

	// Corner image paths (ModeCorners).
	TopLeft     string
	TopRight    string
	BottomLeft  string
	BottomRight string

	// Grid shape and row-major tile paths (ModeGrid).
	Columns int
	Rows    int
	Tiles   []string

	// Output is the composite image path. Empty in ModeBase means derive it
	// from the base name.
	Output string

	LogLevel  string
	LogFormat string
}

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string { return e.Message }

// Parse processes command-line arguments. It returns a populated Config, a
// boolean indicating the program should exit cleanly, or an ExitError.
//
// Exactly one input mode may be selected per invocation. With no mode flags
// at all, usage is printed and a clean exit requested.
func Parse(args []string, output io.Writer) (*Config, bool, error) {
	flagSet := flag.NewFlagSet("stitcher", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
stitcher - composes equally-sized images into one grid image.

Usage:
  stitcher --using BASE
  stitcher --top-left A --top-right B --bottom-left C --bottom-right D --output OUT
  stitcher --cols N --rows M --output OUT TILE...

Modes:
  Naming convention: --using foo reads foo-tl.png, foo-tr.png, foo-bl.png
  and foo-br.png and writes foo-out.png.

  Explicit corners: all four corner images plus --output are required.

  General grid: positional TILE paths in row-major order (left to right,
  top to bottom); the count must equal cols*rows.

Options:
`)
		flagSet.PrintDefaults()
	}

	usingFlag := flagSet.String("using", "", "Filename prefix for the four-corner naming convention.")
	uFlag := flagSet.String("u", "", "Filename prefix for the four-corner naming convention (shorthand).")
	tlFlag := flagSet.String("top-left", "", "Top left image path.")
	trFlag := flagSet.String("top-right", "", "Top right image path.")
	blFlag := flagSet.String("bottom-left", "", "Bottom left image path.")
	brFlag := flagSet.String("bottom-right", "", "Bottom right image path.")
	outputFlag := flagSet.String("output", "", "Output image path.")
	oFlag := flagSet.String("o", "", "Output image path (shorthand).")
	colsFlag := flagSet.Int("cols", 0, "Number of grid columns.")
	rowsFlag := flagSet.Int("rows", 0, "Number of grid rows.")
	logLevelFlag := flagSet.String("log-level", defaultLogLevel(), "Set the logging level. Options: 'debug', 'info', 'warn', 'error'. Defaults to $STITCHER_LOG.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	base := *usingFlag
	if base == "" {
		base = *uFlag
	}
	out := *outputFlag
	if out == "" {
		out = *oFlag
	}

	corners := []string{*tlFlag, *trFlag, *blFlag, *brFlag}
	cornersGiven := 0
	for _, c := range corners {
		if c != "" {
			cornersGiven++
		}
	}
	gridGiven := *colsFlag != 0 || *rowsFlag != 0 || flagSet.NArg() > 0

	cfg := &Config{
		LogLevel:  logLevel,
		LogFormat: logFormat,
		Output:    out,
	}

	switch {
	case base != "":
		if cornersGiven > 0 || gridGiven {
			return nil, false, &ExitError{Code: 2, Message: "choose one mode: --using, explicit corner images, or --cols/--rows with tile paths"}
		}
		cfg.Mode = ModeBase
		cfg.Base = base

	case cornersGiven > 0:
		if gridGiven {
			return nil, false, &ExitError{Code: 2, Message: "choose one mode: --using, explicit corner images, or --cols/--rows with tile paths"}
		}
		if cornersGiven < 4 || out == "" {
			return nil, false, &ExitError{Code: 2, Message: "either specify a common --using value or explicitly specify all four corner images and an --output filename"}
		}
		cfg.Mode = ModeCorners
		cfg.TopLeft = *tlFlag
		cfg.TopRight = *trFlag
		cfg.BottomLeft = *blFlag
		cfg.BottomRight = *brFlag

	case gridGiven:
		if *colsFlag < 1 || *rowsFlag < 1 {
			return nil, false, &ExitError{Code: 2, Message: "--cols and --rows must each be at least 1"}
		}
		if out == "" {
			return nil, false, &ExitError{Code: 2, Message: "--output is required in grid mode"}
		}
		if want := *colsFlag * *rowsFlag; flagSet.NArg() != want {
			return nil, false, &ExitError{
				Code:    2,
				Message: fmt.Sprintf("a %dx%d grid needs %d tile paths, got %d", *colsFlag, *rowsFlag, want, flagSet.NArg()),
			}
		}
		cfg.Mode = ModeGrid
		cfg.Columns = *colsFlag
		cfg.Rows = *rowsFlag
		cfg.Tiles = flagSet.Args()

	default:
		flagSet.Usage()
		return nil, true, nil
	}

	return cfg, false, nil
}

// defaultLogLevel reads the STITCHER_LOG environment variable, falling back
// to "info" when unset.
func defaultLogLevel() string {
	if lvl := os.Getenv("STITCHER_LOG"); lvl != "" {
		return lvl
	}
	return "info"
}
