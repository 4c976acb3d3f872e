package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
)

// captureFlags holds the parsed command-line options for the capture command.
// Numeric zero values mean "not set" so configuration-file values and library
// defaults are not clobbered by flags the user never passed.
type captureFlags struct {
	output        string
	width         int
	height        int
	cmWidth       float64
	cmHeight      float64
	dpi           int
	objectFit     string
	scale         float64
	renderTimeout float64
	workers       int
	configPath    string
	quiet         bool
	verbose       bool
}

// parseCaptureFlags parses capture command arguments and returns the flags
// along with the positional target arguments.
func parseCaptureFlags(args []string) (*captureFlags, []string, error) {
	flags := &captureFlags{}

	fs := pflag.NewFlagSet("capture", pflag.ContinueOnError)
	fs.SortFlags = false

	fs.StringVarP(&flags.output, "output", "o", "", "output file (single target) or directory (multiple targets)")
	fs.IntVarP(&flags.width, "width", "w", 0, "viewport width in pixels (default 1920)")
	fs.IntVarP(&flags.height, "height", "h", 0, "viewport height in pixels (default 1080)")
	fs.Float64Var(&flags.cmWidth, "cm-width", 0, "physical width in centimeters")
	fs.Float64Var(&flags.cmHeight, "cm-height", 0, "physical height in centimeters")
	fs.IntVar(&flags.dpi, "dpi", 0, "dots per inch for physical dimensions (default 300)")
	fs.StringVar(&flags.objectFit, "object-fit", "", "content fit: contain, cover, fill, or none (default contain)")
	fs.Float64Var(&flags.scale, "scale", 0, "device scale factor (default 1.5)")
	fs.Float64Var(&flags.renderTimeout, "render-timeout", 0, "seconds to wait for the render signal (default 10)")
	fs.IntVar(&flags.workers, "workers", 0, "number of parallel browser workers (default: CPU-based)")
	fs.StringVarP(&flags.configPath, "config", "c", "", "configuration file path or name")
	fs.BoolVarP(&flags.quiet, "quiet", "q", false, "suppress per-target output")
	fs.BoolVarP(&flags.verbose, "verbose", "v", false, "report capture durations")

	fs.Usage = func() { printCaptureUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	if flags.workers < 0 {
		return nil, nil, fmt.Errorf("workers must not be negative, got %d", flags.workers)
	}

	return flags, fs.Args(), nil
}
