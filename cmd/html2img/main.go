package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"go.uber.org/automaxprocs/maxprocs"

	html2img "github.com/alnah/go-html2img"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	deps := DefaultDeps()
	os.Exit(run(os.Args[1:], deps))
}

// run dispatches the command and returns the process exit code.
func run(args []string, deps *Dependencies) int {
	if len(args) == 0 {
		printUsage(deps.Stderr)
		return ExitUsage
	}

	switch args[0] {
	case "capture":
		return runCaptureCommand(args[1:], deps)
	case "version":
		fmt.Fprintf(deps.Stdout, "html2img %s\n", Version)
		return ExitSuccess
	case "help":
		runHelp(args[1:], deps)
		return ExitSuccess
	default:
		fmt.Fprintf(deps.Stderr, "Unknown command: %s\n", args[0])
		printUsage(deps.Stderr)
		return ExitUsage
	}
}

// runCaptureCommand parses flags, sets up the runtime, and executes capture.
func runCaptureCommand(args []string, deps *Dependencies) int {
	flags, targets, err := parseCaptureFlags(args)
	if err != nil {
		fmt.Fprintln(deps.Stderr, err)
		return ExitUsage
	}

	// Configure GOMAXPROCS with conditional logging
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	if flags.verbose {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(deps.Stderr, format+"\n", args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	ctx, stop := notifyContext(context.Background())
	defer stop()

	err = runCapture(ctx, targets, flags, deps)
	if err == nil {
		return ExitSuccess
	}

	// An interrupted run is reported but carries its own exit code.
	if errors.Is(err, html2img.ErrCancelled) {
		fmt.Fprintln(deps.Stderr, "capture interrupted")
		return ExitInterrupted
	}

	fmt.Fprintln(deps.Stderr, err)
	return exitCodeFor(err)
}
