package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: html2img <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  capture    Capture HTML pages as PNG images")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'html2img help <command>' for details on a specific command.")
}

// printCaptureUsage prints usage for the capture command.
func printCaptureUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: html2img capture <target>... [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Capture HTML pages as PNG images using headless Chrome.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  target    URL (http/https), HTML file path, or raw markup.")
	fmt.Fprintln(w, "            Multiple targets are captured in parallel.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>         Output file (single target) or directory")
	fmt.Fprintln(w, "  -c, --config <name>         Config file name or path")
	fmt.Fprintln(w, "      --workers <n>           Parallel workers (0 = auto)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Geometry:")
	fmt.Fprintln(w, "  -w, --width <px>            Viewport width in pixels (default 1920)")
	fmt.Fprintln(w, "  -h, --height <px>           Viewport height in pixels (default 1080)")
	fmt.Fprintln(w, "      --cm-width <cm>         Physical width in centimeters")
	fmt.Fprintln(w, "      --cm-height <cm>        Physical height in centimeters")
	fmt.Fprintln(w, "      --dpi <n>               Dots per inch for cm sizing (default 300)")
	fmt.Fprintln(w, "      --object-fit <s>        contain, cover, fill, none (default contain)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Rendering:")
	fmt.Fprintln(w, "      --scale <f>             Device scale factor (default 1.5)")
	fmt.Fprintln(w, "      --render-timeout <s>    Seconds to wait for the render signal (default 10)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet                 Only show errors")
	fmt.Fprintln(w, "  -v, --verbose               Show detailed timing")
}

// runHelp prints help for a specific command.
func runHelp(args []string, deps *Dependencies) {
	if len(args) == 0 {
		printUsage(deps.Stdout)
		return
	}

	switch args[0] {
	case "capture":
		printCaptureUsage(deps.Stdout)
	case "version":
		fmt.Fprintln(deps.Stdout, "Usage: html2img version")
		fmt.Fprintln(deps.Stdout)
		fmt.Fprintln(deps.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(deps.Stdout, "Usage: html2img help [command]")
		fmt.Fprintln(deps.Stdout)
		fmt.Fprintln(deps.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(deps.Stderr, "Unknown command: %s\n", args[0])
		printUsage(deps.Stderr)
	}
}
