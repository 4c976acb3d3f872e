package main

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	html2img "github.com/alnah/go-html2img"
	"github.com/alnah/go-html2img/internal/config"
)

var errNoTargets = errors.New("no target specified")

// runCapture executes the capture command: load configuration, build one
// request per positional target, run them through a shared capturer pool,
// and report the outcomes.
func runCapture(ctx context.Context, targets []string, flags *captureFlags, deps *Dependencies) error {
	if len(targets) == 0 {
		return fmt.Errorf("%w: pass a URL, an HTML file, or raw markup", errNoTargets)
	}

	cfg := config.DefaultConfig()
	if flags.configPath != "" {
		loaded, err := config.LoadConfig(flags.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	mergeFlags(cfg, flags)

	reqs, err := buildRequests(targets, flags.output, cfg)
	if err != nil {
		return err
	}

	pool := html2img.NewCapturerPool(html2img.ResolvePoolSize(cfg.Batch.Workers), capturerOptions(cfg)...)
	defer func() { _ = pool.Close() }()

	start := deps.Now()
	outcomes := html2img.CaptureBatch(ctx, pool, reqs)
	reportOutcomes(outcomes, flags, deps)

	if ctx.Err() != nil {
		return html2img.ErrCancelled
	}

	if len(outcomes) == 1 {
		if flags.verbose && outcomes[0].Err == nil {
			fmt.Fprintf(deps.Stderr, "done in %s\n", deps.Now().Sub(start).Round(time.Millisecond))
		}
		return outcomes[0].Err
	}

	failed := 0
	for _, o := range outcomes {
		if o.Failed() {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d captures failed", failed, len(outcomes))
	}
	if flags.verbose {
		fmt.Fprintf(deps.Stderr, "%d captures done in %s\n", len(outcomes), deps.Now().Sub(start).Round(time.Millisecond))
	}
	return nil
}

// mergeFlags overlays explicitly set flags onto the loaded configuration.
// Flags win; zero-valued flags were never passed and leave the file values
// alone.
func mergeFlags(cfg *config.Config, flags *captureFlags) {
	if flags.width != 0 {
		cfg.Resolution.Width = flags.width
	}
	if flags.height != 0 {
		cfg.Resolution.Height = flags.height
	}
	if flags.cmWidth != 0 {
		cfg.Resolution.CmWidth = flags.cmWidth
	}
	if flags.cmHeight != 0 {
		cfg.Resolution.CmHeight = flags.cmHeight
	}
	if flags.dpi != 0 {
		cfg.Resolution.DPI = flags.dpi
	}
	if flags.objectFit != "" {
		cfg.Resolution.ObjectFit = flags.objectFit
	}
	if flags.scale != 0 {
		cfg.Render.Scale = flags.scale
	}
	if flags.renderTimeout != 0 {
		cfg.Render.TimeoutSeconds = flags.renderTimeout
	}
	if flags.workers != 0 {
		cfg.Batch.Workers = flags.workers
	}
}

// capturerOptions translates the merged configuration into pool-wide
// capturer options. Unset values defer to the library defaults.
func capturerOptions(cfg *config.Config) []html2img.Option {
	var opts []html2img.Option
	if cfg.Render.Scale > 0 {
		opts = append(opts, html2img.WithScaleFactor(cfg.Render.Scale))
	}
	if cfg.Render.TimeoutSeconds > 0 {
		opts = append(opts, html2img.WithRenderTimeout(time.Duration(cfg.Render.TimeoutSeconds*float64(time.Second))))
	}
	return opts
}

// buildRequests resolves each positional argument into a capture request
// with an output path. With a single target, --output names the file;
// with several it names the directory the derived file names land in.
func buildRequests(targets []string, output string, cfg *config.Config) ([]html2img.Request, error) {
	outDir := cfg.Output.DefaultDir
	outFile := ""
	switch {
	case output == "":
	case len(targets) > 1 || isDirectory(output):
		outDir = output
	default:
		outFile = output
	}

	if outDir != "" {
		if err := os.MkdirAll(outDir, 0o750); err != nil {
			return nil, fmt.Errorf("creating output directory: %w", err)
		}
	}

	res := html2img.Resolution{
		Width:     cfg.Resolution.Width,
		Height:    cfg.Resolution.Height,
		CmWidth:   cfg.Resolution.CmWidth,
		CmHeight:  cfg.Resolution.CmHeight,
		DPI:       cfg.Resolution.DPI,
		ObjectFit: cfg.Resolution.ObjectFit,
	}

	reqs := make([]html2img.Request, 0, len(targets))
	for i, arg := range targets {
		target := html2img.ResolveTarget(arg)
		path := outFile
		if path == "" {
			path = filepath.Join(outDir, outputName(target, i))
		}
		reqs = append(reqs, html2img.Request{
			Target:     target,
			Resolution: res,
			OutputPath: path,
		})
	}
	return reqs, nil
}

// outputName derives a PNG file name from the target. File targets keep
// their base name, URL targets use a sanitized host and path, raw markup
// gets a numbered placeholder.
func outputName(t html2img.Target, index int) string {
	switch {
	case t.Path != "":
		base := filepath.Base(t.Path)
		return strings.TrimSuffix(base, filepath.Ext(base)) + ".png"
	case t.URL != "":
		return sanitizeURLName(t.URL) + ".png"
	default:
		return fmt.Sprintf("snapshot-%d.png", index+1)
	}
}

// sanitizeURLName flattens a URL's host and path into a file-name-safe
// slug, falling back to "snapshot" for unparseable input.
func sanitizeURLName(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return "snapshot"
	}
	name := u.Host + u.Path
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-':
			b.WriteRune(r)
		default:
			b.WriteRune('-')
		}
	}
	cleaned := strings.Trim(b.String(), "-.")
	if cleaned == "" {
		return "snapshot"
	}
	return cleaned
}

// reportOutcomes prints one line per target: failures always go to stderr,
// successes to stdout unless --quiet.
func reportOutcomes(outcomes []html2img.Outcome, flags *captureFlags, deps *Dependencies) {
	for _, o := range outcomes {
		switch {
		case o.Failed():
			fmt.Fprintf(deps.Stderr, "failed: %s: %v\n", o.Target, o.Err)
		case o.Err != nil:
			// Cancelled: stay silent, the run-level message covers it.
		case !flags.quiet:
			if flags.verbose {
				fmt.Fprintf(deps.Stdout, "wrote %s (%d bytes, %s)\n", o.OutputPath, len(o.Image), o.Duration.Round(time.Millisecond))
			} else {
				fmt.Fprintf(deps.Stdout, "wrote %s\n", o.OutputPath)
			}
		}
	}
}

// isDirectory reports whether path exists and is a directory.
func isDirectory(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
