package html2img

import (
	"context"
	"fmt"
	"os"
	"time"
)

// capturerConfig holds internal configuration for Capturer.
type capturerConfig struct {
	renderTimeout time.Duration
	idleCeiling   time.Duration
	scaleFactor   float64
}

// Option configures a Capturer.
type Option func(*Capturer)

// WithRenderTimeout sets how long a page may take to emit its readiness
// signal before the capture falls back to network-idle detection.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithRenderTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("html2img: WithRenderTimeout duration must be positive")
	}
	return func(c *Capturer) {
		c.cfg.renderTimeout = d
	}
}

// WithIdleCeiling sets the hard outer bound on the fallback idle wait.
// Panics if d <= 0.
func WithIdleCeiling(d time.Duration) Option {
	if d <= 0 {
		panic("html2img: WithIdleCeiling duration must be positive")
	}
	return func(c *Capturer) {
		c.cfg.idleCeiling = d
	}
}

// WithScaleFactor sets the browser device scale factor.
// Panics if f <= 0.
func WithScaleFactor(f float64) Option {
	if f <= 0 {
		panic("html2img: WithScaleFactor must be positive")
	}
	return func(c *Capturer) {
		c.cfg.scaleFactor = f
	}
}

// Request describes one capture: what to render, at what geometry, and
// optionally where to write the image.
type Request struct {
	Target      Target
	Resolution  Resolution        // zero value = 1920x1080 screen capture
	QueryParams map[string]string // merged into the target URL (optional)
	OutputPath  string            // also write the image here (optional)
}

// Result holds a completed capture.
type Result struct {
	Image      []byte
	OutputPath string // empty unless the request asked for a file
}

// Capturer renders HTML documents to image snapshots using headless Chrome.
// Create with New(), capture with Capture(), and Close() when done. A
// Capturer owns one browser instance; use CapturerPool for parallel batches.
type Capturer struct {
	cfg      capturerConfig
	renderer screenshotRenderer
}

// New creates a Capturer with default configuration.
// Use options to customize behavior (e.g., WithRenderTimeout).
func New(opts ...Option) *Capturer {
	c := &Capturer{
		cfg: capturerConfig{
			renderTimeout: DefaultRenderTimeout,
			idleCeiling:   DefaultIdleCeiling,
			scaleFactor:   DefaultScaleFactor,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	// Create renderer if not injected (e.g., by tests)
	if c.renderer == nil {
		c.renderer = newRodRenderer(c.cfg.idleCeiling)
	}

	return c
}

// Capture runs the full pipeline for one target: normalize the resolution,
// plan the viewport, resolve the target to a navigable URL, render, and
// optionally write the image to disk. The context is used for cancellation.
func (c *Capturer) Capture(ctx context.Context, req Request) (*Result, error) {
	res := req.Resolution
	if res.isZero() {
		res = DefaultResolution()
	}

	spec, err := NormalizeResolution(res)
	if err != nil {
		return nil, err
	}
	plan := PlanViewport(spec, c.cfg.scaleFactor)

	addr, cleanup, err := navigationURL(req.Target, req.QueryParams)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	img, err := c.renderer.Render(ctx, addr, plan, c.cfg.renderTimeout)
	if err != nil {
		return nil, err
	}

	result := &Result{Image: img}
	if req.OutputPath != "" {
		// #nosec G306 -- image output files are intended to be readable
		if err := os.WriteFile(req.OutputPath, img, 0o644); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrWriteImage, err)
		}
		result.OutputPath = req.OutputPath
	}
	return result, nil
}

// CaptureSync is the blocking convenience form of Capture.
func (c *Capturer) CaptureSync(req Request) (*Result, error) {
	return c.Capture(context.Background(), req)
}

// Close releases resources (headless Chrome browser).
func (c *Capturer) Close() error {
	if c.renderer != nil {
		return c.renderer.Close()
	}
	return nil
}
