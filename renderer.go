package html2img

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// screenshotRenderer abstracts page rendering to allow testing without a
// browser.
type screenshotRenderer interface {
	Render(ctx context.Context, url string, plan *RenderPlan, timeout time.Duration) ([]byte, error)
	Close() error
}

// Compile-time interface check.
var _ screenshotRenderer = (*rodRenderer)(nil)

// rodRenderer drives headless Chrome via go-rod.
// Rod automatically downloads Chromium on first run if not found.
type rodRenderer struct {
	browser     *rod.Browser
	idleCeiling time.Duration
}

func newRodRenderer(idleCeiling time.Duration) *rodRenderer {
	return &rodRenderer{idleCeiling: idleCeiling}
}

// ensureBrowser lazily connects to the browser.
func (r *rodRenderer) ensureBrowser() error {
	if r.browser != nil {
		return nil
	}

	l := launcher.New()

	// Use pre-installed browser if specified (Docker/containerized environments)
	if bin := os.Getenv("ROD_BROWSER_BIN"); bin != "" {
		l = l.Bin(bin)
	}

	// NoSandbox required for CI and containerized environments
	if os.Getenv("CI") == "true" || os.Getenv("ROD_BROWSER_BIN") != "" {
		l = l.NoSandbox(true)
	}

	u, err := l.Launch()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}

	r.browser = rod.New().ControlURL(u)
	if err := r.browser.Connect(); err != nil {
		r.browser = nil
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}
	return nil
}

// Close releases browser resources.
func (r *rodRenderer) Close() error {
	if r.browser != nil {
		err := r.browser.Close()
		r.browser = nil
		return err
	}
	return nil
}

// Render configures a page from the plan, navigates to url, waits for
// readiness, and captures a PNG screenshot. The page is closed on all exit
// paths.
func (r *rodRenderer) Render(ctx context.Context, url string, plan *RenderPlan, timeout time.Duration) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := r.ensureBrowser(); err != nil {
		return nil, err
	}

	page, err := r.browser.Page(proto.TargetCreateTarget{URL: "about:blank"})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageCreate, err)
	}
	defer page.Close()
	page = page.Context(ctx)

	// The viewport must be in place before navigation so the page lays out
	// at the planned size.
	err = page.SetViewport(&proto.EmulationSetDeviceMetricsOverride{
		Width:             plan.ViewportWidth,
		Height:            plan.ViewportHeight,
		DeviceScaleFactor: plan.ScaleFactor,
		Mobile:            false,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: setting viewport: %v", ErrPageCreate, err)
	}

	// Subscribe to the console channel before navigating so an early
	// RENDER_COMPLETE is not missed.
	signal := make(chan struct{}, 1)
	waitMarker := page.EachEvent(func(e *proto.RuntimeConsoleAPICalled) bool {
		for _, arg := range e.Args {
			if arg.Value.Str() == renderCompleteMarker {
				select {
				case signal <- struct{}{}:
				default:
				}
				return true
			}
		}
		return false
	})
	go waitMarker()

	if err := page.Navigate(url); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNavigation, err)
	}

	gate := newRenderGate(timeout, r.idleCeiling)
	if _, err := gate.wait(ctx, signal, r.waitIdleFunc(page)); err != nil {
		return nil, err
	}

	if err := applyFitTransform(page, plan.Fit); err != nil {
		return nil, err
	}

	img, err := page.Screenshot(false, &proto.PageCaptureScreenshot{
		Format: proto.PageCaptureScreenshotFormatPng,
	})
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("%w: %v", ErrScreenshot, err)
	}
	return img, nil
}

// waitIdleFunc adapts rod's request-idle wait to the gate's contract: it
// returns nil once no network activity is in flight for the quiescence
// window, or the context error if cancelled first.
func (r *rodRenderer) waitIdleFunc(page *rod.Page) func(context.Context) error {
	return func(idleCtx context.Context) error {
		p := page.Context(idleCtx)
		wait := p.WaitRequestIdle(idleQuiescence, nil, nil, nil)
		wait()
		return idleCtx.Err()
	}
}

// applyFitTransform scales page content so the viewport maps into the print
// box. No-op when the plan carries no transform.
func applyFitTransform(page *rod.Page, fit *FitTransform) error {
	if fit == nil {
		return nil
	}
	_, err := page.Eval(`(sx, sy) => {
		document.documentElement.style.transformOrigin = "0 0";
		document.documentElement.style.transform = "scale(" + sx + ", " + sy + ")";
	}`, fit.ScaleX, fit.ScaleY)
	if err != nil {
		return fmt.Errorf("%w: applying fit transform: %v", ErrScreenshot, err)
	}
	return nil
}
