// Package html2img renders image snapshots of HTML documents using headless
// Chrome.
//
// # Quick Start
//
// Create a capturer, capture a target, and close when done:
//
//	cap := html2img.New()
//	defer cap.Close()
//
//	result, err := cap.Capture(ctx, html2img.Request{
//	    Target: html2img.URLTarget("https://example.com"),
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("snapshot.png", result.Image, 0644)
//
// A target can be a URL, a path to an HTML file, or a raw HTML string;
// ResolveTarget disambiguates bare strings the same way the CLI does.
//
// # Capture Pipeline
//
// Each capture follows these stages:
//
//  1. Resolution normalization (pixel and/or physical dimensions, DPI)
//  2. Viewport planning (viewport size, device scale factor, fit transform)
//  3. Navigation in headless Chrome (go-rod)
//  4. Render readiness (RENDER_COMPLETE console signal, network-idle fallback)
//  5. PNG screenshot
//
// # Resolution
//
// Geometry accepts screen pixels, a physical print size in centimeters with
// a DPI, or both at once:
//
//	// Plain screen capture.
//	Resolution{Width: 1920, Height: 1080}
//
//	// A4 at 300 DPI; the viewport is derived from the physical size.
//	Resolution{CmWidth: 21, CmHeight: 29.7, DPI: 300}
//
//	// Combined: render at 1920x1080, fit content into the A4 print box.
//	Resolution{Width: 1920, Height: 1080, CmWidth: 21, CmHeight: 29.7, ObjectFit: "cover"}
//
// # Render Readiness
//
// A page that renders asynchronously can declare its own completion point
// by logging the literal RENDER_COMPLETE to the console. If the signal does
// not arrive within the render timeout (default 10s), the capture falls
// back to waiting for network idleness, capped by a hard ceiling (default
// 30s).
//
// # Parallel Processing
//
// For batch capture, use CapturerPool to manage multiple browser instances:
//
//	pool := html2img.NewCapturerPool(4)
//	defer pool.Close()
//
//	outcomes := html2img.CaptureBatch(ctx, pool, requests)
//
// Outcomes preserve request order; one job's failure never aborts its
// siblings.
//
// # Browser Requirements
//
// Rendering requires Chrome/Chromium. The go-rod library automatically
// downloads a managed Chromium instance on first run (~/.cache/rod/browser/).
//
// For containers and CI environments, set ROD_NO_SANDBOX=1 to disable the
// Chrome sandbox. Use ROD_BROWSER_BIN to specify a custom Chrome binary.
package html2img
