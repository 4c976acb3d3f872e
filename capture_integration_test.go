//go:build integration

package html2img

import (
	"bytes"
	"context"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
	"time"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func assertValidPNG(t *testing.T, data []byte) {
	t.Helper()

	if !bytes.HasPrefix(data, pngMagic) {
		t.Errorf("data does not have PNG magic bytes, got prefix: %q", data[:min(8, len(data))])
	}
	if len(data) < 100 {
		t.Errorf("PNG data suspiciously small: %d bytes", len(data))
	}
}

// pngDimensions reads width and height from the IHDR chunk.
func pngDimensions(t *testing.T, data []byte) (int, int) {
	t.Helper()

	if len(data) < 24 {
		t.Fatalf("PNG too short for IHDR: %d bytes", len(data))
	}
	w := binary.BigEndian.Uint32(data[16:20])
	h := binary.BigEndian.Uint32(data[20:24])
	return int(w), int(h)
}

// TestCapture_Integration drives a real headless Chrome instance.
// Rod automatically downloads Chromium on first run if not found.
func TestCapture_Integration(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
	defer cancel()

	t.Run("raw HTML with render signal", func(t *testing.T) {
		t.Parallel()

		html := HTMLDocument(
			`<h1>Hello</h1><script>console.log("RENDER_COMPLETE")</script>`,
			"", "body { background: white; }")

		c := acquireCapturer(t)
		result, err := c.Capture(ctx, Request{
			Target:     HTMLTarget(html),
			Resolution: Resolution{Width: 800, Height: 600},
		})
		if err != nil {
			t.Fatalf("Capture() error = %v", err)
		}

		assertValidPNG(t, result.Image)
		w, h := pngDimensions(t, result.Image)
		// Default scale factor 1.5 multiplies the device pixels.
		if w != 1200 || h != 900 {
			t.Errorf("image = %dx%d, want 1200x900", w, h)
		}
	})

	t.Run("page without signal falls back to network idle", func(t *testing.T) {
		t.Parallel()

		// Short signal timeout so the fallback engages quickly.
		short := New(WithRenderTimeout(time.Second))
		defer short.Close()

		result, err := short.Capture(ctx, Request{
			Target:     HTMLTarget(HTMLDocument("<p>no signal here</p>", "", "")),
			Resolution: Resolution{Width: 400, Height: 300},
		})
		if err != nil {
			t.Fatalf("Capture() error = %v", err)
		}
		assertValidPNG(t, result.Image)
	})

	t.Run("writes output file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "out.png")
		c := acquireCapturer(t)
		result, err := c.Capture(ctx, Request{
			Target:     HTMLTarget(HTMLDocument(`<h1>file</h1><script>console.log("RENDER_COMPLETE")</script>`, "", "")),
			Resolution: Resolution{Width: 320, Height: 240},
			OutputPath: path,
		})
		if err != nil {
			t.Fatalf("Capture() error = %v", err)
		}
		if result.OutputPath != path {
			t.Errorf("OutputPath = %q, want %q", result.OutputPath, path)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("reading output file: %v", err)
		}
		assertValidPNG(t, data)
	})

	t.Run("physical dimensions derive viewport", func(t *testing.T) {
		t.Parallel()

		c := acquireCapturer(t)
		result, err := c.Capture(ctx, Request{
			Target:     HTMLTarget(HTMLDocument(`<h1>a6</h1><script>console.log("RENDER_COMPLETE")</script>`, "", "")),
			Resolution: Resolution{CmWidth: 10.5, CmHeight: 14.8, DPI: 96},
		})
		if err != nil {
			t.Fatalf("Capture() error = %v", err)
		}
		assertValidPNG(t, result.Image)

		// 10.5cm at 96dpi is 397px, times the 1.5 scale factor.
		w, _ := pngDimensions(t, result.Image)
		if w != 595 && w != 596 {
			t.Errorf("width = %d, want ~595", w)
		}
	})
}

// TestCaptureBatch_Integration exercises the pool with parallel jobs.
func TestCaptureBatch_Integration(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
	defer cancel()

	reqs := make([]Request, 3)
	for i := range reqs {
		reqs[i] = Request{
			Target:     HTMLTarget(HTMLDocument(`<h1>batch</h1><script>console.log("RENDER_COMPLETE")</script>`, "", "")),
			Resolution: Resolution{Width: 200, Height: 200},
		}
	}

	outcomes := CaptureBatch(ctx, testPool, reqs)
	if len(outcomes) != len(reqs) {
		t.Fatalf("got %d outcomes, want %d", len(outcomes), len(reqs))
	}
	for i, o := range outcomes {
		if o.Err != nil {
			t.Errorf("job %d failed: %v", i, o.Err)
			continue
		}
		assertValidPNG(t, o.Image)
	}
	if BatchFailed(outcomes) {
		t.Error("BatchFailed() = true, want false")
	}
}
