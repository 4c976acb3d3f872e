package html2img

import (
	"math"
	"testing"
)

func mustNormalize(t *testing.T, r Resolution) *ResolutionSpec {
	t.Helper()
	spec, err := NormalizeResolution(r)
	if err != nil {
		t.Fatalf("NormalizeResolution(%+v): %v", r, err)
	}
	return spec
}

func TestPlanViewport_PixelOnly(t *testing.T) {
	t.Parallel()

	spec := mustNormalize(t, Resolution{Width: 1920, Height: 1080})
	plan := PlanViewport(spec, 0)

	if plan.ViewportWidth != 1920 || plan.ViewportHeight != 1080 {
		t.Errorf("viewport = %dx%d, want 1920x1080", plan.ViewportWidth, plan.ViewportHeight)
	}
	if plan.ScaleFactor != DefaultScaleFactor {
		t.Errorf("scale factor = %g, want default %g", plan.ScaleFactor, DefaultScaleFactor)
	}
	if plan.Fit != nil {
		t.Errorf("pixel-only plan should have no fit transform, got %+v", plan.Fit)
	}
}

func TestPlanViewport_PhysicalOnly(t *testing.T) {
	t.Parallel()

	spec := mustNormalize(t, Resolution{CmWidth: 21, CmHeight: 29.7, DPI: 300})
	plan := PlanViewport(spec, 2.0)

	if plan.ViewportWidth != 2480 || plan.ViewportHeight != 3508 {
		t.Errorf("viewport = %dx%d, want 2480x3508", plan.ViewportWidth, plan.ViewportHeight)
	}
	if plan.ScaleFactor != 2.0 {
		t.Errorf("scale factor = %g, want 2.0", plan.ScaleFactor)
	}
	// The viewport is the print box; no transform applies.
	if plan.Fit != nil {
		t.Errorf("physical-only plan should have no fit transform, got %+v", plan.Fit)
	}
}

func TestPlanViewport_Combined(t *testing.T) {
	t.Parallel()

	const (
		viewW = 1920
		viewH = 1080
		boxW  = 2480 // 21cm @ 300dpi
		boxH  = 3508 // 29.7cm @ 300dpi
	)

	base := Resolution{
		Width: viewW, Height: viewH,
		CmWidth: 21, CmHeight: 29.7,
		DPI: 300,
	}

	rx := float64(boxW) / float64(viewW)
	ry := float64(boxH) / float64(viewH)

	tests := []struct {
		name    string
		fit     string
		wantSX  float64
		wantSY  float64
		wantNil bool
	}{
		{
			name:   "contain uses min ratio uniformly",
			fit:    "contain",
			wantSX: math.Min(rx, ry),
			wantSY: math.Min(rx, ry),
		},
		{
			name:   "cover uses max ratio uniformly",
			fit:    "cover",
			wantSX: math.Max(rx, ry),
			wantSY: math.Max(rx, ry),
		},
		{
			name:   "fill scales axes independently",
			fit:    "fill",
			wantSX: rx,
			wantSY: ry,
		},
		{
			name:    "none applies no transform",
			fit:     "none",
			wantNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := base
			r.ObjectFit = tt.fit
			plan := PlanViewport(mustNormalize(t, r), 1.5)

			if plan.ViewportWidth != viewW || plan.ViewportHeight != viewH {
				t.Errorf("viewport = %dx%d, want %dx%d", plan.ViewportWidth, plan.ViewportHeight, viewW, viewH)
			}
			if tt.wantNil {
				if plan.Fit != nil {
					t.Fatalf("expected no fit transform, got %+v", plan.Fit)
				}
				return
			}
			if plan.Fit == nil {
				t.Fatal("expected fit transform, got nil")
			}
			if plan.Fit.ScaleX != tt.wantSX || plan.Fit.ScaleY != tt.wantSY {
				t.Errorf("scale = (%g, %g), want (%g, %g)", plan.Fit.ScaleX, plan.Fit.ScaleY, tt.wantSX, tt.wantSY)
			}
			if tt.fit == "fill" {
				if plan.Fit.Uniform() {
					t.Error("fill transform for a distorting box should not be uniform")
				}
			} else if !plan.Fit.Uniform() {
				t.Errorf("%s transform should be uniform", tt.fit)
			}
		})
	}
}

func TestPlanViewport_BoxMatchesViewport(t *testing.T) {
	t.Parallel()

	// 2.54cm @ 100dpi is exactly 100px; a 100x100 viewport needs no fitting.
	spec := mustNormalize(t, Resolution{
		Width: 100, Height: 100,
		CmWidth: 2.54, CmHeight: 2.54,
		DPI: 100,
	})
	plan := PlanViewport(spec, 1.0)
	if plan.Fit != nil {
		t.Errorf("matching box and viewport should yield no transform, got %+v", plan.Fit)
	}
}

func TestPlanViewport_Deterministic(t *testing.T) {
	t.Parallel()

	spec := mustNormalize(t, Resolution{
		Width: 1280, Height: 720,
		CmWidth: 10, CmHeight: 15,
		ObjectFit: "cover",
	})

	a := PlanViewport(spec, 1.5)
	b := PlanViewport(spec, 1.5)
	if *a.Fit != *b.Fit || a.ViewportWidth != b.ViewportWidth || a.ScaleFactor != b.ScaleFactor {
		t.Errorf("identical inputs produced different plans: %+v vs %+v", a, b)
	}
}
