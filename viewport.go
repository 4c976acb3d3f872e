package html2img

// DefaultScaleFactor is the device scale factor applied when the caller
// does not override it.
const DefaultScaleFactor = 1.5

// FitTransform is an optional CSS scale applied to page content so that the
// viewport maps into the print box under the requested object-fit policy.
type FitTransform struct {
	ScaleX float64
	ScaleY float64
	Policy ObjectFit
}

// Uniform reports whether the transform preserves aspect ratio.
func (f *FitTransform) Uniform() bool {
	return f.ScaleX == f.ScaleY
}

// RenderPlan is the concrete rendering plan derived from a ResolutionSpec:
// the viewport the browser lays content out into, the device scale factor,
// and an optional content-fit transform. Consumed exactly once to configure
// a page before navigation.
type RenderPlan struct {
	ViewportWidth  int
	ViewportHeight int
	ScaleFactor    float64

	// Fit is nil when no transform applies: pixel-only capture,
	// physical-only capture (the viewport is the print box), or
	// object-fit none.
	Fit *FitTransform
}

// PlanViewport computes a RenderPlan from a normalized spec. Pure and
// deterministic. The spec is assumed validated with strictly positive
// dimensions; no re-validation happens here. A non-positive scaleFactor
// selects DefaultScaleFactor.
func PlanViewport(spec *ResolutionSpec, scaleFactor float64) *RenderPlan {
	if scaleFactor <= 0 {
		scaleFactor = DefaultScaleFactor
	}

	plan := &RenderPlan{
		ViewportWidth:  spec.PixelWidth,
		ViewportHeight: spec.PixelHeight,
		ScaleFactor:    scaleFactor,
	}

	// A transform only exists in the combined case: a pixel viewport being
	// mapped into a physically-sized print box. Physical-only specs already
	// derived their viewport from the box, so the viewport IS the box.
	if !spec.HasPrintBox || spec.CmWidth == 0 {
		return plan
	}
	boxW, errW := CmToPixels(spec.CmWidth, spec.DPI)
	boxH, errH := CmToPixels(spec.CmHeight, spec.DPI)
	if errW != nil || errH != nil {
		return plan
	}
	if boxW == spec.PixelWidth && boxH == spec.PixelHeight {
		// Viewport already matches the box; nothing to fit.
		return plan
	}

	plan.Fit = fitTransform(spec.Fit, boxW, boxH, spec.PixelWidth, spec.PixelHeight)
	return plan
}

// fitTransform derives scale factors mapping a viewport into a print box
// under the given policy.
func fitTransform(policy ObjectFit, boxW, boxH, viewW, viewH int) *FitTransform {
	rx := float64(boxW) / float64(viewW)
	ry := float64(boxH) / float64(viewH)

	switch policy {
	case FitContain:
		s := min(rx, ry)
		return &FitTransform{ScaleX: s, ScaleY: s, Policy: FitContain}
	case FitCover:
		s := max(rx, ry)
		return &FitTransform{ScaleX: s, ScaleY: s, Policy: FitCover}
	case FitFill:
		return &FitTransform{ScaleX: rx, ScaleY: ry, Policy: FitFill}
	default:
		// FitNone: the box size is informational only.
		return nil
	}
}
