package html2img

import "fmt"

// ObjectFit selects how viewport content maps into a differently-sized
// print box when both pixel and physical dimensions are supplied.
type ObjectFit string

// Object-fit policies.
const (
	FitContain ObjectFit = "contain"
	FitCover   ObjectFit = "cover"
	FitFill    ObjectFit = "fill"
	FitNone    ObjectFit = "none"
)

// Default geometry values.
const (
	DefaultDPI         = 300
	DefaultPixelWidth  = 1920
	DefaultPixelHeight = 1080
)

// Resolution is the raw, user-supplied capture geometry. All fields are
// optional; the zero value of each field means "unset". Width/Height are
// viewport pixels, CmWidth/CmHeight describe an intended print size in
// centimeters, DPI converts between the two.
type Resolution struct {
	Width     int
	Height    int
	CmWidth   float64
	CmHeight  float64
	DPI       int
	ObjectFit string
}

// DefaultResolution returns the geometry used when the caller supplies no
// resolution at all: a plain 1920x1080 screen capture.
func DefaultResolution() Resolution {
	return Resolution{Width: DefaultPixelWidth, Height: DefaultPixelHeight}
}

// isZero reports whether no field was supplied.
func (r Resolution) isZero() bool {
	return r.Width == 0 && r.Height == 0 && r.CmWidth == 0 && r.CmHeight == 0 &&
		r.DPI == 0 && r.ObjectFit == ""
}

// ResolutionSpec is the validated, normalized capture geometry. Constructed
// once per capture request by NormalizeResolution and treated as immutable
// afterwards; never shared across requests.
type ResolutionSpec struct {
	PixelWidth  int
	PixelHeight int

	// Print box in centimeters. Only meaningful when HasPrintBox is true.
	CmWidth  float64
	CmHeight float64

	DPI int
	Fit ObjectFit

	// HasPrintBox is true when physical dimensions were supplied. When both
	// pixel and physical dimensions are present the pixel pair describes the
	// viewport and the physical pair the target print box.
	HasPrintBox bool
}

// NormalizeResolution validates raw geometry input and applies the
// documented defaults. It fails with ErrInvalidResolution when neither
// pixel nor physical dimensions can be determined, when a dimension pair is
// only half supplied, when any supplied numeric is non-positive, or when
// the object-fit literal is unknown.
func NormalizeResolution(r Resolution) (*ResolutionSpec, error) {
	if err := checkSuppliedNumerics(r); err != nil {
		return nil, err
	}

	hasPixel := r.Width != 0 || r.Height != 0
	hasPhysical := r.CmWidth != 0 || r.CmHeight != 0

	if hasPixel && (r.Width == 0 || r.Height == 0) {
		return nil, fmt.Errorf("%w: pixel dimensions require both width and height", ErrInvalidResolution)
	}
	if hasPhysical && (r.CmWidth == 0 || r.CmHeight == 0) {
		return nil, fmt.Errorf("%w: physical dimensions require both cm-width and cm-height", ErrInvalidResolution)
	}
	if !hasPixel && !hasPhysical {
		return nil, fmt.Errorf("%w: neither pixel nor physical dimensions supplied", ErrInvalidResolution)
	}

	fit, err := normalizeObjectFit(r.ObjectFit)
	if err != nil {
		return nil, err
	}

	dpi := r.DPI
	if dpi == 0 {
		dpi = DefaultDPI
	}

	spec := &ResolutionSpec{
		PixelWidth:  r.Width,
		PixelHeight: r.Height,
		CmWidth:     r.CmWidth,
		CmHeight:    r.CmHeight,
		DPI:         dpi,
		Fit:         fit,
		HasPrintBox: hasPhysical,
	}

	// Physical-only input: the viewport IS the print box, derived via DPI.
	if !hasPixel {
		w, err := CmToPixels(r.CmWidth, dpi)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidResolution, err)
		}
		h, err := CmToPixels(r.CmHeight, dpi)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidResolution, err)
		}
		spec.PixelWidth = w
		spec.PixelHeight = h
	}

	return spec, nil
}

// checkSuppliedNumerics rejects explicitly supplied non-positive values.
// Zero means "unset" and is handled by the presence rules, so only
// negatives are caught here.
func checkSuppliedNumerics(r Resolution) error {
	if r.Width < 0 || r.Height < 0 {
		return fmt.Errorf("%w: pixel dimensions must be positive (got %dx%d)", ErrInvalidResolution, r.Width, r.Height)
	}
	if r.CmWidth < 0 || r.CmHeight < 0 {
		return fmt.Errorf("%w: physical dimensions must be positive (got %gx%g cm)", ErrInvalidResolution, r.CmWidth, r.CmHeight)
	}
	if r.DPI < 0 {
		return fmt.Errorf("%w: dpi must be positive (got %d)", ErrInvalidResolution, r.DPI)
	}
	return nil
}

// normalizeObjectFit validates the object-fit literal against the closed
// enum, defaulting to contain when unset.
func normalizeObjectFit(s string) (ObjectFit, error) {
	switch ObjectFit(s) {
	case "":
		return FitContain, nil
	case FitContain, FitCover, FitFill, FitNone:
		return ObjectFit(s), nil
	default:
		return "", fmt.Errorf("%w: unknown object-fit %q (must be contain, cover, fill, or none)", ErrInvalidResolution, s)
	}
}
