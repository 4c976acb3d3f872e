package html2img

import "errors"

// Sentinel errors for library operations.
var (
	// Validation errors, surfaced before any browser interaction.
	ErrInvalidResolution = errors.New("invalid resolution")
	ErrInvalidUnit       = errors.New("invalid unit conversion input")
	ErrInvalidTarget     = errors.New("invalid capture target")

	// Browser lifecycle errors.
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")

	// Per-capture runtime errors.
	ErrNavigation    = errors.New("failed to navigate to target")
	ErrRenderTimeout = errors.New("render readiness not reached within hard ceiling")
	ErrScreenshot    = errors.New("screenshot capture failed")
	ErrWriteImage    = errors.New("failed to write image file")

	// ErrCancelled marks a job abandoned by external cancellation.
	// Distinct from capture failures for exit-code purposes.
	ErrCancelled = errors.New("capture cancelled")
)
