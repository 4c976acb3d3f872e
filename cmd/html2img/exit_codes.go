package main

import (
	"errors"

	html2img "github.com/alnah/go-html2img"
	"github.com/alnah/go-html2img/internal/config"
)

// Process exit codes.
const (
	ExitSuccess     = 0
	ExitGeneral     = 1
	ExitUsage       = 2
	ExitIO          = 3
	ExitBrowser     = 4
	ExitInterrupted = 130
)

// exitCodeFor maps an error to its exit code by error kind.
func exitCodeFor(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, errNoTargets),
		errors.Is(err, html2img.ErrInvalidResolution),
		errors.Is(err, html2img.ErrInvalidUnit),
		errors.Is(err, html2img.ErrInvalidTarget):
		return ExitUsage
	case errors.Is(err, html2img.ErrBrowserConnect),
		errors.Is(err, html2img.ErrPageCreate):
		return ExitBrowser
	case errors.Is(err, html2img.ErrWriteImage),
		errors.Is(err, config.ErrConfigNotFound),
		errors.Is(err, config.ErrConfigParse),
		errors.Is(err, config.ErrEmptyConfigName):
		return ExitIO
	default:
		return ExitGeneral
	}
}
