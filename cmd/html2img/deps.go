package main

import (
	"io"
	"os"
	"time"
)

// Dependencies carries the process-level collaborators so commands can be
// exercised in tests without touching real streams or the wall clock.
type Dependencies struct {
	Now    func() time.Time
	Stdout io.Writer
	Stderr io.Writer
}

func DefaultDeps() *Dependencies {
	return &Dependencies{
		Now:    time.Now,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}
