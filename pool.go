package html2img

import (
	"errors"
	"runtime"
	"sync"
)

// Pool sizing constants.
const (
	// MinPoolSize ensures at least one worker is available.
	MinPoolSize = 1

	// MaxPoolSize caps browser instances to limit memory (~200MB each).
	MaxPoolSize = 8

	// cpuDivisor leaves headroom for Chrome child processes.
	cpuDivisor = 2
)

// CapturerPool manages a pool of Capturer instances for parallel batches.
// Each capturer has its own browser instance, enabling true parallelism.
// Capturers are created lazily on first acquire to avoid startup delay.
//
// The pool is the single mutual-exclusion point for browser sessions: batch
// jobs only ever reach a browser through Acquire/Release, so the
// concurrency ceiling cannot be oversubscribed.
type CapturerPool struct {
	size      int
	opts      []Option
	capturers []*Capturer
	sem       chan *Capturer
	mu        sync.Mutex
	created   int
	closed    bool
}

// NewCapturerPool creates a pool with capacity for n Capturer instances,
// each configured with opts. Capturers are created lazily when acquired.
func NewCapturerPool(n int, opts ...Option) *CapturerPool {
	if n < 1 {
		n = 1
	}

	return &CapturerPool{
		size:      n,
		opts:      opts,
		capturers: make([]*Capturer, 0, n),
		sem:       make(chan *Capturer, n),
	}
}

// Acquire gets a capturer from the pool, creating one if needed.
// Blocks if all capturers are in use.
func (p *CapturerPool) Acquire() *Capturer {
	// Try to get an existing capturer (non-blocking)
	select {
	case c := <-p.sem:
		return c
	default:
	}

	// Check if we can create a new capturer
	p.mu.Lock()
	if p.created < p.size {
		p.created++
		p.mu.Unlock()

		// Create new capturer outside the lock
		c := New(p.opts...)

		p.mu.Lock()
		p.capturers = append(p.capturers, c)
		p.mu.Unlock()

		return c
	}
	p.mu.Unlock()

	// All capturers created, wait for one to be released
	return <-p.sem
}

// Release returns a capturer to the pool.
// The lock is released before sending to avoid deadlock when channel is full.
func (p *CapturerPool) Release(c *Capturer) {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.mu.Unlock()

	p.sem <- c
}

// Close releases all browser resources.
// Returns an aggregated error if multiple capturers fail to close.
func (p *CapturerPool) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	close(p.sem)
	capturers := p.capturers
	p.mu.Unlock()

	var errs []error
	for _, c := range capturers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Size returns the pool capacity.
func (p *CapturerPool) Size() int {
	return p.size
}

// ResolvePoolSize determines the optimal pool size.
// Priority: explicit workers > GOMAXPROCS-based calculation.
// Exported for use by servers and CLIs.
func ResolvePoolSize(workers int) int {
	// Explicit value takes priority
	if workers > 0 {
		return workers
	}

	// Auto-calculate based on GOMAXPROCS (adjusted by automaxprocs for containers)
	available := runtime.GOMAXPROCS(0)
	n := available / cpuDivisor

	if n < MinPoolSize {
		return MinPoolSize
	}
	if n > MaxPoolSize {
		return MaxPoolSize
	}
	return n
}
