package html2img

import (
	"context"
	"fmt"
	"time"
)

// renderCompleteMarker is the literal a page emits on its console channel to
// declare itself ready for capture. Pages with asynchronous rendering log
// this marker instead of relying on network heuristics:
//
//	console.log("RENDER_COMPLETE")
const renderCompleteMarker = "RENDER_COMPLETE"

// Readiness timing defaults.
const (
	// DefaultRenderTimeout is how long the gate waits for the page's
	// RENDER_COMPLETE signal before falling back to network-idle detection.
	DefaultRenderTimeout = 10 * time.Second

	// DefaultIdleCeiling is the hard outer bound on the fallback idle wait.
	// Network idleness is browser-native and normally resolves on its own,
	// but a page that polls forever would otherwise hang the job.
	DefaultIdleCeiling = 30 * time.Second

	// idleQuiescence is the window with no in-flight network activity the
	// fallback requires before declaring the page idle.
	idleQuiescence = 300 * time.Millisecond
)

// readiness reports which path made the page ready.
type readiness int

const (
	readyBySignal readiness = iota + 1
	readyByIdle
)

func (r readiness) String() string {
	switch r {
	case readyBySignal:
		return "signal"
	case readyByIdle:
		return "network-idle"
	default:
		return "unknown"
	}
}

// renderGate decides when a page is ready to be captured. It races the
// page's explicit readiness signal against a timeout; only after the
// timeout does it fall back to waiting for network idleness. The two waits
// are mutually exclusive with deterministic precedence: the signal wins
// whenever it arrives, including during the fallback wait.
//
// The gate is independent of the browser: the signal arrives on a channel
// and the idle condition is an injected context-aware function, so the
// state machine is testable in isolation.
type renderGate struct {
	signalTimeout time.Duration
	idleCeiling   time.Duration
}

func newRenderGate(signalTimeout, idleCeiling time.Duration) *renderGate {
	if signalTimeout <= 0 {
		signalTimeout = DefaultRenderTimeout
	}
	if idleCeiling <= 0 {
		idleCeiling = DefaultIdleCeiling
	}
	return &renderGate{signalTimeout: signalTimeout, idleCeiling: idleCeiling}
}

// wait blocks until the page is ready or the job is cancelled.
//
// Phase one listens for the readiness signal with the signal timeout
// running. Phase two, entered only when the timeout elapses first, runs the
// fallback idle wait under the hard ceiling while still honoring a late
// signal. Cancellation of ctx abandons both phases promptly and returns
// ctx.Err(); the ceiling expiring returns ErrRenderTimeout. Timeout of the
// signal alone never fails the capture, it only changes strategy.
func (g *renderGate) wait(ctx context.Context, signal <-chan struct{}, waitIdle func(context.Context) error) (readiness, error) {
	timer := time.NewTimer(g.signalTimeout)
	defer timer.Stop()

	select {
	case <-signal:
		return readyBySignal, nil
	case <-ctx.Done():
		return 0, ctx.Err()
	case <-timer.C:
	}

	// Fallback: wait for network idleness, capped by the hard ceiling.
	idleCtx, cancel := context.WithTimeout(ctx, g.idleCeiling)
	defer cancel()

	idleDone := make(chan error, 1)
	go func() { idleDone <- waitIdle(idleCtx) }()

	select {
	case <-signal:
		// Late signal still wins; cancel the idle wait.
		return readyBySignal, nil
	case <-ctx.Done():
		return 0, ctx.Err()
	case err := <-idleDone:
		if err != nil {
			if ctx.Err() != nil {
				return 0, ctx.Err()
			}
			return 0, fmt.Errorf("%w: %v", ErrRenderTimeout, err)
		}
		if idleCtx.Err() != nil {
			// The idle helper returned nil only because its context died.
			return 0, fmt.Errorf("%w: network never went idle within %s", ErrRenderTimeout, g.idleCeiling)
		}
		return readyByIdle, nil
	}
}
