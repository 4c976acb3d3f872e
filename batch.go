package html2img

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

// Outcome holds the result of one job in a batch. Outcomes are positional:
// CaptureBatch returns outcome i for request i regardless of completion
// order.
type Outcome struct {
	Target     Target
	Image      []byte
	OutputPath string
	Err        error
	Duration   time.Duration
}

// Failed reports whether the job ended in a capture failure. Cancelled jobs
// are not failures: the run was abandoned, not broken.
func (o Outcome) Failed() bool {
	return o.Err != nil && !errors.Is(o.Err, ErrCancelled)
}

// CaptureBatch fans the requests out over the pool's capturers, at most
// pool.Size() pipelines at a time, and returns outcomes in request order.
// One job's failure never aborts its siblings. Cancelling ctx abandons
// in-flight waits and records ErrCancelled for every job not yet finished.
func CaptureBatch(ctx context.Context, pool *CapturerPool, reqs []Request) []Outcome {
	if len(reqs) == 0 {
		return nil
	}

	concurrency := pool.Size()
	if concurrency > len(reqs) {
		concurrency = len(reqs)
	}

	outcomes := make([]Outcome, len(reqs))
	jobs := make(chan int, len(reqs))
	var wg sync.WaitGroup

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			c := pool.Acquire()
			defer pool.Release(c)

			for idx := range jobs {
				outcomes[idx] = runJob(ctx, c, reqs[idx])
			}
		}()
	}

	for i := range reqs {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return outcomes
}

// CaptureBatchSync is the blocking convenience form of CaptureBatch.
func CaptureBatchSync(pool *CapturerPool, reqs []Request) []Outcome {
	return CaptureBatch(context.Background(), pool, reqs)
}

// runJob executes one capture and maps cancellation onto ErrCancelled.
func runJob(ctx context.Context, c *Capturer, req Request) Outcome {
	outcome := Outcome{Target: req.Target}

	// Don't start work the caller already abandoned.
	if err := ctx.Err(); err != nil {
		outcome.Err = fmt.Errorf("%w: %v", ErrCancelled, err)
		return outcome
	}

	start := time.Now()
	result, err := c.Capture(ctx, req)
	outcome.Duration = time.Since(start)

	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			outcome.Err = fmt.Errorf("%w: %v", ErrCancelled, err)
		} else {
			outcome.Err = err
		}
		return outcome
	}

	outcome.Image = result.Image
	outcome.OutputPath = result.OutputPath
	return outcome
}

// BatchFailed reports whether any job in the batch failed. Cancelled jobs
// do not count as failures.
func BatchFailed(outcomes []Outcome) bool {
	for _, o := range outcomes {
		if o.Failed() {
			return true
		}
	}
	return false
}
