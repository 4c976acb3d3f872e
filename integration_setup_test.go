//go:build integration

package html2img

// Notes:
// - Integration test setup: shared CapturerPool for all integration tests
// - testPool is initialized in TestMain and closed after all tests complete
// - acquireCapturer helper provides automatic cleanup via t.Cleanup()
// - Pool size is capped at 4 for CI environments to avoid resource exhaustion

import (
	"os"
	"testing"
	"time"
)

// testTimeout is the standard timeout for integration test operations.
const testTimeout = 60 * time.Second

// testPool is the shared CapturerPool for all integration tests.
// It is initialized in TestMain and closed after all tests complete.
// Safe for concurrent use: tests only Acquire/Release, never modify the pool.
var testPool *CapturerPool

func TestMain(m *testing.M) {
	poolSize := ResolvePoolSize(0)
	if poolSize > 4 {
		poolSize = 4 // Cap at 4 to avoid resource exhaustion in CI
	}

	testPool = NewCapturerPool(poolSize)

	code := m.Run()

	testPool.Close()
	os.Exit(code)
}

// acquireCapturer gets a capturer from the shared pool with automatic
// cleanup. Uses t.Cleanup() to ensure Release is called even if the test
// panics.
func acquireCapturer(t *testing.T) *Capturer {
	t.Helper()
	c := testPool.Acquire()
	t.Cleanup(func() { testPool.Release(c) })
	return c
}
