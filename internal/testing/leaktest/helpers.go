// Package leaktest has goroutine-leak assertions for tests that start
// background workers.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

// DefaultSettleTimeout is how long Check waits for goroutines to exit
const DefaultSettleTimeout = time.Second

const pollInterval = 5 * time.Millisecond

// GoroutineChecker records the goroutine count at creation and later
// verifies it has not grown
type GoroutineChecker struct {
	before  int
	timeout time.Duration
	t       testing.TB
}

// NewGoroutineChecker creates a new checker and records the current goroutine count
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()
	runtime.Gosched()
	return &GoroutineChecker{
		before:  runtime.NumGoroutine(),
		timeout: DefaultSettleTimeout,
		t:       t,
	}
}

// WithTimeout overrides how long Check waits for goroutines to settle
func (g *GoroutineChecker) WithTimeout(d time.Duration) *GoroutineChecker {
	g.timeout = d
	return g
}

// Check polls until at most tolerance extra goroutines remain, failing the
// test if that does not happen before the timeout
func (g *GoroutineChecker) Check(tolerance int) {
	g.t.Helper()

	after := settle(g.before+tolerance, g.timeout)
	if leaked := after - g.before; leaked > tolerance {
		g.t.Errorf("Potential goroutine leak: before=%d, after=%d, leaked=%d (tolerance=%d)",
			g.before, after, leaked, tolerance)
	}
}

// CheckNoGoroutineLeak runs fn and fails if it leaves goroutines behind
func CheckNoGoroutineLeak(t testing.TB, fn func()) {
	t.Helper()

	checker := NewGoroutineChecker(t)
	fn()
	checker.Check(0)
}

// settle waits for the goroutine count to drop to target and returns the last observed count
func settle(target int, timeout time.Duration) int {
	deadline := time.Now().Add(timeout)
	for {
		runtime.Gosched()
		n := runtime.NumGoroutine()
		if n <= target || !time.Now().Before(deadline) {
			return n
		}
		time.Sleep(pollInterval)
	}
}
