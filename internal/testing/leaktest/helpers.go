// Package leaktest catches goroutines left running by code under test, such
// as a publisher whose retry worker outlives Shutdown.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

// Defaults for Check
const (
	DefaultSettleTimeout = time.Second
	pollInterval         = 5 * time.Millisecond
	stackBufferSize      = 1 << 16
)

// GoroutineChecker records a baseline goroutine count
type GoroutineChecker struct {
	t       testing.TB
	before  int
	timeout time.Duration
}

// NewGoroutineChecker records the current goroutine count as the baseline
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()
	return &GoroutineChecker{
		t:       t,
		before:  settled(),
		timeout: DefaultSettleTimeout,
	}
}

// WithTimeout changes how long Check waits for goroutines to exit
func (g *GoroutineChecker) WithTimeout(d time.Duration) *GoroutineChecker {
	g.timeout = d
	return g
}

// Check polls until at most tolerance goroutines above the baseline remain.
// On timeout it fails the test and logs every goroutine stack.
func (g *GoroutineChecker) Check(tolerance int) {
	g.t.Helper()

	limit := g.before + tolerance
	if waitFor(limit, g.timeout) {
		return
	}

	after := runtime.NumGoroutine()
	g.t.Errorf("goroutine leak: before=%d after=%d leaked=%d tolerance=%d\n%s",
		g.before, after, after-g.before, tolerance, stacks())
}

// CheckNoGoroutineLeak runs fn and fails if it leaves goroutines behind
func CheckNoGoroutineLeak(t testing.TB, fn func()) {
	t.Helper()

	checker := NewGoroutineChecker(t)
	fn()
	checker.Check(0)
}

// WaitForGoroutines waits until the goroutine count drops to target
func WaitForGoroutines(t testing.TB, target int, timeout time.Duration) {
	t.Helper()

	if !waitFor(target, timeout) {
		t.Errorf("timeout waiting for goroutines: current=%d target=%d",
			runtime.NumGoroutine(), target)
	}
}

func waitFor(limit int, timeout time.Duration) bool {
	deadline := time.Now().Add(timeout)
	for {
		runtime.Gosched()
		if runtime.NumGoroutine() <= limit {
			return true
		}
		if time.Now().After(deadline) {
			return false
		}
		time.Sleep(pollInterval)
	}
}

// settled returns the goroutine count once it stops changing between polls
func settled() int {
	prev := runtime.NumGoroutine()
	for i := 0; i < 10; i++ {
		time.Sleep(pollInterval)
		cur := runtime.NumGoroutine()
		if cur == prev {
			return cur
		}
		prev = cur
	}
	return prev
}

func stacks() string {
	buf := make([]byte, stackBufferSize)
	n := runtime.Stack(buf, true)
	return string(buf[:n])
}
