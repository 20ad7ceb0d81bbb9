package testutil

import (
	"context"
	"testing"
	"time"
)

// DefaultTimeout bounds a single quiz run in tests.
const DefaultTimeout = 5 * time.Second

// Context returns a context bounded by timeout and, for tests run with
// -timeout, by the test deadline.
func Context(t testing.TB, timeout time.Duration) context.Context {
	t.Helper()
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if deadline, ok := testDeadline(t); ok {
		remaining := time.Until(deadline) - time.Second
		if remaining > 0 && remaining < timeout {
			timeout = remaining
		}
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	t.Cleanup(cancel)
	return ctx
}

// testDeadline reports the -timeout deadline; benchmarks and fuzz targets have none.
func testDeadline(t testing.TB) (time.Time, bool) {
	if tt, ok := t.(interface{ Deadline() (time.Time, bool) }); ok {
		return tt.Deadline()
	}
	return time.Time{}, false
}

// WithTimeout runs fn and fails the test if it has not returned in time.
func WithTimeout(t testing.TB, timeout time.Duration, fn func()) {
	t.Helper()
	ctx := Context(t, timeout)
	done := make(chan struct{})
	go func() {
		defer close(done)
		fn()
	}()
	select {
	case <-done:
	case <-ctx.Done():
		t.Fatalf("test timed out")
	}
}
