package testutil

import (
	"testing"
	"time"
)

// TestContextUsesTimeout verifies the context expires after the requested timeout.
func TestContextUsesTimeout(t *testing.T) {
	ctx := Context(t, 10*time.Millisecond)
	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		t.Fatalf("context did not expire")
	}
}

// TestContextAcceptsTB verifies the helper works through the testing.TB interface.
func TestContextAcceptsTB(t *testing.T) {
	var tb testing.TB = t
	ctx := Context(tb, 0)
	deadline, ok := ctx.Deadline()
	if !ok {
		t.Fatalf("expected a deadline")
	}
	if time.Until(deadline) > DefaultTimeout {
		t.Fatalf("expected deadline within %s, got %s", DefaultTimeout, time.Until(deadline))
	}
}

func BenchmarkContext(b *testing.B) {
	for b.Loop() {
		_ = Context(b, time.Second)
	}
}
