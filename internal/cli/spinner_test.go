package cli

import (
	"context"
	"testing"
	"time"
)

func TestSpinnerStop(t *testing.T) {
	s := newSpinner(context.Background(), "rendering...")
	time.Sleep(100 * time.Millisecond)
	s.Stop()

	select {
	case <-s.stopped:
	default:
		t.Error("Stop should not return before the animation goroutine exits")
	}
}

func TestSpinnerStopIsIdempotent(t *testing.T) {
	s := newSpinner(context.Background(), "rendering...")

	s.Stop()
	s.Stop()
	s.Stop()
}

func TestSpinnerStopsOnContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	s := newSpinner(ctx, "rendering grid...")
	cancel()

	select {
	case <-s.stopped:
	case <-time.After(time.Second):
		t.Fatal("spinner should exit after context cancellation")
	}

	// Stop remains safe after the context already ended it.
	s.Stop()
}
