package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"
)

func newTestSpinner(ctx context.Context, message string) (*Spinner, *bytes.Buffer) {
	s := newSpinnerWithContext(ctx, message)
	var buf bytes.Buffer
	s.w = &buf
	return s, &buf
}

func TestSpinnerDrawsAndClears(t *testing.T) {
	s, buf := newTestSpinner(context.Background(), "working")
	s.Start()
	time.Sleep(3 * spinnerInterval)
	s.Stop()

	out := buf.String()
	if !strings.Contains(out, "working") {
		t.Errorf("spinner output missing message: %q", out)
	}
	if !strings.HasSuffix(out, "\r") {
		t.Errorf("spinner should end by clearing the line, got %q", out)
	}
}

func TestSpinnerStopIsIdempotent(t *testing.T) {
	s, _ := newTestSpinner(context.Background(), "working")
	s.Start()
	s.Stop()
	s.Stop()
	s.Stop()
}

func TestSpinnerStopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	s, buf := newTestSpinner(ctx, "working")
	s.Start()
	cancel()

	select {
	case <-s.stopped:
	case <-time.After(time.Second):
		t.Fatal("spinner did not stop after context cancellation")
	}
	if !strings.HasSuffix(buf.String(), "\r") {
		t.Errorf("cancelled spinner should clear the line, got %q", buf.String())
	}
}

func TestSpinnerStopWithMessages(t *testing.T) {
	s, _ := newTestSpinner(context.Background(), "working")
	s.Start()
	time.Sleep(spinnerInterval)
	s.StopWithSuccess("done")

	s, _ = newTestSpinner(context.Background(), "working")
	s.Start()
	s.StopWithError("failed")
}
