package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"
)

// spinnerFrames are the braille animation frames, advanced every 80ms.
var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// spinner is a stderr progress indicator shown while a render is in
// flight. It animates from the moment it is created and stops when Stop is
// called or the parent context is cancelled, whichever comes first.
type spinner struct {
	message string
	cancel  context.CancelFunc
	stopped chan struct{}
	mu      sync.Mutex
}

// newSpinner creates and starts a spinner bound to ctx.
func newSpinner(ctx context.Context, message string) *spinner {
	ctx, cancel := context.WithCancel(ctx)
	s := &spinner{
		message: message,
		cancel:  cancel,
		stopped: make(chan struct{}),
	}
	go s.spin(ctx)
	return s
}

// spin animates until the context ends, then clears the line.
func (s *spinner) spin(ctx context.Context) {
	defer close(s.stopped)
	ticker := time.NewTicker(80 * time.Millisecond)
	defer ticker.Stop()

	for i := 0; ; i++ {
		select {
		case <-ctx.Done():
			s.clearLine()
			return
		case <-ticker.C:
			frame := spinnerFrames[i%len(spinnerFrames)]
			s.mu.Lock()
			fmt.Fprintf(os.Stderr, "\r%s %s", styleIconSpinner.Render(frame), StyleDim.Render(s.message))
			s.mu.Unlock()
		}
	}
}

// Stop halts the animation and clears the line. It is safe to call more
// than once and returns only after the animation goroutine has exited, so
// status output printed afterwards never interleaves with a frame.
func (s *spinner) Stop() {
	s.cancel()
	<-s.stopped
}

func (s *spinner) clearLine() {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(os.Stderr, "\r%s\r", strings.Repeat(" ", len(s.message)+4))
}
