// Package spinner renders a small progress indicator while the responder
// warms up. Output degrades to a plain carriage return when the writer is
// not a terminal.
package spinner

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"golang.org/x/term"
)

var frames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Spinner animates a message on a single line until stopped.
type Spinner struct {
	writer  io.Writer
	message string
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

// New creates a Spinner writing to w. Call Start to begin animating.
func New(w io.Writer, message string) *Spinner {
	return &Spinner{writer: w, message: message}
}

// Start begins the animation. ctx cancellation also stops the spinner.
// Calling Start on a running spinner is a no-op.
func (s *Spinner) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(100 * time.Millisecond)
		defer ticker.Stop()

		frame := 0
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				fmt.Fprintf(s.writer, "\r%s %s", frames[frame%len(frames)], s.message)
				frame++
			}
		}
	}()
}

// Stop halts the animation and clears the line. Safe to call more than once.
func (s *Spinner) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	s.cancel = nil
	s.wg.Wait()

	if f, ok := s.writer.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(s.writer, "\r\033[2K")
	} else {
		fmt.Fprint(s.writer, "\r")
	}
}
