package output

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// spinnerFrames is the braille animation cycle.
var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Spinner animates a waiting message on one line while a request is in
// flight. All terminating methods are safe to call more than once; only
// the first takes effect.
type Spinner struct {
	w        io.Writer
	message  string
	interval time.Duration
	done     chan struct{}
	stop     sync.Once
}

// NewSpinner creates a spinner that writes to w.
func NewSpinner(w io.Writer, message string) *Spinner {
	return &Spinner{
		w:        w,
		message:  message,
		interval: 100 * time.Millisecond,
		done:     make(chan struct{}),
	}
}

// Start begins the animation on its own goroutine.
func (s *Spinner) Start() {
	go func() {
		for i := 0; ; i++ {
			select {
			case <-s.done:
				return
			default:
			}
			fmt.Fprintf(s.w, "\r%s %s", spinnerFrames[i%len(spinnerFrames)], s.message)
			time.Sleep(s.interval)
		}
	}()
}

// Stop halts the animation and clears the line.
func (s *Spinner) Stop() {
	s.halt("\r\033[K")
}

// Success halts the animation and prints a check-marked message.
func (s *Spinner) Success(message string) {
	s.halt(fmt.Sprintf("\r✓ %s\n", message))
}

// Fail halts the animation and prints a cross-marked message.
func (s *Spinner) Fail(message string) {
	s.halt(fmt.Sprintf("\r✗ %s\n", message))
}

func (s *Spinner) halt(tail string) {
	s.stop.Do(func() {
		close(s.done)
		fmt.Fprint(s.w, tail)
	})
}
