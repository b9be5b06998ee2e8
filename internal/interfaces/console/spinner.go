package console

import (
	"fmt"
	"io"
	"strings"
	"time"
)

const defaultFrameInterval = 100 * time.Millisecond

var spinnerFrames = []rune("⠋⠙⠹⠸⠼⠴⠦⠧⠇⠏")

// Spinner is a cosmetic progress indicator running on its own
// goroutine. It shares nothing with the rest of the process except
// its stop channel, so it can never race with report output: callers
// stop it before printing.
type Spinner struct {
	out      io.Writer
	text     string
	interval time.Duration
	stop     chan struct{}
	done     chan struct{}
	running  bool
}

func NewSpinner(out io.Writer, text string) *Spinner {
	return &Spinner{
		out:      out,
		text:     text,
		interval: defaultFrameInterval,
	}
}

// Start begins animating. Calling Start on a running spinner is a
// no-op.
func (s *Spinner) Start() {
	if s.running {
		return
	}
	s.running = true
	s.stop = make(chan struct{})
	s.done = make(chan struct{})
	go s.run()
}

func (s *Spinner) run() {
	defer close(s.done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	i := 0
	for {
		select {
		case <-s.stop:
			// Clear the spinner line.
			fmt.Fprintf(s.out, "\r%s\r", strings.Repeat(" ", len(s.text)+4))
			return
		case <-ticker.C:
			frame := spinnerFrames[i%len(spinnerFrames)]
			fmt.Fprintf(s.out, "\r%c %s", frame, s.text)
			i++
		}
	}
}

// Stop halts the animation and clears its line. Safe to call on a
// stopped spinner.
func (s *Spinner) Stop() {
	if !s.running {
		return
	}
	s.running = false
	close(s.stop)
	<-s.done
}
