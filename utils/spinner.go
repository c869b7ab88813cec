package utils

import (
	"fmt"
	"os"
	"time"
)

// Spinner initializes the process indicator.
type Spinner struct {
	stopChan chan struct{}
	done     chan struct{}
}

// NewSpinner instantiates a new Spinner struct.
func NewSpinner() *Spinner {
	return &Spinner{}
}

// Start starts the process indicator. Nothing is shown when stderr is not a terminal.
func (s *Spinner) Start(message string) {
	s.stopChan = make(chan struct{}, 1)
	s.done = make(chan struct{})

	if !IsTerminal(os.Stderr) {
		close(s.done)
		return
	}

	go func() {
		defer close(s.done)
		for {
			for _, r := range `-\|/` {
				select {
				case <-s.stopChan:
					fmt.Fprint(os.Stderr, "\r")
					return
				default:
					fmt.Fprintf(os.Stderr, "\r%s%s %c%s", message, SuccessColor, r, DefaultColor)
					time.Sleep(time.Millisecond * 100)
				}
			}
		}
	}()
}

// Stop stops the process indicator and waits until it's gone.
func (s *Spinner) Stop() {
	s.stopChan <- struct{}{}
	<-s.done
}
