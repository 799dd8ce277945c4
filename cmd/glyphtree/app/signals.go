package app

import (
	"context"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"

	"github.com/sonemaro/glyphtree/pkg/logger"
)

// exitInterrupted is the conventional exit status after SIGINT.
const exitInterrupted = 130

// signalState tracks the state of signal handling
type signalState struct {
	shutdownInitiated atomic.Bool
}

// WithSignals returns a context that is cancelled on the first SIGINT or
// SIGTERM, letting the render stop after the current line. A second signal
// exits the process. The returned stop function releases the handler.
func (a *App) WithSignals(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)

	a.log.Debug("Initializing signal handlers")

	sigChan := make(chan os.Signal, 2)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	done := make(chan struct{})
	go a.handleSignals(sigChan, done, cancel)

	return ctx, func() {
		signal.Stop(sigChan)
		close(done)
		cancel()
	}
}

// handleSignals processes incoming system signals until done is closed
func (a *App) handleSignals(sigChan <-chan os.Signal, done <-chan struct{}, cancel context.CancelFunc) {
	state := &signalState{}

	for {
		select {
		case <-done:
			return
		case sig := <-sigChan:
			a.log.WithFields(logger.Fields{
				"signal": sig.String(),
			}).Debug("Received system signal")

			if state.shutdownInitiated.Swap(true) {
				a.log.Warn("Received second interrupt, exiting")
				a.exit(exitInterrupted)
				return
			}

			a.log.Info("Interrupt received, stopping render")
			cancel()
		}
	}
}
