package cmd

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

// exitFunc ends the process on a second interrupt; replaced in tests
var exitFunc = os.Exit

// WithShutdown returns a context that is cancelled on the first SIGINT or
// SIGTERM. The filter then stops before its next line and the command exits
// 130. A second signal exits immediately. Call stop to release the handler.
func WithShutdown(parent context.Context) (ctx context.Context, stop context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)

	sigChan := make(chan os.Signal, 2)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	done := make(chan struct{})

	go func() {
		select {
		case <-sigChan:
			cancel()
		case <-done:
			return
		}
		select {
		case <-sigChan:
			exitFunc(130) // 128 + SIGINT(2)
		case <-done:
		}
	}()

	var once sync.Once
	stop = func() {
		once.Do(func() {
			signal.Stop(sigChan)
			close(done)
			cancel()
		})
	}
	return ctx, stop
}
