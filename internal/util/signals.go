package util

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
)

// SetupSignalHandler creates a context that is cancelled on receiving SIGINT or SIGTERM.
// A second signal will force immediate exit. The returned stop function releases the
// signal subscription; call it before handing the terminal to another program.
func SetupSignalHandler() (context.Context, func()) {
	ctx, cancel := context.WithCancel(context.Background())

	// Create channel to receive OS signals
	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	done := make(chan struct{})
	go func() {
		select {
		case sig := <-sigCh:
			slog.Debug("received shutdown signal", "signal", sig.String())
			cancel()
		case <-done:
			return
		}

		// Second signal forces immediate exit
		select {
		case sig := <-sigCh:
			slog.Warn("received second shutdown signal, forcing exit", "signal", sig.String())
			os.Exit(1)
		case <-done:
		}
	}()

	stop := func() {
		signal.Stop(sigCh)
		close(done)
		cancel()
	}

	return ctx, stop
}
