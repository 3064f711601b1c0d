package main

import (
	"context"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"

	"github.com/cloudposse/ticktock/cmd"
	errUtils "github.com/cloudposse/ticktock/errors"
	log "github.com/cloudposse/ticktock/pkg/logger"
)

func main() {
	// Use errUtils.OsExit to allow test interception.
	errUtils.OsExit(run())
}

// run executes the main application logic and returns an exit code.
// This separation allows proper cleanup via defer before os.Exit in main().
func run() int {
	defer cmd.Cleanup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// A signal cancels the running command so widgets and the terminal are
	// restored before exiting with 128 + signal number.
	var received atomic.Int32
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		select {
		case sig := <-sigChan:
			if s, ok := sig.(syscall.Signal); ok {
				received.Store(int32(s))
			}
			cancel()
		case <-ctx.Done():
		}
	}()

	err := cmd.Execute(ctx)
	if sig := received.Load(); sig != 0 && err == nil {
		return errUtils.SignalExitCode(int(sig))
	}
	if err != nil {
		// Capture error to Sentry if configured (safe to call even if Sentry not initialized).
		errUtils.CaptureError(err)

		formatted := errUtils.Format(err, cmd.ErrorFormat())
		_, _ = os.Stderr.WriteString(formatted + "\n")

		exitCode := errUtils.GetExitCode(err)
		log.Debug("Exiting with exit code", "code", exitCode)
		return exitCode
	}

	return errUtils.ExitCodeSuccess
}
