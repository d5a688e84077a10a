package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/cloudposse/alp/cmd"
	errUtils "github.com/cloudposse/alp/errors"
	log "github.com/cloudposse/alp/pkg/logger"
)

// shutdownGrace is how long a running display may take to restore the
// terminal after a signal before the process exits anyway.
const shutdownGrace = 500 * time.Millisecond

func main() {
	// Set up signal handling for graceful shutdown.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		// Let the display loop write its reset sequence before exiting.
		cmd.Interrupt(sig)
		time.Sleep(shutdownGrace)
		cmd.Cleanup()
		// Exit with correct POSIX exit code (128 + signal number).
		errUtils.OsExit(errUtils.SignalExitCode(sig))
	}()

	log.Default().SetReportTimestamp(false)

	errUtils.OsExit(run())
}

// run executes the main application logic and returns an exit code.
// This separation allows proper cleanup via defer before os.Exit in main().
func run() int {
	defer cmd.Cleanup()

	err := cmd.Execute()
	if err == nil {
		return errUtils.ExitCodeSuccess
	}

	// The interrupted display already restored the terminal; nothing to report.
	if !errors.Is(err, errUtils.ErrInterrupted) {
		formatted := errUtils.Format(err, cmd.ErrorFormatterConfig())
		os.Stderr.WriteString(formatted + "\n")
	}

	exitCode := errUtils.GetExitCode(err)
	log.Debug("Exiting with exit code", "code", exitCode)
	return exitCode
}
