package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// newLogger builds the process logger on w.
func newLogger(w io.Writer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "pipes",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// newRunLogger returns the logger used while the alternate screen is up.
// Writing to the terminal then would corrupt the display, so logs go to
// --log-file or nowhere.
func newRunLogger() (*log.Logger, func(), error) {
	if flagLogFile == "" {
		return newLogger(io.Discard), func() {}, nil
	}

	if err := os.MkdirAll(filepath.Dir(flagLogFile), 0o755); err != nil {
		return newLogger(io.Discard), func() {}, fmt.Errorf("cannot create log directory: %w", err)
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return newLogger(io.Discard), func() {}, fmt.Errorf("cannot open log file: %w", err)
	}

	//nolint:errcheck // Best-effort close on exit
	return newLogger(f), func() { f.Close() }, nil
}
