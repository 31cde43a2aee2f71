package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// newLogger builds the process logger. Without a log file it writes to
// fallback, which play sets to io.Discard because the game owns the screen.
// The returned close function is never nil.
func newLogger(fallback io.Writer, opts log.Options) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	opts.Level = level

	if flagLogFile == "" {
		return log.NewWithOptions(fallback, opts), func() {}, nil
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	opts.ReportTimestamp = true
	return log.NewWithOptions(f, opts), func() { f.Close() }, nil
}
