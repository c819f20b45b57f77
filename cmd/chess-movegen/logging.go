package main

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// newLogger returns a logger writing to w. Verbosity 0 logs warnings,
// 1 adds info and 2 adds debug; quiet keeps only errors.
func newLogger(w io.Writer, verbosity int, quiet bool) zerolog.Logger {
	level := zerolog.WarnLevel
	switch {
	case quiet:
		level = zerolog.ErrorLevel
	case verbosity >= 2:
		level = zerolog.DebugLevel
	case verbosity == 1:
		level = zerolog.InfoLevel
	}
	return zerolog.New(w).Level(level).With().Timestamp().Str("program", programName).Logger()
}

// elapsed is a shorthand for log fields measuring a phase.
func elapsed(start time.Time) time.Duration {
	return time.Since(start).Round(time.Microsecond)
}
