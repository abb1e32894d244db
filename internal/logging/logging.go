// SPDX-License-Identifier: EPL-2.0

// Package logging sets up the process wide slog logger for the command line
// tool.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Level maps a level name to its slog.Level. "none" reports ok=false with a
// nil error.
func Level(name string) (level slog.Level, ok bool, err error) {
	switch name {
	case "none":
		return 0, false, nil
	case "error":
		return slog.LevelError, true, nil
	case "warn":
		return slog.LevelWarn, true, nil
	case "info":
		return slog.LevelInfo, true, nil
	case "debug":
		return slog.LevelDebug, true, nil
	default:
		return 0, false, fmt.Errorf("%w: %q", ErrUnknownLevel, name)
	}
}

// ConfigureDefaultLogger installs the default slog logger.
//
// logLevel is one of "none", "error", "warn", "info" or "debug". With an
// empty logFile the logger writes text to stderr, leaving stdout free for
// sample data. Otherwise it writes JSON to logFile, truncating it.
//
// The returned file is nil unless logFile was opened; the caller closes it:
//
//	logFilePointer, err := logging.ConfigureDefaultLogger("info", "", slog.HandlerOptions{})
//	if err != nil {
//		return err
//	}
//	if logFilePointer != nil {
//		defer logFilePointer.Close()
//	}
func ConfigureDefaultLogger(logLevel string, logFile string, loggerOptions slog.HandlerOptions) (*os.File, error) {
	level, ok, err := Level(logLevel)
	if err != nil {
		return nil, err
	}
	if !ok {
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
		return nil, nil
	}
	loggerOptions.Level = level

	if logFile == "" {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &loggerOptions)))
		return nil, nil
	}

	logFilePointer, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(logFilePointer, &loggerOptions)))

	return logFilePointer, nil
}
