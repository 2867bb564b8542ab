// Package telemetry is a thin leveled logging facade over the standard library's
// log/slog, the closest ecosystem-standard equivalent of the reference
// implementation's Log::getInstance(level) singleton (log.h/log.cpp): two levels
// (info, default; debug, behind -v). Debug level gates the loader pipeline's per-task
// trace; the distance histogram is not logged.
package telemetry

import (
	"log/slog"
	"os"
)

var logger = newLogger(false)

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// SetVerbose switches the package-level logger between info and debug level.
func SetVerbose(verbose bool) {
	logger = newLogger(verbose)
}

// Debug logs a debug-level diagnostic, visible only when SetVerbose(true) was called.
func Debug(msg string, args ...any) { logger.Debug(msg, args...) }

// Info logs an info-level message.
func Info(msg string, args ...any) { logger.Info(msg, args...) }

// Error logs an error-level message.
func Error(msg string, args ...any) { logger.Error(msg, args...) }
