// Package log provides a structured logging interface for descent's training
// and preprocessing operations.
//
// The package defines a minimal, slog-compatible logging interface that allows
// implementations to be swapped without touching call sites. The default
// provider is backed by log/slog with a JSON handler; tests install a
// TestLoggerProvider to capture and inspect output.
//
// Example usage:
//
//	logger := log.GetLoggerWithName("linear.gradient_descent")
//	logger.Info("training completed",
//	    log.SamplesKey, 47,
//	    log.FeaturesKey, 2,
//	    log.IterationKey, 778,
//	)
package log

import (
	"context"
)

// Logger defines a structured logging interface compatible with Go's log/slog.
//
// Fields are passed as alternating key-value pairs, slog style. With returns a
// derived logger carrying pre-populated fields so call sites do not repeat
// common context such as the model name.
type Logger interface {
	// Debug logs detailed diagnostic information, such as per-iteration
	// progress of an optimizer. Usually disabled outside development.
	Debug(msg string, fields ...any)

	// Info logs general operational information about the execution flow.
	Info(msg string, fields ...any)

	// Warn logs potentially problematic situations that do not stop the
	// operation, such as an optimizer stopping at its iteration cap.
	Warn(msg string, fields ...any)

	// Error logs error conditions. Pass the error via ErrAttr so the
	// handler can attach the stack trace captured by pkg/errors.
	Error(msg string, fields ...any)

	// With returns a new Logger with the given fields pre-populated.
	With(fields ...any) Logger

	// Enabled reports whether the logger emits records at the given level.
	// Use it to skip expensive field construction in hot loops:
	//
	//	if logger.Enabled(ctx, log.LevelDebug) {
	//	    logger.Debug("cost evaluated", log.IterationKey, iter, log.CostKey, cost)
	//	}
	Enabled(ctx context.Context, level Level) bool
}

// Level represents a logging level. Values are compatible with slog.Level.
type Level int

const (
	LevelDebug Level = -4 // Detailed diagnostic information
	LevelInfo  Level = 0  // General operational information
	LevelWarn  Level = 4  // Warning conditions
	LevelError Level = 8  // Error conditions
)

// String returns the string representation of the log level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// LoggerProvider creates and configures loggers. It exists so tests can
// inject a capturing implementation via SetProvider.
type LoggerProvider interface {
	// GetLogger returns the default logger instance.
	GetLogger() Logger

	// GetLoggerWithName returns a logger tagged with a component identifier,
	// such as "linear.gradient_descent" or "preprocessing.scaler".
	GetLoggerWithName(name string) Logger

	// SetLevel sets the minimum log level for loggers created by this provider.
	SetLevel(level Level)
}
