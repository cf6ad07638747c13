package alngo

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with alignment-specific helpers so every
// operation logs with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{Logger: slog.New(handler)}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
func NewJSONLogger(level slog.Level) *Logger {
	return &Logger{Logger: slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return &Logger{Logger: slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))}
}

// NoopLogger creates a Logger that discards all log output. It is the
// default; alignments are silent unless WithLogger installs a real one.
func NoopLogger() *Logger {
	return &Logger{Logger: slog.New(slog.DiscardHandler)}
}

// LogEdit logs a structural edit.
func (l *Logger) LogEdit(op, axis string, affected, nrows, ncols int, copied bool) {
	l.Debug("edit applied",
		"op", op,
		"axis", axis,
		"affected", affected,
		"nrows", nrows,
		"ncols", ncols,
		"copy", copied,
	)
}

// LogFilter logs a filter evaluation.
func (l *Logger) LogFilter(axis string, matched, total int, inverse, dryRun bool) {
	l.Debug("filter evaluated",
		"axis", axis,
		"matched", matched,
		"total", total,
		"inverse", inverse,
		"dry_run", dryRun,
	)
}

// LogJoin logs a column-wise join.
func (l *Logger) LogJoin(sources, ncols int) {
	l.Debug("alignments joined",
		"sources", sources,
		"ncols", ncols,
	)
}
