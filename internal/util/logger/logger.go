// Package logger implements subsystem-scoped structured logging on top of
// log/slog.
//
// Usage:
//
//	var log = logger.Logger("identity/pow")
//
//	func foo() {
//	    log.Debug("candidate rejected", "attempt", n)
//	}
package logger

import (
	"io"
	"log/slog"
	"sync"
)

var (
	loggers  sync.Map // map[string]*slog.Logger
	handlers sync.Map // map[string]*subsystemHandler

	globalLogger     *slog.Logger
	globalLoggerOnce sync.Once
)

// Logger returns the cached *slog.Logger for subsystem, creating it from
// the current environment configuration on first use.
func Logger(subsystem string) *slog.Logger {
	if l, ok := loggers.Load(subsystem); ok {
		return l.(*slog.Logger)
	}

	cfg := ConfigFromEnv()
	level := cfg.LevelForSubsystem(subsystem)

	handler := newHandler(subsystem, level, cfg.Format)
	log := slog.New(handler)

	actual, _ := loggers.LoadOrStore(subsystem, log)
	if h, ok := handler.(*subsystemHandler); ok {
		handlers.Store(subsystem, h)
	}

	return actual.(*slog.Logger)
}

// GlobalLogger returns the default logger for code with no specific
// subsystem.
func GlobalLogger() *slog.Logger {
	globalLoggerOnce.Do(func() {
		globalLogger = Logger("identity")
	})
	return globalLogger
}

// SetLevel adjusts a single subsystem's level at runtime.
func SetLevel(subsystem string, level slog.Level) {
	if h, ok := handlers.Load(subsystem); ok {
		h.(*subsystemHandler).SetLevel(level)
	}
}

// Discard returns a logger that drops everything; for tests.
func Discard() *slog.Logger {
	return slog.New(DiscardHandler())
}

// SetOutput redirects all loggers' output. Safe to call after loggers have
// already been created.
func SetOutput(w io.Writer) {
	globalOutputMu.Lock()
	globalOutput = w
	globalOutputMu.Unlock()
}
