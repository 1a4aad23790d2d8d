// Package logging is the logging facade shared by the pipekit packages.
//
// Library code only logs at debug level: index builds, cache fallbacks and rejected
// bindings. Nothing is printed unless the configured logger enables debug output.
// slog.Default() is used until SetDefault is called.
package logging

import (
	"log/slog"
	"sync"
)

// Logger defines an interface for logging at different severity levels.
// *slog.Logger satisfies it.
type Logger interface {
	// Debug logs a message at debug level.
	Debug(msg string, args ...any)
	// Info logs a message at info level.
	Info(msg string, args ...any)
	// Warn logs a message at warning level.
	Warn(msg string, args ...any)
	// Error logs a message at error level.
	Error(msg string, args ...any)
}

var (
	mu     sync.RWMutex
	logger Logger
)

// SetDefault replaces the logger used by all packages. A nil l restores slog.Default().
func SetDefault(l Logger) {
	mu.Lock()
	defer mu.Unlock()
	logger = l
}

// Default returns the logger configured with SetDefault, or slog.Default().
func Default() Logger {
	mu.RLock()
	l := logger
	mu.RUnlock()
	if l == nil {
		return slog.Default()
	}
	return l
}

// Discard returns a logger that drops every record.
func Discard() Logger {
	return slog.New(slog.DiscardHandler)
}

// Or returns l, or Default() when l is nil.
func Or(l Logger) Logger {
	if l == nil {
		return Default()
	}
	return l
}
