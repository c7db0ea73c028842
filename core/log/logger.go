// File: logger.go
// Title: Logger Interface and Default Instance
// Description: Defines the Logger interface implemented by the runtime-
//              configurable and static loggers, the shared backend
//              dispatch, and the package-level default instance with its
//              convenience functions.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-24
// Modified: 2025-08-24
//
// Change History:
// - 2025-08-24 v0.1.0: Initial implementation with runtime/static split

package log

import (
	"fmt"
	"io"
	"os"
)

// DefaultModuleName is used when no module name is supplied
const DefaultModuleName = "Unnamed Module"

// MaxModuleNameLen bounds the module display label. Longer names are
// truncated at open time
const MaxModuleNameLen = 64

// Output streams for the console backends and fallback diagnostics.
// Variables so tests can capture output
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// Logger is the common surface of the runtime-configurable and static
// loggers. All state is process-local and unsynchronized; concurrent
// use from multiple goroutines requires external synchronization
type Logger interface {
	// Log renders and dispatches a message, deriving the call site
	// automatically
	Log(level Level, format string, args ...interface{})

	// LogAt renders and dispatches a message with an explicit call
	// site, for wrappers that capture the caller themselves
	LogAt(level Level, caller CallerInfo, format string, args ...interface{})

	// SetLevel mutates the current threshold
	SetLevel(level Level)

	// ResetLevel restores the threshold captured at configuration time
	ResetLevel()

	// Level returns the current threshold
	Level() Level

	// Module returns the configured module name
	Module() string
}

// Config bundles the settings of a logger
type Config struct {
	Backend Backend
	Level   Level
	Module  string

	// External receives output for BackendExternal. Selecting the
	// external backend without a sink falls back to stderr
	External ExternalFunc
}

// dispatch hands a rendered message to the selected backend. The
// syslog and external backends carry the module name as a separate
// tag and therefore omit it from the line
func dispatch(backend Backend, sys syslogConn, external ExternalFunc,
	module string, level Level, caller CallerInfo, msg string) {

	switch backend {
	case BackendStdout:
		fmt.Fprint(stdout, renderLine(module, level, caller, msg))
	case BackendSyslog:
		if sys != nil {
			sys.Emit(level.SyslogPriority(), renderTail(level, caller, msg))
		}
	case BackendExternal:
		if external != nil {
			external(level.SyslogPriority(), module, renderTail(level, caller, msg))
		}
	default:
		fmt.Fprint(stderr, renderLine(module, level, caller, msg))
	}
}

// Default logger instance. It starts in the closed state; call Open
// before logging through the package-level functions
var defaultLogger Logger = NewRuntime()

// Default returns the default logger instance
func Default() Logger {
	return defaultLogger
}

// SetDefault replaces the default logger instance
func SetDefault(logger Logger) {
	if logger != nil {
		defaultLogger = logger
	}
}

// Open configures the default logger. It is a guarded no-op when the
// default logger is already open or is not runtime-configurable
func Open(backend Backend, level Level, module string) {
	r, ok := defaultLogger.(*Runtime)
	if !ok {
		fmt.Fprintln(stderr, "Warning: default logger is not runtime-configurable")
		return
	}
	r.openConfig(Capture(1), Config{Backend: backend, Level: level, Module: module})
}

// OpenConfig configures the default logger from a Config
func OpenConfig(cfg Config) {
	r, ok := defaultLogger.(*Runtime)
	if !ok {
		fmt.Fprintln(stderr, "Warning: default logger is not runtime-configurable")
		return
	}
	r.openConfig(Capture(1), cfg)
}

// Close tears down the default logger. Safe to call when not open
func Close() {
	if r, ok := defaultLogger.(*Runtime); ok {
		r.Close()
	}
}

// SetLevel mutates the default logger's threshold
func SetLevel(level Level) {
	defaultLogger.SetLevel(level)
}

// ResetLevel restores the default logger's threshold to its open-time
// value
func ResetLevel() {
	defaultLogger.ResetLevel()
}

// Log logs a message through the default logger
func Log(level Level, format string, args ...interface{}) {
	defaultLogger.LogAt(level, Capture(1), format, args...)
}

// LogAt logs a message with an explicit call site through the default
// logger
func LogAt(level Level, caller CallerInfo, format string, args ...interface{}) {
	defaultLogger.LogAt(level, caller, format, args...)
}

// Emergency logs an emergency message through the default logger
func Emergency(format string, args ...interface{}) {
	defaultLogger.LogAt(LevelEmergency, Capture(1), format, args...)
}

// Alert logs an alert message through the default logger
func Alert(format string, args ...interface{}) {
	defaultLogger.LogAt(LevelAlert, Capture(1), format, args...)
}

// Critical logs a critical message through the default logger
func Critical(format string, args ...interface{}) {
	defaultLogger.LogAt(LevelCritical, Capture(1), format, args...)
}

// Error logs an error message through the default logger
func Error(format string, args ...interface{}) {
	defaultLogger.LogAt(LevelError, Capture(1), format, args...)
}

// Warning logs a warning message through the default logger
func Warning(format string, args ...interface{}) {
	defaultLogger.LogAt(LevelWarning, Capture(1), format, args...)
}

// Notice logs a notice message through the default logger
func Notice(format string, args ...interface{}) {
	defaultLogger.LogAt(LevelNotice, Capture(1), format, args...)
}

// Info logs an informational message through the default logger
func Info(format string, args ...interface{}) {
	defaultLogger.LogAt(LevelInfo, Capture(1), format, args...)
}

// Debug logs a debug message through the default logger
func Debug(format string, args ...interface{}) {
	defaultLogger.LogAt(LevelDebug, Capture(1), format, args...)
}
