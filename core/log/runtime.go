// File: runtime.go
// Title: Runtime-Configurable Logger
// Description: Implements the dynamically configured logger with an
//              explicit Open/Close lifecycle, runtime-adjustable
//              threshold, and fail-open handling of configuration
//              misuse.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-24
// Modified: 2025-08-24
//
// Change History:
// - 2025-08-24 v0.1.0: Initial implementation with open/close lifecycle

package log

import (
	"fmt"

	"github.com/msto63/zcheck/utils/stringx"
)

// Runtime is the dynamically configured logger. Its zero value is
// closed; Open must be called before logging. A closed Runtime reports
// attempts to log through it on stderr instead of dropping them
type Runtime struct {
	module    string
	backend   Backend
	external  ExternalFunc
	sys       syslogConn
	level     Level
	levelOrig Level
	opened    bool
}

// NewRuntime returns a closed runtime-configurable logger
func NewRuntime() *Runtime {
	return &Runtime{}
}

// Open resolves the backend, stores the module name and sets both the
// current and original threshold. Calling Open while already open logs
// exactly one warning through the existing configuration and changes
// nothing. Configuration problems never fail: an unknown or unusable
// backend falls back to stderr with a warning so diagnostics stay
// available
func (r *Runtime) Open(backend Backend, level Level, module string) {
	r.openConfig(Capture(1), Config{Backend: backend, Level: level, Module: module})
}

// OpenConfig is Open with a full Config, required for the external
// backend which needs a sink
func (r *Runtime) OpenConfig(cfg Config) {
	r.openConfig(Capture(1), cfg)
}

// openConfig carries the shared open semantics. caller is the user
// call site reported by the double-open warning
func (r *Runtime) openConfig(caller CallerInfo, cfg Config) {
	if r.opened {
		r.LogAt(LevelWarning, caller, "Open called twice for module %s", r.module)
		return
	}

	r.module = stringx.Truncate(stringx.DefaultIfBlank(cfg.Module, DefaultModuleName), MaxModuleNameLen, "")
	r.level = cfg.Level
	r.levelOrig = cfg.Level

	switch cfg.Backend {
	case BackendStdout, BackendStderr:
		r.backend = cfg.Backend

	case BackendSyslog:
		sys, err := openSyslog(r.module)
		if err != nil {
			fmt.Fprintf(stderr, "Warning: syslog unavailable (%v); falling back to stderr\n", err)
			r.backend = BackendStderr
			break
		}
		r.sys = sys
		r.backend = BackendSyslog

	case BackendExternal:
		if cfg.External == nil {
			fmt.Fprintln(stderr, "Warning: external backend without sink; falling back to stderr")
			r.backend = BackendStderr
			break
		}
		r.external = cfg.External
		r.backend = BackendExternal

	default:
		fmt.Fprintf(stderr, "Warning: unknown log backend (%d); falling back to stderr\n", int(cfg.Backend))
		r.backend = BackendStderr
	}

	r.opened = true
}

// Close releases backend resources and returns the logger to the
// closed state. Closing a closed logger is a no-op
func (r *Runtime) Close() {
	if r.sys != nil {
		r.sys.Close()
		r.sys = nil
	}
	r.module = ""
	r.external = nil
	r.backend = BackendStdout
	r.opened = false
}

// Opened reports whether the logger is currently open
func (r *Runtime) Opened() bool {
	return r.opened
}

// SetLevel mutates the current threshold. No bounds validation happens
// here; out-of-range levels are sanitized at the formatting boundary
func (r *Runtime) SetLevel(level Level) {
	r.level = level
}

// ResetLevel restores the threshold captured at Open time
func (r *Runtime) ResetLevel() {
	r.level = r.levelOrig
}

// Level returns the current threshold
func (r *Runtime) Level() Level {
	return r.level
}

// Module returns the configured module name
func (r *Runtime) Module() string {
	return r.module
}

// Log renders and dispatches a message, deriving the call site
func (r *Runtime) Log(level Level, format string, args ...interface{}) {
	r.LogAt(level, Capture(1), format, args...)
}

// LogAt renders and dispatches a message for an explicit call site.
// Before Open it emits a fixed error notice on stderr and does nothing
// else. An out-of-range level is clamped to debug with a warning
func (r *Runtime) LogAt(level Level, caller CallerInfo, format string, args ...interface{}) {
	if !r.opened {
		fmt.Fprintln(stderr, "Error: may not log before Open()")
		return
	}

	if !level.Valid() {
		r.emit(LevelWarning, caller, fmt.Sprintf("invalid severity (%d); clamping to debug", int(level)))
		level = level.Sanitize()
	}

	if !level.ShouldLog(r.level) {
		return
	}

	msg, ok := render(format, args)
	if !ok {
		return
	}
	r.emit(level, caller, msg)
}

func (r *Runtime) emit(level Level, caller CallerInfo, msg string) {
	if !level.ShouldLog(r.level) {
		return
	}
	dispatch(r.backend, r.sys, r.external, r.module, level, caller, msg)
}

// Emergency logs an emergency message
func (r *Runtime) Emergency(format string, args ...interface{}) {
	r.LogAt(LevelEmergency, Capture(1), format, args...)
}

// Alert logs an alert message
func (r *Runtime) Alert(format string, args ...interface{}) {
	r.LogAt(LevelAlert, Capture(1), format, args...)
}

// Critical logs a critical message
func (r *Runtime) Critical(format string, args ...interface{}) {
	r.LogAt(LevelCritical, Capture(1), format, args...)
}

// Error logs an error message
func (r *Runtime) Error(format string, args ...interface{}) {
	r.LogAt(LevelError, Capture(1), format, args...)
}

// Warning logs a warning message
func (r *Runtime) Warning(format string, args ...interface{}) {
	r.LogAt(LevelWarning, Capture(1), format, args...)
}

// Notice logs a notice message
func (r *Runtime) Notice(format string, args ...interface{}) {
	r.LogAt(LevelNotice, Capture(1), format, args...)
}

// Info logs an informational message
func (r *Runtime) Info(format string, args ...interface{}) {
	r.LogAt(LevelInfo, Capture(1), format, args...)
}

// Debug logs a debug message
func (r *Runtime) Debug(format string, args ...interface{}) {
	r.LogAt(LevelDebug, Capture(1), format, args...)
}
