// File: static.go
// Title: Statically Configured Logger
// Description: Implements the fixed-configuration logger variant that
//              binds module name, backend and initial threshold at
//              construction time and carries no Open/Close lifecycle.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-24
// Modified: 2025-08-24
//
// Change History:
// - 2025-08-24 v0.1.0: Initial implementation of the fixed-config variant

package log

import (
	"fmt"

	"github.com/msto63/zcheck/utils/stringx"
)

// Static is the fixed-configuration logger. Module name, backend and
// initial threshold are bound at construction; there is no open/close
// lifecycle and no "not yet opened" guard. The syslog backend requires
// runtime setup and is rejected with a fall back to stderr.
//
// Unlike Runtime, an out-of-range severity passed to Log is treated as
// an internal-invariant violation and panics: in the fixed-config
// variant it signals a programming error in the caller, not a
// recoverable condition
type Static struct {
	module    string
	backend   Backend
	external  ExternalFunc
	level     Level
	levelOrig Level
}

// NewStatic creates a fixed-configuration logger for a console backend
func NewStatic(module string, backend Backend, level Level) *Static {
	return NewStaticConfig(Config{Backend: backend, Level: level, Module: module})
}

// NewStaticConfig creates a fixed-configuration logger from a Config
func NewStaticConfig(cfg Config) *Static {
	s := &Static{
		module:    stringx.Truncate(stringx.DefaultIfBlank(cfg.Module, DefaultModuleName), MaxModuleNameLen, ""),
		level:     cfg.Level,
		levelOrig: cfg.Level,
	}

	switch cfg.Backend {
	case BackendStdout, BackendStderr:
		s.backend = cfg.Backend
	case BackendExternal:
		if cfg.External != nil {
			s.external = cfg.External
			s.backend = BackendExternal
			break
		}
		fmt.Fprintln(stderr, "Warning: external backend without sink; falling back to stderr")
		s.backend = BackendStderr
	case BackendSyslog:
		fmt.Fprintln(stderr, "Warning: syslog backend requires runtime configuration; falling back to stderr")
		s.backend = BackendStderr
	default:
		fmt.Fprintf(stderr, "Warning: unknown log backend (%d); falling back to stderr\n", int(cfg.Backend))
		s.backend = BackendStderr
	}

	return s
}

// SetLevel mutates the current threshold
func (s *Static) SetLevel(level Level) {
	s.level = level
}

// ResetLevel restores the threshold the logger was constructed with
func (s *Static) ResetLevel() {
	s.level = s.levelOrig
}

// Level returns the current threshold
func (s *Static) Level() Level {
	return s.level
}

// Module returns the configured module name
func (s *Static) Module() string {
	return s.module
}

// Log renders and dispatches a message, deriving the call site
func (s *Static) Log(level Level, format string, args ...interface{}) {
	s.LogAt(level, Capture(1), format, args...)
}

// LogAt renders and dispatches a message for an explicit call site.
// Panics on an out-of-range level
func (s *Static) LogAt(level Level, caller CallerInfo, format string, args ...interface{}) {
	if !level.Valid() {
		panic(fmt.Sprintf("log: invalid severity %d passed to static logger", int(level)))
	}

	if !level.ShouldLog(s.level) {
		return
	}

	msg, ok := render(format, args)
	if !ok {
		return
	}
	dispatch(s.backend, nil, s.external, s.module, level, caller, msg)
}

// Emergency logs an emergency message
func (s *Static) Emergency(format string, args ...interface{}) {
	s.LogAt(LevelEmergency, Capture(1), format, args...)
}

// Alert logs an alert message
func (s *Static) Alert(format string, args ...interface{}) {
	s.LogAt(LevelAlert, Capture(1), format, args...)
}

// Critical logs a critical message
func (s *Static) Critical(format string, args ...interface{}) {
	s.LogAt(LevelCritical, Capture(1), format, args...)
}

// Error logs an error message
func (s *Static) Error(format string, args ...interface{}) {
	s.LogAt(LevelError, Capture(1), format, args...)
}

// Warning logs a warning message
func (s *Static) Warning(format string, args ...interface{}) {
	s.LogAt(LevelWarning, Capture(1), format, args...)
}

// Notice logs a notice message
func (s *Static) Notice(format string, args ...interface{}) {
	s.LogAt(LevelNotice, Capture(1), format, args...)
}

// Info logs an informational message
func (s *Static) Info(format string, args ...interface{}) {
	s.LogAt(LevelInfo, Capture(1), format, args...)
}

// Debug logs a debug message
func (s *Static) Debug(format string, args ...interface{}) {
	s.LogAt(LevelDebug, Capture(1), format, args...)
}
