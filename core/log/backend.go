// File: backend.go
// Title: Output Backend Definitions
// Description: Defines the closed set of output targets a logger can
//              dispatch rendered lines to, including the hook for an
//              external structured-logging facility.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-24
// Modified: 2025-08-24
//
// Change History:
// - 2025-08-24 v0.1.0: Initial implementation with console, syslog and
//   external backends

package log

import (
	"context"
	"log/slog"
	"strings"
)

// Backend selects the output destination for rendered log lines.
// Exactly one backend is active per logger at a time
type Backend int

const (
	// BackendStdout writes rendered lines to standard output
	BackendStdout Backend = iota

	// BackendStderr writes rendered lines to standard error
	BackendStderr

	// BackendSyslog writes to the system log facility. It requires
	// runtime setup and is therefore rejected by the static logger
	BackendSyslog

	// BackendExternal delegates rendered lines to an external leveled
	// logging facility supplied via Config.External
	BackendExternal
)

// String returns the string representation of the backend
func (b Backend) String() string {
	switch b {
	case BackendStdout:
		return "stdout"
	case BackendStderr:
		return "stderr"
	case BackendSyslog:
		return "syslog"
	case BackendExternal:
		return "external"
	default:
		return "unknown"
	}
}

// Valid reports whether the backend is one of the defined values
func (b Backend) Valid() bool {
	return b >= BackendStdout && b <= BackendExternal
}

// ParseBackend parses a string into a backend selector
func ParseBackend(backend string) (Backend, error) {
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case "stdout", "console", "out":
		return BackendStdout, nil
	case "stderr", "err":
		return BackendStderr, nil
	case "syslog", "system":
		return BackendSyslog, nil
	case "external", "ext":
		return BackendExternal, nil
	default:
		return BackendStderr, &ParseError{
			Input: backend,
			Type:  "backend",
		}
	}
}

// AllBackends returns all defined backends
func AllBackends() []Backend {
	return []Backend{
		BackendStdout,
		BackendStderr,
		BackendSyslog,
		BackendExternal,
	}
}

// ExternalFunc receives log output for the external backend. It is
// called with the syslog-style priority of the message, the module name
// as tag, and the fully rendered line
type ExternalFunc func(priority int, tag string, line string)

// NewSlogExternal adapts a slog.Logger into an ExternalFunc so the
// external backend can feed a structured logging pipeline. The eight
// severity levels collapse onto slog's four
func NewSlogExternal(logger *slog.Logger) ExternalFunc {
	return func(priority int, tag string, line string) {
		var level slog.Level
		switch {
		case priority <= LevelError.SyslogPriority():
			level = slog.LevelError
		case priority == LevelWarning.SyslogPriority():
			level = slog.LevelWarn
		case priority == LevelDebug.SyslogPriority():
			level = slog.LevelDebug
		default:
			level = slog.LevelInfo
		}
		logger.Log(context.Background(), level, line, "module", tag)
	}
}
