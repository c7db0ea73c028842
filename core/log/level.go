// File: level.go
// Title: Severity Level Definitions
// Description: Defines the syslog-ordered severity levels used to filter
//              and label log output. Lower ordinals are more severe, so
//              the threshold test is an ordinal comparison against the
//              configured minimum.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-24
// Modified: 2025-08-24
//
// Change History:
// - 2025-08-24 v0.1.0: Initial implementation with syslog-style levels

package log

import (
	"strings"
)

// Level represents the severity of a log message
type Level int

const (
	// LevelEmergency indicates the system is unusable
	LevelEmergency Level = iota

	// LevelAlert indicates action must be taken immediately
	LevelAlert

	// LevelCritical indicates critical conditions
	LevelCritical

	// LevelError indicates error conditions
	LevelError

	// LevelWarning indicates warning conditions
	LevelWarning

	// LevelNotice indicates a normal but significant condition
	LevelNotice

	// LevelInfo indicates informational messages
	LevelInfo

	// LevelDebug indicates debug-level messages
	// This is the least severe legal level; out-of-range values are
	// clamped to it by Sanitize
	LevelDebug
)

// String returns the string representation of the level
func (l Level) String() string {
	switch l {
	case LevelEmergency:
		return "emergency"
	case LevelAlert:
		return "alert"
	case LevelCritical:
		return "critical"
	case LevelError:
		return "error"
	case LevelWarning:
		return "warning"
	case LevelNotice:
		return "notice"
	case LevelInfo:
		return "info"
	case LevelDebug:
		return "debug"
	default:
		return "unknown"
	}
}

// Label returns the uppercase label used in rendered log lines
func (l Level) Label() string {
	switch l {
	case LevelEmergency:
		return "EMERGENCY"
	case LevelAlert:
		return "ALERT"
	case LevelCritical:
		return "CRITICAL"
	case LevelError:
		return "ERROR"
	case LevelWarning:
		return "WARNING"
	case LevelNotice:
		return "NOTICE"
	case LevelInfo:
		return "INFO"
	case LevelDebug:
		return "DEBUG"
	default:
		return "UNKNOWN_LEVEL"
	}
}

// ShortString returns a short string representation of the level
func (l Level) ShortString() string {
	switch l {
	case LevelEmergency:
		return "EMG"
	case LevelAlert:
		return "ALT"
	case LevelCritical:
		return "CRT"
	case LevelError:
		return "ERR"
	case LevelWarning:
		return "WRN"
	case LevelNotice:
		return "NTC"
	case LevelInfo:
		return "INF"
	case LevelDebug:
		return "DBG"
	default:
		return "???"
	}
}

// Valid reports whether the level is one of the eight defined values
func (l Level) Valid() bool {
	return l >= LevelEmergency && l <= LevelDebug
}

// Sanitize clamps an out-of-range level to the least severe legal value
func (l Level) Sanitize() Level {
	if !l.Valid() {
		return LevelDebug
	}
	return l
}

// ShouldLog returns true if a message at this level passes the given
// threshold. The threshold is inclusive: a message is emitted when its
// ordinal is at most the threshold's ordinal
func (l Level) ShouldLog(threshold Level) bool {
	return l <= threshold
}

// SyslogPriority returns the platform log priority for the level.
// The eight levels map directly onto the syslog priority scale
func (l Level) SyslogPriority() int {
	return int(l)
}

// ParseLevel parses a string into a severity level
func ParseLevel(level string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "emergency", "emerg", "emg":
		return LevelEmergency, nil
	case "alert", "alt":
		return LevelAlert, nil
	case "critical", "crit", "crt":
		return LevelCritical, nil
	case "error", "err":
		return LevelError, nil
	case "warning", "warn", "wrn":
		return LevelWarning, nil
	case "notice", "ntc":
		return LevelNotice, nil
	case "info", "inf", "informational":
		return LevelInfo, nil
	case "debug", "dbg":
		return LevelDebug, nil
	default:
		return DefaultLevel(), &ParseError{
			Input: level,
			Type:  "level",
		}
	}
}

// ParseError represents an error parsing a log configuration value
type ParseError struct {
	Input string
	Type  string
}

// Error implements the error interface
func (e *ParseError) Error() string {
	return "invalid " + e.Type + ": " + e.Input
}

// AllLevels returns all defined severity levels, most severe first
func AllLevels() []Level {
	return []Level{
		LevelEmergency,
		LevelAlert,
		LevelCritical,
		LevelError,
		LevelWarning,
		LevelNotice,
		LevelInfo,
		LevelDebug,
	}
}

// DefaultLevel returns the default threshold for production use
func DefaultLevel() Level {
	return LevelInfo
}

// DevelopmentLevel returns the default threshold for development use
func DevelopmentLevel() Level {
	return LevelDebug
}
