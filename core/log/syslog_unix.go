// File: syslog_unix.go
// Title: System Log Backend (Unix)
// Description: Connects the syslog backend to the platform's system log
//              facility via the standard library, mapping severity
//              levels directly onto syslog priorities.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-24
// Modified: 2025-08-24
//
// Change History:
// - 2025-08-24 v0.1.0: Initial implementation on log/syslog

//go:build !windows && !plan9

package log

import (
	"log/syslog"
)

// syslogConn is the handle to the system log facility held by an open
// logger using the syslog backend
type syslogConn interface {
	Emit(priority int, message string) error
	Close() error
}

// syslogWriter wraps the standard library syslog writer
type syslogWriter struct {
	w *syslog.Writer
}

// openSyslog opens a system log handle tied to the module name, with
// console fallback and the local0 facility
func openSyslog(tag string) (syslogConn, error) {
	w, err := syslog.New(syslog.LOG_INFO|syslog.LOG_LOCAL0, tag)
	if err != nil {
		return nil, err
	}
	return &syslogWriter{w: w}, nil
}

// Emit writes a message at the given syslog priority
func (s *syslogWriter) Emit(priority int, message string) error {
	switch Level(priority) {
	case LevelEmergency:
		return s.w.Emerg(message)
	case LevelAlert:
		return s.w.Alert(message)
	case LevelCritical:
		return s.w.Crit(message)
	case LevelError:
		return s.w.Err(message)
	case LevelWarning:
		return s.w.Warning(message)
	case LevelNotice:
		return s.w.Notice(message)
	case LevelInfo:
		return s.w.Info(message)
	default:
		return s.w.Debug(message)
	}
}

// Close releases the system log handle
func (s *syslogWriter) Close() error {
	return s.w.Close()
}
