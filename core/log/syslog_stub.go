// File: syslog_stub.go
// Title: System Log Backend (Unsupported Platforms)
// Description: Stub for platforms without a system log facility. Opening
//              the syslog backend reports an error so the logger falls
//              back to stderr.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-24
// Modified: 2025-08-24
//
// Change History:
// - 2025-08-24 v0.1.0: Initial stub implementation

//go:build windows || plan9

package log

import (
	"errors"
)

// syslogConn is the handle to the system log facility held by an open
// logger using the syslog backend
type syslogConn interface {
	Emit(priority int, message string) error
	Close() error
}

// openSyslog always fails on platforms without a system log facility
func openSyslog(tag string) (syslogConn, error) {
	return nil, errors.New("syslog is not supported on this platform")
}
