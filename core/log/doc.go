// Package log provides the leveled logging core of the zcheck library.
//
// Package: log
// Title: zcheck Leveled Logging Core
// Description: This package implements a minimalist leveled logger with
//              pluggable output backends and a runtime-adjustable
//              severity threshold. Messages carry call-site metadata
//              (file, line, function) and are rendered into a bounded
//              buffer before being dispatched to the active backend.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-24
// Modified: 2025-08-24
//
// Change History:
// - 2025-08-24 v0.1.0: Initial implementation
//
// Features:
// - Eight syslog-ordered severity levels (Emergency through Debug)
// - Console (stdout/stderr), system log, and external facility backends
// - Runtime-adjustable threshold with reset to the open-time value
// - Bounded message rendering with truncation and a recognizable
//   placeholder on formatting failure
// - Two logger variants behind one interface: a runtime-configurable
//   logger with an Open/Close lifecycle and a statically configured
//   logger fixed at construction
// - Package-level default instance mirroring process-wide usage
//
// The package targets single-threaded, synchronous use. Logger state is
// unsynchronized; concurrent use from multiple goroutines requires
// external synchronization. This is a deliberate constraint, not an
// oversight.
//
// Usage:
//
//	// Runtime configuration
//	log.Open(log.BackendStdout, log.LevelWarning, "svc")
//	defer log.Close()
//
//	log.Error("request failed: %v", err) // emitted
//	log.Info("request served")           // suppressed below threshold
//
//	log.SetLevel(log.LevelDebug)
//	log.Debug("now visible")
//	log.ResetLevel()
//
//	// Static configuration
//	logger := log.NewStatic("tool", log.BackendStderr, log.LevelInfo)
//	logger.Notice("starting up")
package log
