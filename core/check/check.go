// File: check.go
// Title: Fused Check Operations
// Description: Implements the check operations that fuse condition
//              testing, conditional logging, status-code mutation, and
//              early-exit signalling into a single call.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-24
// Modified: 2025-08-24
//
// Change History:
// - 2025-08-24 v0.1.0: Initial implementation of the check operations

package check

import (
	"github.com/msto63/zcheck/core/log"
)

// Checker binds the check operations to a logger. The zero value is
// not usable; construct with New. Package-level functions provide the
// same operations against the default logger
type Checker struct {
	logger log.Logger
}

// New creates a Checker bound to the given logger. A nil logger binds
// the package default
func New(logger log.Logger) *Checker {
	if logger == nil {
		logger = log.Default()
	}
	return &Checker{logger: logger}
}

// Logger returns the bound logger
func (c *Checker) Logger() log.Logger {
	return c.logger
}

// Check tests an error condition. When cond is true it logs the
// message at the given level, assigns newStatus into the caller-owned
// status variable, and returns true so the caller can exit to its
// cleanup path:
//
//	if check.Check(err != nil, &status, -1, log.LevelError, "read failed: %v", err) {
//	    return status
//	}
//
// When cond is false this is a complete no-op: nothing is logged, the
// status variable is untouched, and the message is never rendered
func (c *Checker) Check(cond bool, status *int, newStatus int, level log.Level, format string, args ...interface{}) bool {
	return c.check(2, cond, nil, status, newStatus, level, format, args)
}

// CheckUnwind is Check with a caller-supplied cleanup stack standing in
// for a per-call-site recovery label. On a tripped condition the stack
// is unwound (LIFO) after the status assignment, releasing exactly the
// resources acquired so far
func (c *Checker) CheckUnwind(cond bool, stack *CleanupStack, status *int, newStatus int, level log.Level, format string, args ...interface{}) bool {
	return c.check(2, cond, stack, status, newStatus, level, format, args)
}

// CheckContinue is Check without the early-exit signal: the message is
// logged and the status assigned, but execution is meant to fall
// through to the next statement. The condition is returned purely for
// callers that want to inspect it
func (c *Checker) CheckContinue(cond bool, status *int, newStatus int, level log.Level, format string, args ...interface{}) bool {
	return c.check(2, cond, nil, status, newStatus, level, format, args)
}

// LogIf logs the message at the given level when cond is true. No
// status mutation, no exit signal
func (c *Checker) LogIf(cond bool, level log.Level, format string, args ...interface{}) {
	if !cond {
		return
	}
	c.logger.LogAt(level, log.Capture(1), format, args...)
}

// check carries the shared semantics. skip is the caller-capture depth
// relative to this frame
func (c *Checker) check(skip int, cond bool, stack *CleanupStack, status *int, newStatus int, level log.Level, format string, args []interface{}) bool {
	if !cond {
		return false
	}

	c.logger.LogAt(level, log.Capture(skip), format, args...)
	if status != nil {
		*status = newStatus
	}
	if stack != nil {
		stack.Unwind()
	}
	return true
}

// Check runs Checker.Check against the default logger
func Check(cond bool, status *int, newStatus int, level log.Level, format string, args ...interface{}) bool {
	c := Checker{logger: log.Default()}
	return c.check(2, cond, nil, status, newStatus, level, format, args)
}

// CheckUnwind runs Checker.CheckUnwind against the default logger
func CheckUnwind(cond bool, stack *CleanupStack, status *int, newStatus int, level log.Level, format string, args ...interface{}) bool {
	c := Checker{logger: log.Default()}
	return c.check(2, cond, stack, status, newStatus, level, format, args)
}

// CheckContinue runs Checker.CheckContinue against the default logger
func CheckContinue(cond bool, status *int, newStatus int, level log.Level, format string, args ...interface{}) bool {
	c := Checker{logger: log.Default()}
	return c.check(2, cond, nil, status, newStatus, level, format, args)
}

// LogIf runs Checker.LogIf against the default logger
func LogIf(cond bool, level log.Level, format string, args ...interface{}) {
	if !cond {
		return
	}
	log.Default().LogAt(level, log.Capture(1), format, args...)
}
