// File: debug.go
// Title: Debug-Only Operation Twins
// Description: Debug variants of every check operation. Under the
//              release build tag they reduce to no-ops with zero
//              logging and no status mutation, supporting debug-only
//              defensive checks at no release cost.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-24
// Modified: 2025-08-24
//
// Change History:
// - 2025-08-24 v0.1.0: Initial implementation
//
// Contract note: Go evaluates argument expressions before the call, so
// unlike a macro the disabled twins cannot suppress side effects inside
// the arguments themselves. Only rendering, logging, status mutation
// and aborting are suppressed. Keep side effects out of the arguments
// of debug-only checks.

package check

import (
	"github.com/msto63/zcheck/core/log"
)

// DebugCheck is Check in debug builds and a no-op returning false in
// release builds
func (c *Checker) DebugCheck(cond bool, status *int, newStatus int, level log.Level, format string, args ...interface{}) bool {
	if !debugEnabled {
		return false
	}
	return c.check(2, cond, nil, status, newStatus, level, format, args)
}

// DebugCheckUnwind is CheckUnwind in debug builds and a no-op returning
// false in release builds
func (c *Checker) DebugCheckUnwind(cond bool, stack *CleanupStack, status *int, newStatus int, level log.Level, format string, args ...interface{}) bool {
	if !debugEnabled {
		return false
	}
	return c.check(2, cond, stack, status, newStatus, level, format, args)
}

// DebugCheckContinue is CheckContinue in debug builds and a no-op
// returning false in release builds
func (c *Checker) DebugCheckContinue(cond bool, status *int, newStatus int, level log.Level, format string, args ...interface{}) bool {
	if !debugEnabled {
		return false
	}
	return c.check(2, cond, nil, status, newStatus, level, format, args)
}

// DebugLogIf is LogIf in debug builds and a no-op in release builds
func (c *Checker) DebugLogIf(cond bool, level log.Level, format string, args ...interface{}) {
	if !debugEnabled || !cond {
		return
	}
	c.logger.LogAt(level, log.Capture(1), format, args...)
}

// DebugAssert is Assert in debug builds and a no-op returning true in
// release builds (the assertion is not even logged)
func (c *Checker) DebugAssert(cond bool, format string, args ...interface{}) bool {
	if !debugEnabled {
		return true
	}
	return c.assert(2, cond, format, args)
}

// DebugCheck runs Checker.DebugCheck against the default logger
func DebugCheck(cond bool, status *int, newStatus int, level log.Level, format string, args ...interface{}) bool {
	if !debugEnabled {
		return false
	}
	c := Checker{logger: log.Default()}
	return c.check(2, cond, nil, status, newStatus, level, format, args)
}

// DebugCheckUnwind runs Checker.DebugCheckUnwind against the default
// logger
func DebugCheckUnwind(cond bool, stack *CleanupStack, status *int, newStatus int, level log.Level, format string, args ...interface{}) bool {
	if !debugEnabled {
		return false
	}
	c := Checker{logger: log.Default()}
	return c.check(2, cond, stack, status, newStatus, level, format, args)
}

// DebugCheckContinue runs Checker.DebugCheckContinue against the
// default logger
func DebugCheckContinue(cond bool, status *int, newStatus int, level log.Level, format string, args ...interface{}) bool {
	if !debugEnabled {
		return false
	}
	c := Checker{logger: log.Default()}
	return c.check(2, cond, nil, status, newStatus, level, format, args)
}

// DebugLogIf runs Checker.DebugLogIf against the default logger
func DebugLogIf(cond bool, level log.Level, format string, args ...interface{}) {
	if !debugEnabled || !cond {
		return
	}
	log.Default().LogAt(level, log.Capture(1), format, args...)
}

// DebugAssert runs Checker.DebugAssert against the default logger
func DebugAssert(cond bool, format string, args ...interface{}) bool {
	if !debugEnabled {
		return true
	}
	c := Checker{logger: log.Default()}
	return c.assert(2, cond, format, args)
}
