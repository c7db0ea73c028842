// File: assert.go
// Title: Runtime Assertions
// Description: Implements runtime assertions that log the failure at
//              the highest severity before invoking the abort primitive,
//              with a permissive fallback when assertions are disabled.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-24
// Modified: 2025-08-24
//
// Change History:
// - 2025-08-24 v0.1.0: Initial implementation

package check

import (
	"fmt"

	"github.com/msto63/zcheck/core/log"
)

// assertAborts controls whether a failed assertion aborts. It follows
// the build mode (see debug_enabled.go / debug_disabled.go); a variable
// so the disabled path stays testable
var assertAborts = assertEnabled

// Assert verifies an invariant. On failure it emits two emergency
// records - a failed-assertion notice carrying the call site and the
// caller's message - and then panics. In release builds (assertions
// disabled) it instead emits one further alert noting that execution
// continues, and returns false; callers must treat that as "assertion
// was logged but not enforced".
//
// Returns true when the condition holds
func (c *Checker) Assert(cond bool, format string, args ...interface{}) bool {
	return c.assert(2, cond, format, args)
}

func (c *Checker) assert(skip int, cond bool, format string, args []interface{}) bool {
	if cond {
		return true
	}

	caller := log.Capture(skip)
	c.logger.LogAt(log.LevelEmergency, caller, "runtime assertion failed in %s", caller.Function)
	c.logger.LogAt(log.LevelEmergency, caller, format, args...)

	if assertAborts {
		panic("check: assertion failed: " + fmt.Sprintf(format, args...))
	}

	c.logger.LogAt(log.LevelAlert, caller, "assertions are disabled, continuing despite failed assertion")
	return false
}

// Assert runs Checker.Assert against the default logger
func Assert(cond bool, format string, args ...interface{}) bool {
	c := Checker{logger: log.Default()}
	return c.assert(2, cond, format, args)
}
