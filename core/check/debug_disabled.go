// File: debug_disabled.go
// Title: Release Build Mode
// Description: Build-mode switches for release builds (-tags release):
//              debug-only operations compile to no-ops and failed
//              assertions log without aborting.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-24
// Modified: 2025-08-24
//
// Change History:
// - 2025-08-24 v0.1.0: Initial implementation

//go:build release

package check

const (
	// debugEnabled activates the Debug* operation twins
	debugEnabled = false

	// assertEnabled makes failed assertions abort
	assertEnabled = false
)
