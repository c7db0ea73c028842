// File: debug_enabled.go
// Title: Debug Build Mode (Default)
// Description: Build-mode switches for the default (non-release) build:
//              debug-only operations are active and failed assertions
//              abort.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-24
// Modified: 2025-08-24
//
// Change History:
// - 2025-08-24 v0.1.0: Initial implementation

//go:build !release

package check

const (
	// debugEnabled activates the Debug* operation twins
	debugEnabled = true

	// assertEnabled makes failed assertions abort
	assertEnabled = true
)
