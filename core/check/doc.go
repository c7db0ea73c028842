// Package check provides fused error-checking operations on top of the
// zcheck logging core.
//
// Package: check
// Title: zcheck Check/Assert Layer
// Description: This package fuses condition testing, conditional
//              logging, status-code mutation, and early-exit signalling
//              into single calls, giving Go code the unobtrusive yet
//              rigorous error checking style of the classic
//              goto-cleanup pattern without unstructured jumps.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-24
// Modified: 2025-08-24
//
// Change History:
// - 2025-08-24 v0.1.0: Initial implementation
//
// The core shape replaces the jump to a cleanup label with an early
// return driven by the boolean result:
//
//	func stage() int {
//	    status := 0
//	    f, err := os.Open(path)
//	    if check.Check(err != nil, &status, -1, log.LevelError, "open %s: %v", path, err) {
//	        return status
//	    }
//	    defer f.Close()
//	    ...
//	    return status
//	}
//
// Routines with several distinct cleanup regions use a CleanupStack:
// each acquisition stage pushes its undo action, and CheckUnwind runs
// the stack in LIFO order when a later stage fails, releasing exactly
// what was acquired so far.
//
// Every operation has a Debug* twin that reduces to a no-op under the
// release build tag (go build -tags release). Argument expressions are
// still evaluated - Go has no way to suppress that - so keep side
// effects out of debug-only check arguments.
//
// Compile-time assertions need no runtime support: use Go's constant
// arithmetic so a violated invariant breaks the build, e.g.
//
//	const _ uint = bufSize - minBufSize // fails to compile when bufSize < minBufSize
//	var _ [8]struct{} = [numLevels]struct{}{} // pins an enum's size
package check
