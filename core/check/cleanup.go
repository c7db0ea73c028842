// File: cleanup.go
// Title: Cleanup Stack
// Description: Implements the LIFO stack of undo actions that replaces
//              per-call-site recovery labels in staged resource
//              acquisition.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-24
// Modified: 2025-08-24
//
// Change History:
// - 2025-08-24 v0.1.0: Initial implementation

package check

// CleanupStack holds reversible undo actions registered during staged
// resource acquisition. Unwinding runs them in LIFO order so each stage
// releases only what was acquired before the failure point.
//
// The zero value is ready to use
type CleanupStack struct {
	actions []func()
}

// NewCleanupStack returns an empty cleanup stack
func NewCleanupStack() *CleanupStack {
	return &CleanupStack{}
}

// Push registers an undo action. Nil actions are ignored
func (s *CleanupStack) Push(fn func()) {
	if fn == nil {
		return
	}
	s.actions = append(s.actions, fn)
}

// Len returns the number of registered undo actions
func (s *CleanupStack) Len() int {
	return len(s.actions)
}

// Unwind runs all registered undo actions in LIFO order and empties
// the stack. Each action runs exactly once; unwinding an empty stack
// is a no-op
func (s *CleanupStack) Unwind() {
	for i := len(s.actions) - 1; i >= 0; i-- {
		s.actions[i]()
	}
	s.actions = s.actions[:0]
}
