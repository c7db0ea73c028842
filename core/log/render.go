// File: render.go
// Title: Message Rendering Pipeline
// Description: Renders a formatted message into a bounded buffer and
//              composes the final output line from module name, severity
//              label, call-site metadata and the rendered message.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-24
// Modified: 2025-08-24
//
// Change History:
// - 2025-08-24 v0.1.0: Initial implementation with bounded rendering

package log

import (
	"fmt"
	"runtime"
	"strings"
)

// MaxMessageLen is the maximum length in bytes of a rendered message.
// Longer renders are truncated, never overflowed
const MaxMessageLen = 512

// Rendered messages must leave room for the format-failure placeholder
const _ uint = MaxMessageLen - uint(len(renderFailedPrefix)) - 1

// renderFailedPrefix marks a message whose format operation failed.
// The original format string is preserved for forensic value
const renderFailedPrefix = "(failed to format message) "

// CallerInfo identifies the call site of a log or check operation
type CallerInfo struct {
	File     string // base name only, path prefix stripped
	Line     int
	Function string // function base name
}

// Capture derives the caller information for the frame skip levels up
// the stack. skip = 0 reports the caller of Capture itself
func Capture(skip int) CallerInfo {
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return CallerInfo{File: "???", Line: 0, Function: "???"}
	}

	function := "???"
	if fn := runtime.FuncForPC(pc); fn != nil {
		function = fn.Name()
		if idx := strings.LastIndex(function, "."); idx != -1 {
			function = function[idx+1:]
		}
	}

	if idx := strings.LastIndex(file, "/"); idx != -1 {
		file = file[idx+1:]
	}

	return CallerInfo{File: file, Line: line, Function: function}
}

// hasFormatErrorMarker reports whether a formatted string contains one
// of fmt's error markers. Markers always open a parenthesized clause:
// "%!(" for NOVERB/EXTRA, or "%!" plus a single verb byte and "(" for
// BADVERB/MISSING/bad-operand. A bare "%!" inside an operand value does
// not match
func hasFormatErrorMarker(s string) bool {
	for i := 0; ; {
		j := strings.Index(s[i:], "%!")
		if j < 0 {
			return false
		}
		rest := s[i+j+2:]
		if strings.HasPrefix(rest, "(") {
			return true
		}
		if len(rest) >= 2 && rest[1] == '(' {
			return true
		}
		i += j + 2
	}
}

// render produces the bounded message text for a log call. The second
// return value is false when there is nothing to emit.
//
// Go's fmt package does not report formatting errors; a verb/operand
// mismatch instead leaves "%!" error markers in the output. A render
// containing such markers is replaced by a recognizable placeholder
// that still carries the original format string
func render(format string, args []interface{}) (string, bool) {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
		if hasFormatErrorMarker(msg) {
			msg = renderFailedPrefix + format
		}
	}
	if len(msg) == 0 {
		return "", false
	}
	if len(msg) > MaxMessageLen {
		msg = msg[:MaxMessageLen]
	}
	return msg, true
}

// renderLine composes the console output line:
//
//	module: [LABEL] file:line:func: message
func renderLine(module string, level Level, caller CallerInfo, msg string) string {
	return fmt.Sprintf("%s: [%s] %s:%d:%s: %s\n",
		module, level.Label(), caller.File, caller.Line, caller.Function, msg)
}

// renderTail composes the module-less portion used by the syslog and
// external backends, which carry the module name as a separate tag:
//
//	[LABEL] file:line:func: message
func renderTail(level Level, caller CallerInfo, msg string) string {
	return fmt.Sprintf("[%s] %s:%d:%s: %s",
		level.Label(), caller.File, caller.Line, caller.Function, msg)
}
