// File: stringx.go
// Title: String Utility Functions
// Description: Implements the small set of string helpers used across
//              the zcheck packages: blank detection, defaulting, and
//              Unicode-safe truncation.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-24
// Modified: 2025-08-24
//
// Change History:
// - 2025-08-24 v0.1.0: Initial implementation

package stringx

import (
	"unicode"
	"unicode/utf8"
)

// IsBlank returns true if the string is empty or contains only
// whitespace
func IsBlank(s string) bool {
	if len(s) == 0 {
		return true
	}
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// IsNotBlank returns true if the string contains non-whitespace
// characters
func IsNotBlank(s string) bool {
	return !IsBlank(s)
}

// DefaultIfBlank returns the default value when the string is blank,
// otherwise the string itself
func DefaultIfBlank(s, defaultValue string) string {
	if IsBlank(s) {
		return defaultValue
	}
	return s
}

// Truncate truncates a string to at most maxLen runes, appending the
// ellipsis when truncation happened. Unicode-aware: multi-byte
// characters are never split
func Truncate(s string, maxLen int, ellipsis string) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}

	ellipsisLen := utf8.RuneCountInString(ellipsis)
	if ellipsisLen >= maxLen {
		runes := []rune(ellipsis)
		return string(runes[:maxLen])
	}

	runes := []rune(s)
	return string(runes[:maxLen-ellipsisLen]) + ellipsis
}
