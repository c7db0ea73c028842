// Package stringx provides the string helpers shared by the zcheck
// packages.
//
// Package: stringx
// Title: String Utilities
// Description: Blank detection, defaulting and Unicode-safe truncation.
//              Deliberately small; anything the standard library already
//              does well is not duplicated here.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-24
// Modified: 2025-08-24
//
// Change History:
// - 2025-08-24 v0.1.0: Initial implementation
package stringx
