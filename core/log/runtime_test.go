// File: runtime_test.go
// Title: Runtime Logger Tests
// Description: Tests for the open/close lifecycle, threshold filtering,
//              fallback handling and output composition of the
//              runtime-configurable logger.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-24
// Modified: 2025-08-24
//
// Change History:
// - 2025-08-24 v0.1.0: Initial implementation

package log

import (
	"bytes"
	"strings"
	"testing"
)

// captureStreams redirects the package output streams into buffers for
// the duration of a test
func captureStreams(t *testing.T) (out, errOut *bytes.Buffer) {
	t.Helper()

	out = &bytes.Buffer{}
	errOut = &bytes.Buffer{}
	prevOut, prevErr := stdout, stderr
	stdout, stderr = out, errOut
	t.Cleanup(func() {
		stdout, stderr = prevOut, prevErr
	})
	return out, errOut
}

func countLines(s string) int {
	if s == "" {
		return 0
	}
	return strings.Count(s, "\n")
}

func TestRuntimeLogBeforeOpen(t *testing.T) {
	_, errOut := captureStreams(t)

	logger := NewRuntime()
	logger.Log(LevelError, "too early")

	want := "Error: may not log before Open()\n"
	if got := errOut.String(); got != want {
		t.Errorf("pre-open log wrote %q, want %q", got, want)
	}
}

func TestRuntimeThresholdScenario(t *testing.T) {
	out, errOut := captureStreams(t)

	logger := NewRuntime()
	logger.Open(BackendStdout, LevelWarning, "svc")

	logger.Log(LevelInfo, "hidden")
	if out.Len() != 0 {
		t.Errorf("info below warning threshold was emitted: %q", out.String())
	}

	logger.Log(LevelError, "shown")
	got := out.String()
	if !strings.Contains(got, "svc") || !strings.Contains(got, "ERROR") || !strings.Contains(got, "shown") {
		t.Errorf("error record %q missing module, label or message", got)
	}
	if !strings.HasSuffix(got, "\n") {
		t.Errorf("record %q is not newline-terminated", got)
	}

	out.Reset()
	logger.SetLevel(LevelDebug)
	logger.Log(LevelInfo, "now visible")
	if !strings.Contains(out.String(), "now visible") {
		t.Error("info not emitted after SetLevel(debug)")
	}

	out.Reset()
	logger.ResetLevel()
	logger.Log(LevelInfo, "hidden again")
	if out.Len() != 0 {
		t.Errorf("info emitted after ResetLevel: %q", out.String())
	}

	if errOut.Len() != 0 {
		t.Errorf("unexpected stderr output: %q", errOut.String())
	}
}

func TestRuntimeRecordFormat(t *testing.T) {
	out, _ := captureStreams(t)

	logger := NewRuntime()
	logger.Open(BackendStdout, LevelDebug, "svc")
	logger.Log(LevelWarning, "code %d", 7)

	got := out.String()
	if !strings.HasPrefix(got, "svc: [WARNING] runtime_test.go:") {
		t.Errorf("record %q does not start with module, label and file", got)
	}
	if !strings.Contains(got, "TestRuntimeRecordFormat") {
		t.Errorf("record %q does not name the calling function", got)
	}
	if !strings.HasSuffix(got, ": code 7\n") {
		t.Errorf("record %q does not end with the rendered message", got)
	}
}

func TestRuntimeDoubleOpen(t *testing.T) {
	out, errOut := captureStreams(t)

	logger := NewRuntime()
	logger.Open(BackendStdout, LevelWarning, "first")
	logger.Open(BackendStderr, LevelDebug, "second")

	// Exactly one warning, emitted through the existing configuration
	got := out.String()
	if countLines(got) != 1 {
		t.Fatalf("double Open produced %d records, want 1: %q", countLines(got), got)
	}
	if !strings.Contains(got, "Open called twice for module first") {
		t.Errorf("double Open warning %q does not name the original module", got)
	}
	if !strings.Contains(got, "runtime_test.go") || !strings.Contains(got, "TestRuntimeDoubleOpen") {
		t.Errorf("double Open warning %q does not report the user call site", got)
	}
	if errOut.Len() != 0 {
		t.Errorf("double Open wrote to the new backend: %q", errOut.String())
	}

	// Original configuration stays in effect
	if logger.Module() != "first" {
		t.Errorf("Module() = %q after double Open, want first", logger.Module())
	}
	if logger.Level() != LevelWarning {
		t.Errorf("Level() = %v after double Open, want warning", logger.Level())
	}
}

func TestRuntimeClose(t *testing.T) {
	_, errOut := captureStreams(t)

	logger := NewRuntime()
	logger.Open(BackendStderr, LevelDebug, "svc")
	if !logger.Opened() {
		t.Fatal("Opened() = false after Open")
	}

	logger.Close()
	if logger.Opened() {
		t.Error("Opened() = true after Close")
	}
	if logger.Module() != "" {
		t.Errorf("Module() = %q after Close, want empty", logger.Module())
	}

	// Idempotent
	logger.Close()

	// Reopening works
	errOut.Reset()
	logger.Open(BackendStderr, LevelDebug, "again")
	logger.Log(LevelInfo, "back")
	if !strings.Contains(errOut.String(), "back") {
		t.Error("logger unusable after Close and reopen")
	}
}

func TestRuntimeDefaultModuleName(t *testing.T) {
	out, _ := captureStreams(t)

	logger := NewRuntime()
	logger.Open(BackendStdout, LevelDebug, "   ")
	logger.Log(LevelInfo, "hello")

	if logger.Module() != DefaultModuleName {
		t.Errorf("Module() = %q, want %q", logger.Module(), DefaultModuleName)
	}
	if !strings.HasPrefix(out.String(), DefaultModuleName+": ") {
		t.Errorf("record %q does not carry the default module name", out.String())
	}
}

func TestRuntimeModuleNameBounded(t *testing.T) {
	captureStreams(t)

	logger := NewRuntime()
	logger.Open(BackendStdout, LevelDebug, strings.Repeat("m", MaxModuleNameLen+16))

	got := logger.Module()
	if len(got) != MaxModuleNameLen {
		t.Errorf("Module() length = %d, want %d", len(got), MaxModuleNameLen)
	}
	if got != strings.Repeat("m", MaxModuleNameLen) {
		t.Errorf("Module() = %q, want plain truncation", got)
	}
}

func TestRuntimeUnknownBackendFallback(t *testing.T) {
	_, errOut := captureStreams(t)

	logger := NewRuntime()
	logger.Open(Backend(99), LevelDebug, "svc")

	if !strings.Contains(errOut.String(), "unknown log backend") {
		t.Errorf("no fallback warning for unknown backend: %q", errOut.String())
	}

	errOut.Reset()
	logger.Log(LevelInfo, "still works")
	if !strings.Contains(errOut.String(), "still works") {
		t.Error("fallback logger did not emit on stderr")
	}
}

func TestRuntimeExternalBackend(t *testing.T) {
	_, errOut := captureStreams(t)

	var gotPriority int
	var gotTag, gotLine string
	logger := NewRuntime()
	logger.OpenConfig(Config{
		Backend: BackendExternal,
		Level:   LevelDebug,
		Module:  "svc",
		External: func(priority int, tag string, line string) {
			gotPriority = priority
			gotTag = tag
			gotLine = line
		},
	})

	logger.Log(LevelNotice, "handed off")

	if gotPriority != LevelNotice.SyslogPriority() {
		t.Errorf("external priority = %d, want %d", gotPriority, LevelNotice.SyslogPriority())
	}
	if gotTag != "svc" {
		t.Errorf("external tag = %q, want svc", gotTag)
	}
	if !strings.Contains(gotLine, "[NOTICE]") || !strings.Contains(gotLine, "handed off") {
		t.Errorf("external line %q missing label or message", gotLine)
	}
	if strings.Contains(gotLine, "svc:") {
		t.Errorf("external line %q repeats the module carried as tag", gotLine)
	}
	if errOut.Len() != 0 {
		t.Errorf("unexpected stderr output: %q", errOut.String())
	}
}

func TestRuntimeExternalWithoutSink(t *testing.T) {
	_, errOut := captureStreams(t)

	logger := NewRuntime()
	logger.OpenConfig(Config{Backend: BackendExternal, Level: LevelDebug, Module: "svc"})

	if !strings.Contains(errOut.String(), "external backend without sink") {
		t.Errorf("no fallback warning for sink-less external backend: %q", errOut.String())
	}

	errOut.Reset()
	logger.Log(LevelInfo, "fell back")
	if !strings.Contains(errOut.String(), "fell back") {
		t.Error("fallback logger did not emit on stderr")
	}
}

func TestRuntimeInvalidLevelClamped(t *testing.T) {
	out, _ := captureStreams(t)

	logger := NewRuntime()
	logger.Open(BackendStdout, LevelDebug, "svc")
	logger.Log(Level(42), "odd severity")

	got := out.String()
	if !strings.Contains(got, "invalid severity (42); clamping to debug") {
		t.Errorf("no clamp warning in %q", got)
	}
	if !strings.Contains(got, "[DEBUG]") || !strings.Contains(got, "odd severity") {
		t.Errorf("clamped record missing from %q", got)
	}
}

func TestRuntimeInvalidLevelSuppressedBelowThreshold(t *testing.T) {
	out, _ := captureStreams(t)

	logger := NewRuntime()
	logger.Open(BackendStdout, LevelError, "svc")
	logger.Log(Level(42), "odd severity")

	// The clamp warning itself obeys the threshold, and the clamped
	// debug record falls below it
	if out.Len() != 0 {
		t.Errorf("suppressed invalid-level log still emitted: %q", out.String())
	}
}

func TestRuntimeEmptyMessageDropped(t *testing.T) {
	out, _ := captureStreams(t)

	logger := NewRuntime()
	logger.Open(BackendStdout, LevelDebug, "svc")
	logger.Log(LevelInfo, "")

	if out.Len() != 0 {
		t.Errorf("empty message emitted a record: %q", out.String())
	}
}

func TestRuntimeFormatFailurePlaceholder(t *testing.T) {
	out, _ := captureStreams(t)

	logger := NewRuntime()
	logger.Open(BackendStdout, LevelDebug, "svc")
	logger.Log(LevelError, "count %d", "not a number")

	got := out.String()
	if !strings.Contains(got, renderFailedPrefix+"count %d") {
		t.Errorf("record %q does not carry the format-failure placeholder", got)
	}
}

func TestRuntimeTruncation(t *testing.T) {
	out, _ := captureStreams(t)

	logger := NewRuntime()
	logger.Open(BackendStdout, LevelDebug, "svc")
	logger.Log(LevelInfo, strings.Repeat("x", MaxMessageLen+64))

	got := out.String()
	if !strings.Contains(got, strings.Repeat("x", MaxMessageLen)) {
		t.Error("record does not carry the truncated message")
	}
	if strings.Contains(got, strings.Repeat("x", MaxMessageLen+1)) {
		t.Error("record exceeds the message bound")
	}
}

func TestRuntimeLevelMethods(t *testing.T) {
	out, _ := captureStreams(t)

	logger := NewRuntime()
	logger.Open(BackendStdout, LevelDebug, "svc")

	tests := []struct {
		name  string
		log   func(string, ...interface{})
		label string
	}{
		{"emergency", logger.Emergency, "[EMERGENCY]"},
		{"alert", logger.Alert, "[ALERT]"},
		{"critical", logger.Critical, "[CRITICAL]"},
		{"error", logger.Error, "[ERROR]"},
		{"warning", logger.Warning, "[WARNING]"},
		{"notice", logger.Notice, "[NOTICE]"},
		{"info", logger.Info, "[INFO]"},
		{"debug", logger.Debug, "[DEBUG]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out.Reset()
			tt.log("leveled %s", tt.name)

			got := out.String()
			if !strings.Contains(got, tt.label) {
				t.Errorf("record %q missing label %s", got, tt.label)
			}
			if !strings.Contains(got, "runtime_test.go") {
				t.Errorf("record %q does not report the call site", got)
			}
		})
	}
}

// Benchmark tests
func BenchmarkRuntimeLogSuppressed(b *testing.B) {
	logger := NewRuntime()
	logger.Open(BackendStdout, LevelError, "bench")
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		logger.Log(LevelDebug, "suppressed %d", i)
	}
}

func BenchmarkRuntimeLogExternal(b *testing.B) {
	logger := NewRuntime()
	logger.OpenConfig(Config{
		Backend:  BackendExternal,
		Level:    LevelDebug,
		Module:   "bench",
		External: func(int, string, string) {},
	})
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		logger.Log(LevelInfo, "emitted %d", i)
	}
}
