package debuglog

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLevelString(t *testing.T) {
	tests := []struct {
		level    Level
		expected string
	}{
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{LevelOff, "OFF"},
		{Level(42), "UNKNOWN"},
	}

	for _, test := range tests {
		if got := test.level.String(); got != test.expected {
			t.Errorf("Level.String() = %q, want %q", got, test.expected)
		}
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
	}{
		{"DEBUG", LevelDebug},
		{"debug", LevelDebug},
		{" info ", LevelInfo},
		{"WARN", LevelWarn},
		{"warning", LevelWarn},
		{"ERROR", LevelError},
		{"OFF", LevelOff},
		{"verbose", LevelOff},
		{"", LevelOff},
	}

	for _, test := range tests {
		if got := ParseLevel(test.input); got != test.expected {
			t.Errorf("ParseLevel(%q) = %v, want %v", test.input, got, test.expected)
		}
	}
}

func TestLoggerFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, LevelWarn)

	l.Debugf("debug %d", 1)
	l.Infof("info %d", 2)
	l.Warnf("warn %d", 3)
	l.Errorf("error %d", 4)

	out := buf.String()
	if strings.Contains(out, "debug 1") || strings.Contains(out, "info 2") {
		t.Errorf("messages below WARN were written: %q", out)
	}
	if !strings.Contains(out, "[WARN] warn 3") {
		t.Errorf("missing warn line in %q", out)
	}
	if !strings.Contains(out, "[ERROR] error 4") {
		t.Errorf("missing error line in %q", out)
	}
}

func TestLoggerOffWritesNothing(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, LevelOff)
	l.Errorf("should not appear")
	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}

	l.SetLevel(LevelDebug)
	if l.Level() != LevelDebug {
		t.Fatalf("Level() = %v after SetLevel", l.Level())
	}
	l.Debugf("now visible")
	if !strings.Contains(buf.String(), "now visible") {
		t.Errorf("expected output after raising level, got %q", buf.String())
	}
}

func TestWithFields(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, LevelDebug)

	entry := l.WithFields(Fields{"variant": "stack", "session": "abc"})
	entry.Debugf("applied %s", "push")
	entry.With(Fields{"op": "append"}).Infof("done")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), buf.String())
	}
	if !strings.HasSuffix(lines[0], "applied push [session=abc variant=stack]") {
		t.Errorf("unexpected first line %q", lines[0])
	}
	if !strings.HasSuffix(lines[1], "done [op=append session=abc variant=stack]") {
		t.Errorf("unexpected second line %q", lines[1])
	}
}

func TestFieldsStringEmpty(t *testing.T) {
	if got := Fields(nil).String(); got != "" {
		t.Errorf("empty fields rendered as %q", got)
	}
}

func TestSetupWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dsviz.log")

	if err := Setup(LevelInfo, path); err != nil {
		t.Fatalf("Setup failed: %v", err)
	}
	t.Cleanup(func() { _ = Close() })

	Debugf("hidden")
	Infof("visible %d", 7)
	WithFields(Fields{"op": "peek"}).Warnf("empty")

	if err := Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log: %v", err)
	}
	content := string(data)
	if strings.Contains(content, "hidden") {
		t.Errorf("debug message written at INFO level: %q", content)
	}
	if !strings.Contains(content, "[INFO] visible 7") {
		t.Errorf("missing info line: %q", content)
	}
	if !strings.Contains(content, "[WARN] empty [op=peek]") {
		t.Errorf("missing field line: %q", content)
	}
}

func TestSetupOffOpensNothing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "never.log")

	if err := Setup(LevelOff, path); err != nil {
		t.Fatalf("Setup failed: %v", err)
	}
	Errorf("dropped")

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("expected no log file, stat err = %v", err)
	}
	if std.Level() != LevelOff {
		t.Errorf("std.Level() = %v, want OFF", std.Level())
	}
}
