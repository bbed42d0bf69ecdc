package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestNew_Formats(t *testing.T) {
	tests := []struct {
		name     string
		format   Format
		wantJSON bool
	}{
		{"json", FormatJSON, true},
		{"text", FormatText, false},
		{"unknown falls back to text", Format("xml"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := New(Config{Level: slog.LevelInfo, Format: tt.format, Output: &buf})
			logger.Info("loaded config", "file", "speclint.yaml")

			var parsed map[string]any
			isJSON := json.Unmarshal(buf.Bytes(), &parsed) == nil
			if isJSON != tt.wantJSON {
				t.Fatalf("JSON output = %v, want %v: %q", isJSON, tt.wantJSON, buf.String())
			}
			if isJSON && parsed["file"] != "speclint.yaml" {
				t.Errorf("JSON output missing attribute: %v", parsed)
			}
			if !isJSON && !strings.Contains(buf.String(), "file=speclint.yaml") {
				t.Errorf("text output missing attribute: %q", buf.String())
			}
		})
	}
}

func TestNew_FileReceivesJSONCopy(t *testing.T) {
	var terminal, file bytes.Buffer
	logger := New(Config{
		Level:  slog.LevelDebug,
		Format: FormatText,
		Output: &terminal,
		File:   &file,
	})

	logger.Debug("selected rules", "count", 17)
	logger.Log(t.Context(), LevelTrace, "below threshold")

	if !strings.Contains(terminal.String(), "selected rules") {
		t.Errorf("terminal missing record: %q", terminal.String())
	}

	lines := strings.Split(strings.TrimSpace(file.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("file got %d lines, want 1: %q", len(lines), file.String())
	}
	var parsed map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &parsed); err != nil {
		t.Fatalf("file line is not JSON: %v", err)
	}
	if parsed["msg"] != "selected rules" || parsed["count"] != float64(17) {
		t.Errorf("unexpected file record: %v", parsed)
	}
}

func TestNewHandlerFor_SingleSink(t *testing.T) {
	h := NewHandlerFor(Config{Format: FormatText, Output: &bytes.Buffer{}})
	if _, ok := h.(*Handler); !ok {
		t.Errorf("expected *Handler without a file, got %T", h)
	}

	h = NewHandlerFor(Config{Format: FormatText, Output: &bytes.Buffer{}, File: &bytes.Buffer{}})
	if _, ok := h.(*MultiHandler); !ok {
		t.Errorf("expected *MultiHandler with a file, got %T", h)
	}
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"text": FormatText, "JSON": FormatJSON} {
		got, err := ParseFormat(in)
		if err != nil || got != want {
			t.Errorf("ParseFormat(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
	if _, err := ParseFormat("logfmt"); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestDefault(t *testing.T) {
	logger := Default()
	if logger.Enabled(t.Context(), slog.LevelInfo) {
		t.Error("default logger should hide info")
	}
	if !logger.Enabled(t.Context(), slog.LevelWarn) {
		t.Error("default logger should show warnings")
	}
}

func TestNewDiscard(t *testing.T) {
	logger := NewDiscard()
	if logger.Enabled(t.Context(), slog.LevelError) {
		t.Error("discard logger should not be enabled at any level")
	}
	logger.Error("dropped")
}

func TestLevelFromVerbosity(t *testing.T) {
	tests := []struct {
		verbosity int
		want      slog.Level
	}{
		{-1, slog.LevelWarn},
		{0, slog.LevelWarn},
		{1, slog.LevelInfo},
		{2, slog.LevelDebug},
		{3, LevelTrace},
		{4, LevelTrace},
	}

	for _, tt := range tests {
		if got := LevelFromVerbosity(tt.verbosity); got != tt.want {
			t.Errorf("LevelFromVerbosity(%d) = %v, want %v", tt.verbosity, got, tt.want)
		}
	}
}

func TestLevelString(t *testing.T) {
	if LevelTrace >= slog.LevelDebug {
		t.Error("LevelTrace should be lower than LevelDebug")
	}
	if got := LevelString(LevelTrace); got != "TRACE" {
		t.Errorf("LevelString(LevelTrace) = %q", got)
	}
	if got := LevelString(slog.LevelWarn); got != "WARN" {
		t.Errorf("LevelString(LevelWarn) = %q", got)
	}
}

func TestForTest(t *testing.T) {
	logger := ForTest(t)
	if !logger.Enabled(t.Context(), LevelTrace) {
		t.Error("test logger should capture trace output")
	}
	logger.Log(t.Context(), LevelTrace, "visiting node", "path", "/info")
}

func TestTestWriter_TrimsNewline(t *testing.T) {
	tw := &testWriter{t: t}

	for _, in := range []string{"line\n", "no newline", ""} {
		n, err := tw.Write([]byte(in))
		if err != nil || n != len(in) {
			t.Errorf("Write(%q) = %d, %v; want %d, nil", in, n, err, len(in))
		}
	}
}
