package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/thoreinstein/speclint/internal/errors"
)

type failingHandler struct{ slog.Handler }

func (failingHandler) Handle(context.Context, slog.Record) error {
	return errors.New("sink closed")
}

func TestMultiHandler_Levels(t *testing.T) {
	var warn, debug bytes.Buffer
	h := NewMultiHandler(
		NewHandler(&warn, &slog.HandlerOptions{Level: slog.LevelWarn}),
		NewHandler(&debug, &slog.HandlerOptions{Level: slog.LevelDebug}),
	)

	if !h.Enabled(t.Context(), slog.LevelDebug) {
		t.Error("expected debug enabled when any handler accepts it")
	}
	if h.Enabled(t.Context(), LevelTrace) {
		t.Error("expected trace disabled when no handler accepts it")
	}

	slog.New(h).WithGroup("walk").With("workers", 4).Info("started")

	if warn.Len() != 0 {
		t.Errorf("warn handler should skip info: %q", warn.String())
	}
	if !strings.Contains(debug.String(), "walk.workers=4") {
		t.Errorf("derived attrs missing: %q", debug.String())
	}
}

func TestMultiHandler_JoinsErrors(t *testing.T) {
	var buf bytes.Buffer
	ok := NewHandler(&buf, nil)
	h := NewMultiHandler(failingHandler{ok}, ok, failingHandler{ok})

	r := slog.NewRecord(time.Now(), slog.LevelInfo, "still written", 0)
	err := h.Handle(t.Context(), r)
	if err == nil {
		t.Fatal("expected joined error")
	}
	if got := strings.Count(err.Error(), "sink closed"); got != 2 {
		t.Errorf("expected both failures reported, got %q", err.Error())
	}
	if !strings.Contains(buf.String(), "still written") {
		t.Errorf("healthy handler should still receive the record: %q", buf.String())
	}
}
