package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var event map[string]any
	if err := json.Unmarshal(buf.Bytes(), &event); err != nil {
		t.Fatalf("invalid json %q: %v", buf.String(), err)
	}
	return event
}

func TestCloudRunHandlerWritesSeverityAndData(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(NewCloudRunWriterHandler(slog.LevelInfo, &buf)).With("uid", "uid-1")

	log.Warn("budget missing", "error", errors.New("boom"))

	event := decodeLine(t, &buf)
	if event["severity"] != "WARNING" {
		t.Fatalf("severity = %v, want WARNING", event["severity"])
	}
	if event["message"] != "budget missing" {
		t.Fatalf("message = %v", event["message"])
	}
	data, ok := event["data"].(map[string]any)
	if !ok {
		t.Fatalf("missing data: %v", event)
	}
	if data["uid"] != "uid-1" {
		t.Fatalf("uid = %v, want uid-1", data["uid"])
	}
	if data["error"] != "boom" {
		t.Fatalf("error = %v, want boom", data["error"])
	}
}

func TestCloudRunHandlerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	h := NewCloudRunWriterHandler(slog.LevelWarn, &buf)
	if h.Enabled(context.Background(), slog.LevelInfo) {
		t.Fatal("info should be disabled at warn level")
	}
	slog.New(h).Info("ignored")
	if buf.Len() != 0 {
		t.Fatalf("expected no output, got %q", buf.String())
	}
}

func TestNewParsesLevel(t *testing.T) {
	log := New("debug", NewTestHandler)
	if !log.Enabled(context.Background(), slog.LevelDebug) {
		t.Fatal("expected debug to be enabled")
	}
	log = New("bogus", NewTestHandler)
	if log.Enabled(context.Background(), slog.LevelDebug) {
		t.Fatal("unknown level should default to info")
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"":        slog.LevelInfo,
		" DEBUG ": slog.LevelDebug,
		"warning": slog.LevelWarn,
		"Warn":    slog.LevelWarn,
		"error":   slog.LevelError,
		"verbose": slog.LevelInfo,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
