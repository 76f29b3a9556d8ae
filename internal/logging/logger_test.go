package logging

import (
	"context"
	"log/slog"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"WARN":  slog.LevelWarn,
		"error": slog.LevelError,
		"":      slog.LevelInfo,
		"junk":  slog.LevelInfo,
	}
	for raw, want := range cases {
		if got := parseLevel(raw); got != want {
			t.Fatalf("parseLevel(%q): expected %v got %v", raw, want, got)
		}
	}
}

func TestNewLoggerNeverNil(t *testing.T) {
	if NewLogger(Config{}) == nil {
		t.Fatal("expected logger")
	}
	if NewLogger(Config{Format: "json", Level: "debug", Service: "svc", Version: "v1"}) == nil {
		t.Fatal("expected logger")
	}
}

func TestContextLoggerRoundTrip(t *testing.T) {
	base := NewLogger(Config{})
	ctx := WithLogger(context.Background(), base)
	if got := FromContext(ctx, nil); got != base {
		t.Fatal("expected context logger back")
	}
}

func TestFromContextFallback(t *testing.T) {
	fallback := NewLogger(Config{})
	if got := FromContext(context.Background(), fallback); got != fallback {
		t.Fatal("expected fallback logger")
	}
	if got := FromContext(nil, fallback); got != fallback { //nolint:staticcheck
		t.Fatal("expected fallback logger for nil context")
	}
}

func TestWithCommon(t *testing.T) {
	attrs := WithCommon(nil, "svc", "v2")
	if len(attrs) != 2 {
		t.Fatalf("expected 2 attrs got %d", len(attrs))
	}
	if attrs[0].Key != FieldService || attrs[1].Key != FieldVersion {
		t.Fatalf("unexpected keys: %v", attrs)
	}
	if got := WithCommon(nil, "", ""); len(got) != 0 {
		t.Fatalf("expected no attrs got %d", len(got))
	}
}
