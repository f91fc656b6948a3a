package logger

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestLevelSourceHandler(t *testing.T) {
	tests := []struct {
		name       string
		level      slog.Level
		levels     []slog.Level
		wantSource bool
	}{
		{"info not configured", slog.LevelInfo, []slog.Level{slog.LevelWarn, slog.LevelError}, false},
		{"warn configured", slog.LevelWarn, []slog.Level{slog.LevelWarn, slog.LevelError}, true},
		{"error configured", slog.LevelError, []slog.Level{slog.LevelWarn, slog.LevelError}, true},
		{"debug not configured", slog.LevelDebug, []slog.Level{slog.LevelWarn, slog.LevelError}, false},
		{"info configured explicitly", slog.LevelInfo, []slog.Level{slog.LevelInfo}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			base := slog.NewTextHandler(&buf, &slog.HandlerOptions{
				Level:     slog.LevelDebug,
				AddSource: false,
			})
			log := slog.New(NewLevelSourceHandler(base, tt.levels...))

			log.Log(context.Background(), tt.level, "test message")

			hasSource := strings.Contains(buf.String(), "source=")
			if hasSource != tt.wantSource {
				t.Errorf("source attr = %v, want %v; output: %s", hasSource, tt.wantSource, buf.String())
			}
		})
	}
}
