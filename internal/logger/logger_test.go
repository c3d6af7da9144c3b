package logger

import (
	"context"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want level
	}{
		{"debug level", "debug", levelDebug},
		{"info level", "info", levelInfo},
		{"warn level", "warn", levelWarn},
		{"warning alias", "warning", levelWarn},
		{"error level", "error", levelError},
		{"mixed case", "DeBuG", levelDebug},
		{"invalid defaults to info", "verbose", levelInfo},
		{"empty defaults to info", "", levelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseLevel(tt.in); got != tt.want {
				t.Errorf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestNewDoesNotPanic(t *testing.T) {
	ctx := context.Background()

	for _, lv := range []string{"debug", "info", "warn", "error", "bogus"} {
		log := New(lv)
		log.Debug(ctx, "debug %s", "message")
		log.Info(ctx, "info %s", "message")
		log.Warn(ctx, "warn %s", "message")
		log.Error(ctx, "error %s", "message")
	}
}
