package logger

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNewHonorsLevelAndEnvironment(t *testing.T) {
	log, err := New("warn", "production")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	defer log.Sync()

	if log.Core().Enabled(zapcore.InfoLevel) {
		t.Error("info enabled, want warn threshold")
	}
	if !log.Core().Enabled(zapcore.WarnLevel) {
		t.Error("warn disabled, want warn threshold")
	}

	dev, err := New("debug", "development")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	defer dev.Sync()

	if !dev.Core().Enabled(zapcore.DebugLevel) {
		t.Error("debug disabled in development config")
	}
}

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"INFO", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"verbose", zapcore.InfoLevel},
		{"", zapcore.InfoLevel},
	}
	for _, tc := range cases {
		if got := parseLevel(tc.in); got != tc.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
