package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	tests := []struct {
		level       string
		development bool
		want        zapcore.Level
	}{
		{"debug", false, zapcore.DebugLevel},
		{"warn", false, zapcore.WarnLevel},
		{"ERROR", true, zapcore.ErrorLevel},
		{"", false, zapcore.InfoLevel},
		{"", true, zapcore.DebugLevel},
	}

	for _, tt := range tests {
		logger, err := New(tt.level, tt.development)
		if err != nil {
			t.Fatalf("New(%q, %v) failed: %v", tt.level, tt.development, err)
		}
		if got := logger.Level(); got != tt.want {
			t.Errorf("New(%q, %v): expected level %v, got %v", tt.level, tt.development, tt.want, got)
		}
	}
}

func TestNew_InvalidLevel(t *testing.T) {
	if _, err := New("loud", false); err == nil {
		t.Error("expected error for invalid level")
	}
}
