package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"", zapcore.InfoLevel},
		{"loud", zapcore.InfoLevel},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.input); got != tt.expected {
			t.Errorf("ParseLevel(%q) = %v; want %v", tt.input, got, tt.expected)
		}
	}
}

func TestNewAtWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "pokeview.log")

	sugar, flush, err := NewAt(path, "debug")
	if err != nil {
		t.Fatalf("NewAt returned error: %v", err)
	}
	sugar.Infof("Fetching creature %d", 25)
	flush()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Expected log file to exist, got %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "Fetching creature 25") {
		t.Errorf("Expected log line in file, got %q", out)
	}
	if !strings.Contains(out, "session") {
		t.Errorf("Expected session field in log line, got %q", out)
	}
}

func TestNopDiscards(t *testing.T) {
	sugar := Nop()
	// Must not panic.
	sugar.Infof("ignored %d", 1)
	_ = sugar.Sync()
}
