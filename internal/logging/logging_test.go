package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want log.Level
	}{
		{"debug", log.DebugLevel},
		{"INFO", log.InfoLevel},
		{"", log.InfoLevel},
		{"warning", log.WarnLevel},
		{" error ", log.ErrorLevel},
	}

	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if err != nil {
			t.Errorf("ParseLevel(%q) failed: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q): expected %v, got %v", tt.in, tt.want, got)
		}
	}

	if _, err := ParseLevel("verbose"); err == nil {
		t.Error("Expected an error for an unknown level")
	}
}

func TestNewFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(&buf, "warn")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	l.Info("hidden message")
	l.Warn("model ignored", "path", "thing.xyz")

	out := buf.String()
	if strings.Contains(out, "hidden message") {
		t.Error("Info message should be filtered at warn level")
	}
	if !strings.Contains(out, "model ignored") || !strings.Contains(out, "thing.xyz") {
		t.Errorf("Expected warn message with fields, got %q", out)
	}
}
