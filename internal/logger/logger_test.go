package logger

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name  string
		level string
	}{
		{"debug level", "debug"},
		{"info level", "info"},
		{"warn level", "warn"},
		{"error level", "error"},
		{"invalid level", "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := New(tt.level)
			if log == nil {
				t.Error("New() returned nil")
			}
		})
	}
}

func TestLevelFiltering(t *testing.T) {
	tests := []struct {
		name     string
		minLevel string
		logged   []string
		dropped  []string
	}{
		{
			name:     "info drops debug",
			minLevel: "info",
			logged:   []string{"[INFO]", "[WARN]", "[ERROR]"},
			dropped:  []string{"[DEBUG]"},
		},
		{
			name:     "debug logs everything",
			minLevel: "debug",
			logged:   []string{"[DEBUG]", "[INFO]", "[WARN]", "[ERROR]"},
		},
		{
			name:     "error drops the rest",
			minLevel: "error",
			logged:   []string{"[ERROR]"},
			dropped:  []string{"[DEBUG]", "[INFO]", "[WARN]"},
		},
	}

	ctx := context.Background()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := NewWithWriter(&buf, tt.minLevel)

			log.Debug(ctx, "debug message")
			log.Info(ctx, "info message")
			log.Warn(ctx, "warn message")
			log.Error(ctx, "error message")

			out := buf.String()
			for _, want := range tt.logged {
				if !strings.Contains(out, want) {
					t.Errorf("output missing %s:\n%s", want, out)
				}
			}
			for _, unwanted := range tt.dropped {
				if strings.Contains(out, unwanted) {
					t.Errorf("output should not contain %s:\n%s", unwanted, out)
				}
			}
		})
	}
}

func TestFormatting(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "info")

	log.Info(context.Background(), "processed %d of %d: %s", 3, 10, "meeting.txt")

	if !strings.Contains(buf.String(), "processed 3 of 10: meeting.txt") {
		t.Errorf("unexpected output: %s", buf.String())
	}
}
