package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/eggscroll/internal/core"
	"github.com/vovakirdan/eggscroll/internal/noise"
	"github.com/vovakirdan/eggscroll/internal/registry"
	"github.com/vovakirdan/eggscroll/internal/terrain"
)

func TestModesRegistered(t *testing.T) {
	for _, id := range []string{"eggscroll", "eggscroll_sandbox"} {
		if !registry.Exists(id) {
			t.Errorf("mode %q should be registered", id)
		}
	}
}

func TestFieldPreviewSize(t *testing.T) {
	field := make(noise.Array, 90)
	for i := range field {
		field[i] = make([]float64, 90)
	}

	tests := []struct {
		name       string
		w, h       int
		cols, rows int
	}{
		{"small terminal", 80, 24, 80, 23},
		{"large terminal", 200, 120, 90, 90},
		{"one line", 10, 1, 10, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := fieldPreview(field, terrain.Grayscale, core.RuntimeConfig{ScreenW: tt.w, ScreenH: tt.h})
			if s.Width() != tt.cols || s.Height() != tt.rows {
				t.Errorf("preview is %dx%d, want %dx%d", s.Width(), s.Height(), tt.cols, tt.rows)
			}
		})
	}
}

func TestOpenLoggerWithoutFile(t *testing.T) {
	flagLogPath = ""
	logger, closeLog, err := openLogger()
	if err != nil {
		t.Fatalf("openLogger() failed: %v", err)
	}
	defer closeLog()
	logger.Info("discarded")
}

func TestOpenLoggerToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "eggscroll.log")
	flagLogPath = path
	t.Cleanup(func() { flagLogPath = "" })

	logger, closeLog, err := openLogger()
	if err != nil {
		t.Fatalf("openLogger() failed: %v", err)
	}
	logger.Info("world generated", "seed", 42)
	closeLog()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() failed: %v", err)
	}
	if !strings.Contains(string(data), "world generated") {
		t.Errorf("log file = %q, want the event", data)
	}
}
