package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewWithOutputLevels(t *testing.T) {
	tests := []struct {
		verbose   bool
		wantDebug bool
	}{
		{false, false},
		{true, true},
	}

	for _, tt := range tests {
		path := filepath.Join(t.TempDir(), "autoresolve.log")
		logger, err := NewWithOutput(tt.verbose, path)
		if err != nil {
			t.Fatalf("NewWithOutput: %v", err)
		}

		logger.Debug("debug line")
		logger.Info("info line")
		_ = logger.Sync()

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		out := string(data)

		if !strings.Contains(out, "info line") {
			t.Errorf("verbose=%v: info line missing from %q", tt.verbose, out)
		}
		if got := strings.Contains(out, "debug line"); got != tt.wantDebug {
			t.Errorf("verbose=%v: debug logged = %v, want %v", tt.verbose, got, tt.wantDebug)
		}
	}
}

func TestNew(t *testing.T) {
	logger, err := New(false)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if logger == nil {
		t.Fatal("nil logger")
	}
}
