package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNew_Levels(t *testing.T) {
	logger, err := New(false)
	if err != nil {
		t.Fatalf("new failed: %v", err)
	}
	if logger.Core().Enabled(zapcore.DebugLevel) {
		t.Error("debug should be disabled without verbose")
	}

	logger, err = New(true)
	if err != nil {
		t.Fatalf("new failed: %v", err)
	}
	if !logger.Core().Enabled(zapcore.DebugLevel) {
		t.Error("debug should be enabled with verbose")
	}
}

func TestNewFile_WritesJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "twoslit.log")
	logger, err := NewFile(path, false)
	if err != nil {
		t.Fatalf("new file failed: %v", err)
	}

	logger.Info("pattern updated", zap.Float64("fringe_spacing", 2.528e-3))
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), `"msg":"pattern updated"`) {
		t.Errorf("expected message in log, got %s", data)
	}
	if !strings.Contains(string(data), `"fringe_spacing"`) {
		t.Errorf("expected field in log, got %s", data)
	}
}

func TestNewFile_EmptyPathIsNop(t *testing.T) {
	logger, err := NewFile("", true)
	if err != nil {
		t.Fatalf("new file failed: %v", err)
	}
	if logger.Core().Enabled(zapcore.ErrorLevel) {
		t.Error("expected a no-op logger")
	}
}
