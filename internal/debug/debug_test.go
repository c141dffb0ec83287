package debug

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"

	"github.com/grindlemire/go-dnd/internal/config"
)

func TestLogger_NopBeforeInit(t *testing.T) {
	t.Cleanup(func() { _ = Close() })

	if Logger() == nil {
		t.Fatal("Logger() = nil before Init")
	}
	// must not panic
	Log("no logger yet: %d", 1)
}

func TestInit_ConsoleAndFile(t *testing.T) {
	t.Cleanup(func() { _ = Close() })

	var buf bytes.Buffer
	path := filepath.Join(t.TempDir(), "logs", "dnd.log")
	err := Init(config.LogConfig{Level: "debug", Format: "json", File: path, MaxSizeMB: 1}, zapcore.AddSync(&buf))
	if err != nil {
		t.Fatalf("Init() error = %v", err)
	}

	Log("moved to %d", 3)
	Logger().Info("dropped")
	if err := Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	console := buf.String()
	if !strings.Contains(console, "moved to 3") || !strings.Contains(console, "dropped") {
		t.Errorf("console output = %q, want both messages", console)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if !strings.Contains(string(data), `"msg":"dropped"`) {
		t.Errorf("log file = %q, want JSON entry for dropped", data)
	}
}

func TestInit_LevelFilters(t *testing.T) {
	t.Cleanup(func() { _ = Close() })

	var buf bytes.Buffer
	if err := Init(config.LogConfig{Level: "warn", Format: "console"}, zapcore.AddSync(&buf)); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	Log("hidden")
	Logger().Warn("shown")

	if strings.Contains(buf.String(), "hidden") {
		t.Errorf("debug message logged at warn level: %q", buf.String())
	}
	if !strings.Contains(buf.String(), "shown") {
		t.Errorf("warn message missing: %q", buf.String())
	}
}

func TestInit_BadLevel(t *testing.T) {
	if err := Init(config.LogConfig{Level: "loud"}, zapcore.AddSync(&bytes.Buffer{})); err == nil {
		t.Errorf("Init() with bad level should fail")
	}
}
