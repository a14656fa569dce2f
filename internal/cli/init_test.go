package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"spese-screen/internal/config"
)

func TestSetupLoggerWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spese.log")
	logger, closer, err := SetupLogger(&config.Config{LogLevel: "info", LogFile: path})
	if err != nil {
		t.Fatalf("SetupLogger: %v", err)
	}

	logger.Info("screen started")
	logger.Debug("filtered out")
	if err := closer.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "screen started") {
		t.Errorf("expected record in log file, got: %s", out)
	}
	if strings.Contains(out, "filtered out") {
		t.Errorf("debug record should be filtered at info level: %s", out)
	}
}

func TestSetupLoggerWithoutFileDiscards(t *testing.T) {
	logger, closer, err := SetupLogger(&config.Config{LogLevel: "debug"})
	if err != nil {
		t.Fatalf("SetupLogger: %v", err)
	}
	logger.Info("nowhere")
	if _, ok := closer.(nopCloser); !ok {
		t.Errorf("closer = %T, want nopCloser", closer)
	}
	for i := 0; i < 2; i++ {
		if err := closer.Close(); err != nil {
			t.Fatalf("close %d: %v", i, err)
		}
	}
}

func TestSetupLoggerErrors(t *testing.T) {
	if _, _, err := SetupLogger(&config.Config{LogLevel: "loud"}); err == nil {
		t.Error("expected error for unknown level")
	}

	missingDir := filepath.Join(t.TempDir(), "missing", "spese.log")
	if _, _, err := SetupLogger(&config.Config{LogLevel: "info", LogFile: missingDir}); err == nil {
		t.Error("expected error when the log directory does not exist")
	}
}
