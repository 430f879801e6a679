package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSetupLogging_DisabledByDefault(t *testing.T) {
	t.Chdir(t.TempDir())

	logger, logFile := setupLogging(false, "")
	if logFile != nil {
		logFile.Close()
		t.Fatal("Expected nil log file when debug=false")
	}
	logger.Info("dropped")

	if _, err := os.Stat(logDir); !os.IsNotExist(err) {
		t.Error("Expected no logs directory when logging is disabled")
	}
}

func TestSetupLogging_EnabledWithDebug(t *testing.T) {
	t.Chdir(t.TempDir())

	logger, logFile := setupLogging(true, "")
	if logFile == nil {
		t.Fatal("Expected non-nil log file when debug=true")
	}
	defer logFile.Close()

	logPath := filepath.Join(logDir, logFileName)
	if _, err := os.Stat(logPath); err != nil {
		t.Fatalf("Expected log file to be created: %v", err)
	}

	logger.Debug("test message", "key", 1)

	info, err := os.Stat(logPath)
	if err != nil {
		t.Fatalf("Failed to stat log file: %v", err)
	}
	if info.Size() == 0 {
		t.Error("Expected log file to contain content")
	}
}

func TestSetupLogging_ExplicitPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "demo.log")

	logger, logFile := setupLogging(false, path)
	if logFile == nil {
		t.Fatal("Expected log file for explicit path")
	}
	defer logFile.Close()

	// Debug is filtered without --debug
	logger.Debug("hidden")
	if info, err := os.Stat(path); err != nil || info.Size() != 0 {
		t.Errorf("debug line written without debug: %v", err)
	}
	logger.Info("shown")
	if info, err := os.Stat(path); err != nil || info.Size() == 0 {
		t.Errorf("info line missing: %v", err)
	}
}

func TestSetupLogging_Rotation(t *testing.T) {
	t.Chdir(t.TempDir())

	if err := os.MkdirAll(logDir, 0755); err != nil {
		t.Fatalf("Failed to create logs directory: %v", err)
	}
	logPath := filepath.Join(logDir, logFileName)
	if err := os.WriteFile(logPath, make([]byte, maxLogSize+1), 0644); err != nil {
		t.Fatalf("Failed to write large log file: %v", err)
	}

	_, logFile := setupLogging(true, "")
	if logFile == nil {
		t.Fatal("Expected non-nil log file")
	}
	defer logFile.Close()

	entries, err := os.ReadDir(logDir)
	if err != nil {
		t.Fatalf("Failed to read logs directory: %v", err)
	}
	rotatedFound := false
	for _, entry := range entries {
		if entry.Name() != logFileName && filepath.Ext(entry.Name()) == ".log" {
			rotatedFound = true
			break
		}
	}
	if !rotatedFound {
		t.Error("Expected to find rotated log file")
	}

	info, err := os.Stat(logPath)
	if err != nil {
		t.Fatalf("Failed to stat new log file: %v", err)
	}
	if info.Size() > maxLogSize {
		t.Errorf("Expected new log file to be smaller than %d bytes, got %d", maxLogSize, info.Size())
	}
}

func TestSetupLogging_UnwritablePathDiscards(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	if err := os.WriteFile(blocker, nil, 0644); err != nil {
		t.Fatal(err)
	}

	// The parent of the log path is a regular file
	logger, logFile := setupLogging(true, filepath.Join(blocker, "sub", "demo.log"))
	if logFile != nil {
		logFile.Close()
		t.Fatal("Expected nil log file for an unwritable path")
	}
	if logger == nil {
		t.Fatal("Expected a discarding logger")
	}
	logger.Error("dropped")
}
