package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
)

const (
	logDir      = "logs"
	logFileName = "retui-demo.log"
	maxLogSize  = 10 * 1024 * 1024
)

// setupLogging returns a discarding logger unless debug is set or path names a log file.
// The file is rotated once it exceeds maxLogSize. The terminal is in raw mode while the
// demo runs, so nothing is ever written to stdout or stderr
func setupLogging(debug bool, path string) (*log.Logger, *os.File) {
	if !debug && path == "" {
		return discardLogging(), nil
	}
	if path == "" {
		path = filepath.Join(logDir, logFileName)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return discardLogging(), nil
	}

	if info, err := os.Stat(path); err == nil && info.Size() > maxLogSize {
		ext := filepath.Ext(path)
		rotated := fmt.Sprintf("%s-%s%s", path[:len(path)-len(ext)], time.Now().Format("20060102-150405"), ext)
		_ = os.Rename(path, rotated)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return discardLogging(), nil
	}

	level := log.InfoLevel
	if debug {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(f, log.Options{
		Level:           level,
		Prefix:          "retui",
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.000",
	})
	log.SetDefault(logger)
	return logger, f
}

// discardLogging makes the discarding logger the package default as well
func discardLogging() *log.Logger {
	logger := log.New(io.Discard)
	log.SetDefault(logger)
	return logger
}
