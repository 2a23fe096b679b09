// Package logging routes slog output to a rotated file, never to the terminal
package logging

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

const (
	logFileName = "testbed.log"
	maxLogSize  = 10 * 1024 * 1024 // Rotate above 10MB
)

// Setup installs the process-wide slog default logger.
// With debug off all output is discarded and the returned file is nil.
// With debug on logs append to dir/testbed.log, rotated when oversized.
func Setup(debug bool, dir string) (*os.File, error) {
	if !debug {
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
		log.SetOutput(io.Discard)
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	path := filepath.Join(dir, logFileName)
	if err := rotate(path); err != nil {
		return nil, err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	h := slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})
	// Also bridges the log package into the file
	slog.SetDefault(slog.New(h))
	slog.Info("logging started", "pid", os.Getpid())
	return f, nil
}

// rotate renames an oversized log to a timestamped name
func rotate(path string) error {
	info, err := os.Stat(path)
	if err != nil || info.Size() <= maxLogSize {
		return nil
	}
	stamp := time.Now().Format("20060102-150405")
	rotated := filepath.Join(filepath.Dir(path), "testbed-"+stamp+".log")
	if err := os.Rename(path, rotated); err != nil {
		return fmt.Errorf("rotate log: %w", err)
	}
	return nil
}
