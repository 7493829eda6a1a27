// Package logger sets up the global slog logger for relayctl.
// Console output goes through tint for readable colored records; every
// record is also written as JSON to a timestamped per-invocation log file
// so diagnostics survive the terminal session.
package logger

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/lmittmann/tint"

	"github.com/relayops/relayctl/internal/constants"
)

const logFilePerm = os.FileMode(0o644)

// Initialize sets up the global slog logger. It returns the logger and the
// path of the per-invocation log file. The file handle stays open for the
// process lifetime; the OS closes it on exit.
func Initialize(level slog.Level, logDir string) (*slog.Logger, string, error) {
	console := tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.TimeOnly,
	})

	if err := os.MkdirAll(logDir, constants.ConfigDirPermissions); err != nil {
		return nil, "", fmt.Errorf("failed to create log directory: %w", err)
	}

	logPath := filepath.Join(logDir,
		fmt.Sprintf("%s-%s.log", constants.ProjectName, time.Now().Format("20060102-150405")))
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePerm)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open log file: %w", err)
	}

	file := slog.NewJSONHandler(logFile, &slog.HandlerOptions{
		// The file always captures debug records regardless of the
		// console level.
		Level: slog.LevelDebug,
	})

	logger := slog.New(teeHandler{console, file})
	slog.SetDefault(logger)
	logger.Debug("logger initialized", "level", level, "log_file", logPath)

	return logger, logPath, nil
}
