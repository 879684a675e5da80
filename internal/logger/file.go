package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/harrison/filebundle/internal/models"
)

// FileLogger logs run events to a timestamped file in a log directory and
// maintains a latest.log symlink pointing to the most recent run.
// It is thread-safe and implements the bundle.Logger interface.
// It supports log level filtering to control message verbosity.
type FileLogger struct {
	logDir   string
	runLog   *os.File
	runFile  string
	logLevel string
	mu       sync.Mutex
}

// NewFileLoggerWithDirAndLevel creates a new FileLogger with a custom log directory and log level.
// It creates the log directory if it doesn't exist, opens run-YYYYMMDD-HHMMSS.log
// and points latest.log at it.
func NewFileLoggerWithDirAndLevel(logDir string, logLevel string) (*FileLogger, error) {
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	timestamp := time.Now().Format("20060102-150405")
	runFile := filepath.Join(logDir, fmt.Sprintf("run-%s.log", timestamp))

	file, err := os.OpenFile(runFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to create run log file: %w", err)
	}

	symlinkPath := filepath.Join(logDir, "latest.log")

	// Remove existing symlink if it exists
	if _, err := os.Lstat(symlinkPath); err == nil {
		if err := os.Remove(symlinkPath); err != nil {
			file.Close()
			return nil, fmt.Errorf("failed to remove old symlink: %w", err)
		}
	}

	if err := os.Symlink(filepath.Base(runFile), symlinkPath); err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to create symlink: %w", err)
	}

	logger := &FileLogger{
		logDir:   logDir,
		runLog:   file,
		runFile:  runFile,
		logLevel: normalizeLogLevel(logLevel),
		mu:       sync.Mutex{},
	}

	logger.writeRunLog("=== filebundle Run Log ===\n")
	logger.writeRunLog(fmt.Sprintf("Started at: %s\n\n", time.Now().Format(time.RFC3339)))

	return logger, nil
}

// RunFile returns the path of the log file written by this logger.
func (fl *FileLogger) RunFile() string {
	return fl.runFile
}

// shouldLog checks if a message at the given level should be logged.
// Returns true if messageLevel >= configured logLevel.
func (fl *FileLogger) shouldLog(messageLevel string) bool {
	return logLevelToInt(messageLevel) >= logLevelToInt(fl.logLevel)
}

// LogTrace logs a trace-level message (most verbose).
func (fl *FileLogger) LogTrace(message string) {
	fl.logWithLevel("TRACE", message)
}

// LogDebug logs a debug-level message.
func (fl *FileLogger) LogDebug(message string) {
	fl.logWithLevel("DEBUG", message)
}

// LogInfo logs an info-level message.
func (fl *FileLogger) LogInfo(message string) {
	fl.logWithLevel("INFO", message)
}

// LogWarn logs a warning-level message.
func (fl *FileLogger) LogWarn(message string) {
	fl.logWithLevel("WARN", message)
}

// LogError logs an error-level message.
func (fl *FileLogger) LogError(message string) {
	fl.logWithLevel("ERROR", message)
}

func (fl *FileLogger) logWithLevel(level string, message string) {
	if !fl.shouldLog(strings.ToLower(level)) {
		return
	}

	ts := time.Now().Format("15:04:05")
	fl.writeRunLog(fmt.Sprintf("[%s] [%s] %s\n", ts, level, message))
}

// LogRunStart records the run ID and parameters. Always written, regardless of level.
func (fl *FileLogger) LogRunStart(info models.RunInfo) {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Run ID: %s\n", info.RunID))
	b.WriteString(fmt.Sprintf("Root: %s\n", info.Root))
	b.WriteString(fmt.Sprintf("Output: %s\n", info.Output))
	b.WriteString(fmt.Sprintf("Suffixes: %s\n\n", strings.Join(info.Suffixes, ", ")))
	fl.writeRunLog(b.String())
}

// LogFileBundled logs a copied file at DEBUG level.
func (fl *FileLogger) LogFileBundled(outcome models.FileOutcome) {
	fl.LogDebug(fmt.Sprintf("Bundled %s (%d bytes)", outcome.Path, outcome.Bytes))
}

// LogFileFailed logs a file replaced by an error marker at WARN level.
func (fl *FileLogger) LogFileFailed(outcome models.FileOutcome) {
	if outcome.Err == nil {
		return
	}
	fl.LogWarn(fmt.Sprintf("Could not read %s (%s): %v", outcome.Path, outcome.Err.Kind, outcome.Err))
}

// LogWalkError logs a non-fatal traversal error at WARN level.
func (fl *FileLogger) LogWalkError(err error) {
	fl.LogWarn(fmt.Sprintf("Skipped during walk: %v", err))
}

// LogSummary writes the run summary. Always written, regardless of level.
func (fl *FileLogger) LogSummary(result models.BundleResult) {
	var b strings.Builder
	b.WriteString("\n=== Bundle Summary ===\n")
	b.WriteString(fmt.Sprintf("Run ID: %s\n", result.RunID))
	b.WriteString(fmt.Sprintf("Matched files: %d\n", result.Matched))
	b.WriteString(fmt.Sprintf("Written: %d\n", result.Written))
	b.WriteString(fmt.Sprintf("Failed: %d\n", result.FailedCount()))
	b.WriteString(fmt.Sprintf("Bytes: %d\n", result.Bytes))
	b.WriteString(fmt.Sprintf("Walk errors: %d\n", result.WalkErrors))
	b.WriteString(fmt.Sprintf("Excluded: %d\n", result.Excluded))
	if result.RootMissing {
		b.WriteString("Root missing: true\n")
	}
	b.WriteString(fmt.Sprintf("Duration: %s\n", formatDuration(result.Duration)))

	for _, outcome := range result.Failed {
		b.WriteString(fmt.Sprintf("  - %s [%s] %v\n", outcome.Path, outcome.Err.Kind, outcome.Err))
	}

	fl.writeRunLog(b.String())
}

// Close flushes and closes the run log file.
// It should be called when the logger is no longer needed.
func (fl *FileLogger) Close() error {
	fl.mu.Lock()
	defer fl.mu.Unlock()

	if fl.runLog != nil {
		if err := fl.runLog.Sync(); err != nil {
			return fmt.Errorf("failed to sync run log: %w", err)
		}
		if err := fl.runLog.Close(); err != nil {
			return fmt.Errorf("failed to close run log: %w", err)
		}
		fl.runLog = nil
	}

	return nil
}

// writeRunLog is a thread-safe helper to write to the run log file.
func (fl *FileLogger) writeRunLog(message string) {
	fl.mu.Lock()
	defer fl.mu.Unlock()

	if fl.runLog != nil {
		fl.runLog.WriteString(message)
	}
}
