// Package logger provides logging implementations for filebundle runs.
//
// The logger package offers leveled logging of per-file progress and the run
// summary. Implementations are thread-safe and support various output
// destinations (console, file, etc.).
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/harrison/filebundle/internal/models"
	"github.com/mattn/go-isatty"
)

// Log level constants for filtering
const (
	levelTrace int = 0
	levelDebug int = 1
	levelInfo  int = 2
	levelWarn  int = 3
	levelError int = 4
)

// ConsoleLogger logs run progress to a writer with timestamps and thread safety.
// All output is prefixed with [HH:MM:SS] timestamps.
// It supports log level filtering to control message verbosity.
// Color output is automatically enabled for terminal output.
type ConsoleLogger struct {
	writer      io.Writer
	logLevel    string
	mutex       sync.Mutex
	colorOutput bool
}

// NewConsoleLogger creates a ConsoleLogger that writes to the provided io.Writer.
// If writer is nil, messages are silently discarded.
// logLevel determines the minimum log level for messages to be output.
// Valid levels: trace, debug, info, warn, error (case-insensitive).
// If logLevel is empty or invalid, defaults to "info".
// Color output is enabled when the writer is a TTY and NO_COLOR is not set.
func NewConsoleLogger(writer io.Writer, logLevel string) *ConsoleLogger {
	normalizedLevel := normalizeLogLevel(logLevel)

	return &ConsoleLogger{
		writer:      writer,
		logLevel:    normalizedLevel,
		mutex:       sync.Mutex{},
		colorOutput: isTerminal(writer),
	}
}

// isTerminal checks if the writer is a terminal that supports colors.
func isTerminal(w io.Writer) bool {
	if w == nil || color.NoColor {
		return false
	}

	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// normalizeLogLevel converts a log level string to lowercase and validates it.
// Returns "info" as default for empty or invalid levels.
func normalizeLogLevel(level string) string {
	normalized := strings.ToLower(strings.TrimSpace(level))

	if IsValidLevel(normalized) {
		return normalized
	}

	return "info"
}

// IsValidLevel reports whether level is one of trace, debug, info, warn, error.
func IsValidLevel(level string) bool {
	switch level {
	case "trace", "debug", "info", "warn", "error":
		return true
	}
	return false
}

// shouldLog checks if a message at the given level should be logged.
// Returns true if messageLevel >= configured logLevel.
func (cl *ConsoleLogger) shouldLog(messageLevel string) bool {
	return logLevelToInt(messageLevel) >= logLevelToInt(cl.logLevel)
}

// logLevelToInt converts a log level string to its numeric value.
func logLevelToInt(level string) int {
	switch level {
	case "trace":
		return levelTrace
	case "debug":
		return levelDebug
	case "info":
		return levelInfo
	case "warn":
		return levelWarn
	case "error":
		return levelError
	default:
		return levelInfo
	}
}

// LogTrace logs a trace-level message (most verbose).
// Format: "[HH:MM:SS] [TRACE] <message>"
func (cl *ConsoleLogger) LogTrace(message string) {
	cl.logWithLevel("TRACE", message)
}

// LogDebug logs a debug-level message.
// Format: "[HH:MM:SS] [DEBUG] <message>"
func (cl *ConsoleLogger) LogDebug(message string) {
	cl.logWithLevel("DEBUG", message)
}

// LogInfo logs an info-level message.
// Format: "[HH:MM:SS] [INFO] <message>"
func (cl *ConsoleLogger) LogInfo(message string) {
	cl.logWithLevel("INFO", message)
}

// LogWarn logs a warning-level message.
// Format: "[HH:MM:SS] [WARN] <message>"
func (cl *ConsoleLogger) LogWarn(message string) {
	cl.logWithLevel("WARN", message)
}

// LogError logs an error-level message.
// Format: "[HH:MM:SS] [ERROR] <message>"
func (cl *ConsoleLogger) LogError(message string) {
	cl.logWithLevel("ERROR", message)
}

// logWithLevel is a helper that logs a message at the specified level if filtering allows it.
func (cl *ConsoleLogger) logWithLevel(level string, message string) {
	if cl.writer == nil {
		return
	}

	if !cl.shouldLog(strings.ToLower(level)) {
		return
	}

	cl.mutex.Lock()
	defer cl.mutex.Unlock()

	ts := timestamp()
	var formatted string

	if cl.colorOutput {
		formatted = cl.formatWithColor(ts, level, message)
	} else {
		formatted = fmt.Sprintf("[%s] [%s] %s\n", ts, level, message)
	}

	cl.writer.Write([]byte(formatted))
}

// formatWithColor formats a log message with ANSI color codes.
func (cl *ConsoleLogger) formatWithColor(ts, level, message string) string {
	var coloredLevel string

	switch strings.ToUpper(level) {
	case "TRACE":
		coloredLevel = color.New(color.FgHiBlack).Sprint(level)
	case "DEBUG":
		coloredLevel = color.New(color.FgCyan).Sprint(level)
	case "INFO":
		coloredLevel = color.New(color.FgBlue).Sprint(level)
	case "WARN":
		coloredLevel = color.New(color.FgYellow).Sprint(level)
	case "ERROR":
		coloredLevel = color.New(color.FgRed).Sprint(level)
	default:
		coloredLevel = level
	}

	return fmt.Sprintf("[%s] [%s] %s\n", ts, coloredLevel, message)
}

// LogRunStart logs the start of a run at INFO level.
// Format: "[HH:MM:SS] [INFO] Bundling <suffixes> files from <root> into <output>"
func (cl *ConsoleLogger) LogRunStart(info models.RunInfo) {
	cl.LogInfo(fmt.Sprintf("Bundling %s files from %s into %s",
		strings.Join(info.Suffixes, ", "), info.Root, info.Output))
}

// LogFileBundled logs a successfully copied file at DEBUG level.
// Format: "[HH:MM:SS] [DEBUG] Bundled <path> (<n> bytes)"
func (cl *ConsoleLogger) LogFileBundled(outcome models.FileOutcome) {
	cl.LogDebug(fmt.Sprintf("Bundled %s (%d bytes)", outcome.Path, outcome.Bytes))
}

// LogFileFailed logs a file that was replaced by an error marker at WARN level.
// Format: "[HH:MM:SS] [WARN] Could not read <path> (<kind>): <error>"
func (cl *ConsoleLogger) LogFileFailed(outcome models.FileOutcome) {
	if outcome.Err == nil {
		return
	}
	cl.LogWarn(fmt.Sprintf("Could not read %s (%s): %v", outcome.Path, outcome.Err.Kind, outcome.Err))
}

// LogWalkError logs a non-fatal traversal error at WARN level.
func (cl *ConsoleLogger) LogWalkError(err error) {
	cl.LogWarn(fmt.Sprintf("Skipped during walk: %v", err))
}

// LogSummary logs the run summary with file statistics at INFO level.
// Format: "[HH:MM:SS] === Bundle Summary ===\n[HH:MM:SS] Matched files: <n>\n..."
func (cl *ConsoleLogger) LogSummary(result models.BundleResult) {
	if cl.writer == nil {
		return
	}

	if !cl.shouldLog("info") {
		return
	}

	cl.mutex.Lock()
	defer cl.mutex.Unlock()

	ts := timestamp()
	durationStr := formatDuration(result.Duration)
	failed := result.FailedCount()

	var output string

	if cl.colorOutput {
		header := color.New(color.Bold).Sprint("=== Bundle Summary ===")
		output = fmt.Sprintf("[%s] %s\n", ts, header)
		output += fmt.Sprintf("[%s] %s\n", ts, formatColorizedSummaryMetrics(result))
		output += fmt.Sprintf("[%s] Duration: %s\n", ts, durationStr)

		if failed > 0 {
			failedHeader := color.New(color.FgRed).Sprint("Unreadable files:")
			output += fmt.Sprintf("[%s] %s\n", ts, failedHeader)
			for _, outcome := range result.Failed {
				path := color.New(color.FgRed).Sprint(outcome.Path)
				output += fmt.Sprintf("[%s]   - %s: %s\n", ts, path, outcome.Err.Kind)
			}
		}
	} else {
		output = fmt.Sprintf("[%s] === Bundle Summary ===\n", ts)
		output += fmt.Sprintf("[%s] Matched files: %d\n", ts, result.Matched)
		output += fmt.Sprintf("[%s] Written: %d\n", ts, result.Written)
		output += fmt.Sprintf("[%s] Failed: %d\n", ts, failed)
		output += fmt.Sprintf("[%s] Bytes: %d\n", ts, result.Bytes)
		if result.Excluded > 0 {
			output += fmt.Sprintf("[%s] Excluded: %d\n", ts, result.Excluded)
		}
		output += fmt.Sprintf("[%s] Duration: %s\n", ts, durationStr)

		if failed > 0 {
			output += fmt.Sprintf("[%s] Unreadable files:\n", ts)
			for _, outcome := range result.Failed {
				output += fmt.Sprintf("[%s]   - %s: %s\n", ts, outcome.Path, outcome.Err.Kind)
			}
		}
	}

	cl.writer.Write([]byte(output))
}

// timestamp returns the current time formatted as "15:04:05" (HH:MM:SS).
func timestamp() string {
	return time.Now().Format("15:04:05")
}

// formatDuration converts a time.Duration to a human-readable string.
// Examples: "250ms", "5s", "1m30s", "2h15m"
func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Hour:
		hours := d / time.Hour
		remainder := d % time.Hour
		if remainder == 0 {
			return fmt.Sprintf("%dh", hours)
		}
		minutes := remainder / time.Minute
		remainder = remainder % time.Minute
		if remainder == 0 {
			return fmt.Sprintf("%dh%dm", hours, minutes)
		}
		seconds := remainder / time.Second
		return fmt.Sprintf("%dh%dm%ds", hours, minutes, seconds)
	case d >= time.Minute:
		minutes := d / time.Minute
		remainder := d % time.Minute
		if remainder == 0 {
			return fmt.Sprintf("%dm", minutes)
		}
		seconds := remainder / time.Second
		return fmt.Sprintf("%dm%ds", minutes, seconds)
	case d >= time.Second:
		return fmt.Sprintf("%ds", int64(d.Seconds()))
	default:
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
}

// NoOpLogger is a Logger implementation that discards all log messages.
// Useful for testing or when logging is disabled.
type NoOpLogger struct{}

// NewNoOpLogger creates a NoOpLogger instance.
func NewNoOpLogger() *NoOpLogger {
	return &NoOpLogger{}
}

// LogRunStart is a no-op implementation.
func (n *NoOpLogger) LogRunStart(info models.RunInfo) {
}

// LogFileBundled is a no-op implementation.
func (n *NoOpLogger) LogFileBundled(outcome models.FileOutcome) {
}

// LogFileFailed is a no-op implementation.
func (n *NoOpLogger) LogFileFailed(outcome models.FileOutcome) {
}

// LogWalkError is a no-op implementation.
func (n *NoOpLogger) LogWalkError(err error) {
}

// LogSummary is a no-op implementation.
func (n *NoOpLogger) LogSummary(result models.BundleResult) {
}
