package logger

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/harrison/filebundle/internal/models"
)

// colorScheme defines consistent colors for different metric types.
// Green: success/positive metrics
// Red: failure/error metrics
// Yellow: warning metrics
// Cyan: labels and identifiers
type colorScheme struct {
	success *color.Color
	fail    *color.Color
	warn    *color.Color
	label   *color.Color
	value   *color.Color
}

// newColorScheme creates the standard color scheme for metrics.
func newColorScheme() *colorScheme {
	return &colorScheme{
		success: color.New(color.FgGreen),
		fail:    color.New(color.FgRed),
		warn:    color.New(color.FgYellow),
		label:   color.New(color.FgCyan),
		value:   color.New(color.FgWhite),
	}
}

// formatColorizedMetric formats a single metric with colorized label and value.
// Format: "label: value"
func formatColorizedMetric(label string, value interface{}, scheme *colorScheme) string {
	labelColored := scheme.label.Sprint(label)
	valueColored := scheme.value.Sprintf("%v", value)
	return fmt.Sprintf("%s: %s", labelColored, valueColored)
}

// formatColorizedSummaryMetrics formats the run counters with color coding.
// Format: "matched: N, written: N, failed: N, bytes: N[, excluded: N][, skipped dirs: N]"
// Written is green, failed is red when non-zero, walk errors are yellow.
// Colors are automatically disabled when output is not a TTY via fatih/color's built-in detection.
func formatColorizedSummaryMetrics(result models.BundleResult) string {
	scheme := newColorScheme()
	parts := []string{
		formatColorizedMetric("matched", result.Matched, scheme),
		fmt.Sprintf("%s: %s", scheme.success.Sprint("written"), scheme.value.Sprintf("%d", result.Written)),
	}

	if failed := result.FailedCount(); failed > 0 {
		parts = append(parts, fmt.Sprintf("%s: %s", scheme.fail.Sprint("failed"), scheme.fail.Sprintf("%d", failed)))
	} else {
		parts = append(parts, formatColorizedMetric("failed", 0, scheme))
	}

	parts = append(parts, formatColorizedMetric("bytes", result.Bytes, scheme))

	if result.Excluded > 0 {
		parts = append(parts, formatColorizedMetric("excluded", result.Excluded, scheme))
	}
	if result.WalkErrors > 0 {
		parts = append(parts, fmt.Sprintf("%s: %s", scheme.warn.Sprint("skipped dirs"), scheme.warn.Sprintf("%d", result.WalkErrors)))
	}

	return strings.Join(parts, ", ")
}
