package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/harrison/filebundle/internal/models"
)

// Warning represents a user-facing warning message
type Warning struct {
	Title      string   // Main warning title
	Message    string   // Detailed explanation (optional)
	Files      []string // Related files (optional)
	Suggestion string   // Action to take (optional)
}

// Display shows a formatted warning in yellow
func (w Warning) Display(out io.Writer) {
	var b strings.Builder

	b.WriteString("\x1b[33m")
	b.WriteString("⚠️  Warning: ")
	b.WriteString(w.Title)
	b.WriteString("\n")

	if w.Message != "" {
		b.WriteString("    ")
		b.WriteString(w.Message)
		b.WriteString("\n")
	}

	if len(w.Files) > 0 {
		b.WriteString("    ")
		if len(w.Files) == 1 {
			b.WriteString("Affected file:\n")
		} else {
			b.WriteString("Affected files:\n")
		}

		for i, file := range w.Files {
			b.WriteString("      ")
			b.WriteString(fmt.Sprintf("%d. %s", i+1, file))
			b.WriteString("\n")
		}
	}

	if w.Suggestion != "" {
		b.WriteString("    Suggestion:\n")
		b.WriteString("    ")
		b.WriteString(w.Suggestion)
		b.WriteString("\n")
	}

	b.WriteString("\x1b[0m")

	fmt.Fprint(out, b.String())
}

// WarnUnreadableFiles creates a warning listing files written with an error marker
func WarnUnreadableFiles(failed []models.FileOutcome) Warning {
	files := make([]string, 0, len(failed))
	for _, f := range failed {
		if f.Err == nil {
			continue
		}
		files = append(files, fmt.Sprintf("%s (%s)", f.Path, f.Err.Kind))
	}

	return Warning{
		Title:      "Some files could not be read",
		Message:    "Their blocks contain an error marker instead of content.",
		Files:      files,
		Suggestion: "Check file permissions and encoding, then run again",
	}
}

// WarnRootMissing creates a warning for a root that is missing, not a directory or unreadable
func WarnRootMissing(root string) Warning {
	return Warning{
		Title:      "Root directory not found or not readable",
		Message:    fmt.Sprintf("%s does not exist, is not a directory or cannot be read; the output is empty.", root),
		Suggestion: "Pass an existing directory as the root argument or set 'root' in the config",
	}
}
