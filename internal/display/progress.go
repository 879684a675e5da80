package display

import (
	"fmt"
	"io"

	"github.com/harrison/filebundle/internal/models"
)

// ProgressIndicator prints one numbered line per bundled file
type ProgressIndicator struct {
	writer  io.Writer
	current int
}

// NewProgressIndicator creates a new progress indicator
func NewProgressIndicator(w io.Writer) *ProgressIndicator {
	return &ProgressIndicator{
		writer:  w,
		current: 0,
	}
}

// Start displays the header message
func (p *ProgressIndicator) Start(root string) {
	fmt.Fprintf(p.writer, "Bundling files from %s:\n", root)
}

// Step displays progress for the current file: [N] path (cyan)
func (p *ProgressIndicator) Step(path string) {
	p.current++
	fmt.Fprintf(p.writer, "\x1b[36m  [%d] %s\x1b[0m\n", p.current, path)
}

// Count returns the number of steps displayed so far
func (p *ProgressIndicator) Count() int {
	return p.current
}

// Complete displays the success line with a green checkmark
func (p *ProgressIndicator) Complete(result models.BundleResult) {
	if result.FailedCount() == 0 {
		fmt.Fprintf(p.writer, "\x1b[32m✓\x1b[0m Bundled %d files\n", result.Written)
		return
	}
	fmt.Fprintf(p.writer, "\x1b[32m✓\x1b[0m Bundled %d files (%d unreadable)\n", result.Written, result.FailedCount())
}
