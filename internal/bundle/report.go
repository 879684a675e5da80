package bundle

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/harrison/filebundle/internal/models"
)

// Output format markers. The German wording is part of the file format and
// is matched by downstream tooling.
const (
	HeaderFormat      = "\n===== Datei: %s =====\n\n"
	ErrorMarkerFormat = "[Fehler beim Lesen: %s]\n"
)

// ReportWriter streams header+body blocks into the bundle output.
// It is not safe for concurrent use.
type ReportWriter struct {
	w     *bufio.Writer
	bytes int64
}

// NewReportWriter wraps w in a buffered block writer
func NewReportWriter(w io.Writer) *ReportWriter {
	return &ReportWriter{w: bufio.NewWriter(w)}
}

// WriteFile appends the block for the file at path: the header, then either
// the file content and a trailing newline or the error marker line.
//
// A file that cannot be read or is not valid UTF-8 yields an outcome with Err
// set and a nil error. The returned error is reserved for failures writing
// the output itself.
func (rw *ReportWriter) WriteFile(path string) (models.FileOutcome, error) {
	outcome := models.FileOutcome{Path: path}

	if _, err := fmt.Fprintf(rw.w, HeaderFormat, path); err != nil {
		return outcome, fmt.Errorf("failed to write header for %s: %w", path, err)
	}

	content, readErr := readText(path)
	if readErr != nil {
		outcome.Err = readErr
		if _, err := fmt.Fprintf(rw.w, ErrorMarkerFormat, readErr.Error()); err != nil {
			return outcome, fmt.Errorf("failed to write error marker for %s: %w", path, err)
		}
		return outcome, nil
	}

	n, err := rw.w.Write(content)
	if err != nil {
		return outcome, fmt.Errorf("failed to write content of %s: %w", path, err)
	}
	if err := rw.w.WriteByte('\n'); err != nil {
		return outcome, fmt.Errorf("failed to write content of %s: %w", path, err)
	}

	outcome.Bytes = int64(n)
	rw.bytes += int64(n)
	return outcome, nil
}

// Bytes returns the number of content bytes written so far, headers and markers excluded.
func (rw *ReportWriter) Bytes() int64 {
	return rw.bytes
}

// Flush writes any buffered data to the underlying writer.
func (rw *ReportWriter) Flush() error {
	if err := rw.w.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	return nil
}

// readText reads the whole file and checks that it decodes as UTF-8.
func readText(path string) ([]byte, *models.ReadError) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, models.ClassifyReadError(path, err)
	}

	if !utf8.Valid(content) {
		return nil, models.NewEncodingError(path, invalidUTF8Offset(content))
	}

	return content, nil
}

// invalidUTF8Offset returns the byte offset of the first invalid UTF-8 sequence, or -1.
func invalidUTF8Offset(content []byte) int {
	for i := 0; i < len(content); {
		r, size := utf8.DecodeRune(content[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return -1
}
