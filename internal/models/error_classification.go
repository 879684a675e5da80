package models

import (
	"errors"
	"fmt"
	"io/fs"
)

// ErrInvalidEncoding is returned when a matched file is not valid UTF-8 text.
var ErrInvalidEncoding = errors.New("invalid UTF-8 encoding")

// ReadErrorKind classifies why a matched file could not be bundled.
type ReadErrorKind string

// Read error kinds
const (
	ReadErrorNotFound        ReadErrorKind = "not-found"
	ReadErrorPermission      ReadErrorKind = "permission-denied"
	ReadErrorInvalidEncoding ReadErrorKind = "invalid-encoding"
	ReadErrorIO              ReadErrorKind = "io"
)

// ReadError is the per-file failure recorded in-band in the output.
// The run continues after a ReadError; it never aborts the walk.
type ReadError struct {
	Kind ReadErrorKind
	Path string
	Err  error
}

// Error returns the underlying error message. It is written verbatim into the
// error marker line, so it must stay on a single line.
func (e *ReadError) Error() string {
	if e.Err == nil {
		return string(e.Kind)
	}
	return e.Err.Error()
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// ClassifyReadError wraps err into a ReadError with the matching kind.
// Returns nil if err is nil.
func ClassifyReadError(path string, err error) *ReadError {
	if err == nil {
		return nil
	}

	var existing *ReadError
	if errors.As(err, &existing) {
		return existing
	}

	kind := ReadErrorIO
	switch {
	case errors.Is(err, fs.ErrNotExist):
		kind = ReadErrorNotFound
	case errors.Is(err, fs.ErrPermission):
		kind = ReadErrorPermission
	case errors.Is(err, ErrInvalidEncoding):
		kind = ReadErrorInvalidEncoding
	}

	return &ReadError{Kind: kind, Path: path, Err: err}
}

// NewEncodingError builds the invalid-encoding error for a file whose first
// invalid UTF-8 sequence starts at offset.
func NewEncodingError(path string, offset int) *ReadError {
	return &ReadError{
		Kind: ReadErrorInvalidEncoding,
		Path: path,
		Err:  fmt.Errorf("%s: %w at byte offset %d", path, ErrInvalidEncoding, offset),
	}
}
