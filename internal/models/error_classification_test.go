package models

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyReadError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantKind ReadErrorKind
	}{
		{
			name:     "not exist",
			err:      &fs.PathError{Op: "open", Path: "a.dart", Err: fs.ErrNotExist},
			wantKind: ReadErrorNotFound,
		},
		{
			name:     "permission denied",
			err:      &fs.PathError{Op: "open", Path: "a.dart", Err: fs.ErrPermission},
			wantKind: ReadErrorPermission,
		},
		{
			name:     "wrapped invalid encoding",
			err:      fmt.Errorf("a.dart: %w", ErrInvalidEncoding),
			wantKind: ReadErrorInvalidEncoding,
		},
		{
			name:     "anything else",
			err:      errors.New("is a directory"),
			wantKind: ReadErrorIO,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyReadError("a.dart", tt.err)
			require.NotNil(t, got)
			assert.Equal(t, tt.wantKind, got.Kind)
			assert.Equal(t, "a.dart", got.Path)
			assert.Equal(t, tt.err.Error(), got.Error())
			assert.ErrorIs(t, got, tt.err)
		})
	}
}

func TestClassifyReadError_Nil(t *testing.T) {
	assert.Nil(t, ClassifyReadError("a.dart", nil))
}

func TestClassifyReadError_KeepsExisting(t *testing.T) {
	original := NewEncodingError("a.dart", 3)
	wrapped := fmt.Errorf("reading: %w", original)

	got := ClassifyReadError("other.dart", wrapped)
	assert.Same(t, original, got)
}

func TestClassifyReadError_RealFilesystem(t *testing.T) {
	_, err := os.ReadFile(filepath.Join(t.TempDir(), "missing.dart"))
	require.Error(t, err)

	got := ClassifyReadError("missing.dart", err)
	assert.Equal(t, ReadErrorNotFound, got.Kind)
	assert.Contains(t, got.Error(), "no such file or directory")
}

func TestNewEncodingError(t *testing.T) {
	err := NewEncodingError("lib/main.dart", 12)

	assert.Equal(t, ReadErrorInvalidEncoding, err.Kind)
	assert.ErrorIs(t, err, ErrInvalidEncoding)
	assert.Equal(t, "lib/main.dart: invalid UTF-8 encoding at byte offset 12", err.Error())
}

func TestBundleResult_FailedCount(t *testing.T) {
	result := BundleResult{
		Matched: 3,
		Written: 2,
		Failed: []FileOutcome{
			{Path: "b.dart", Err: &ReadError{Kind: ReadErrorIO}},
		},
	}

	assert.Equal(t, 1, result.FailedCount())
	assert.True(t, result.Failed[0].Failed())
	assert.False(t, FileOutcome{Path: "a.dart"}.Failed())
	assert.Equal(t, "io", result.Failed[0].Err.Error())
}
