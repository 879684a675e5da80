package fileutil

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// WalkOptions configures which files a walk reports
type WalkOptions struct {
	// Suffixes is a list of exact, case-sensitive name suffixes (e.g., ".dart").
	// An empty list matches every file.
	Suffixes []string
	// ExcludePaths lists files that are never reported. A candidate is excluded when
	// its absolute path matches or when it is the same file (os.SameFile), so an
	// excluded file reached through a symlinked directory is still skipped.
	ExcludePaths []string
	// OnError, if set, is called for every non-fatal error as it is recorded
	OnError func(err error)
}

// Entry is a matched file handed to the VisitFunc. It is not retained by the walker.
type Entry struct {
	// Path is the root exactly as given joined with the relative path; the root
	// is not cleaned, so "." yields "./a/x.dart"
	Path string
	// Name is the base name of the file
	Name string
}

// VisitFunc is called for every matched file in traversal order.
// Returning a non-nil error aborts the walk and Walk returns that error.
type VisitFunc func(entry Entry) error

// WalkResult contains the counters of a finished walk
type WalkResult struct {
	// Visited is the number of matched files handed to the VisitFunc
	Visited int
	// Excluded is the number of matched files skipped because of ExcludePaths
	Excluded int
	// RootMissing is true when the root does not exist, is not a directory or cannot be listed
	RootMissing bool
	// Errors contains the non-fatal errors encountered while walking
	Errors []error
}

// MatchSuffix reports whether name ends with one of the suffixes.
// An empty suffix list matches every name.
func MatchSuffix(name string, suffixes []string) bool {
	if len(suffixes) == 0 {
		return true
	}
	for _, suffix := range suffixes {
		if strings.HasSuffix(name, suffix) {
			return true
		}
	}
	return false
}

// Walk recursively visits every file under root whose name matches opts.Suffixes.
//
// Directories are descended in the order filepath.WalkDir yields them. A root that
// does not exist or cannot be read yields zero entries and sets RootMissing; it is
// not an error. Only an error returned by visit aborts the walk.
func Walk(root string, opts WalkOptions, visit VisitFunc) (*WalkResult, error) {
	result := &WalkResult{
		Errors: make([]error, 0),
	}

	record := func(err error) {
		result.Errors = append(result.Errors, err)
		if opts.OnError != nil {
			opts.OnError(err)
		}
	}

	// Create excluded paths map for fast lookup
	excludeMap := make(map[string]bool)
	var excludeInfos []fs.FileInfo
	for _, p := range opts.ExcludePaths {
		absPath, err := filepath.Abs(p)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve excluded path %s: %w", p, err)
		}
		excludeMap[absPath] = true
		if info, err := os.Stat(p); err == nil {
			excludeInfos = append(excludeInfos, info)
		}
	}

	// A symlinked root is followed, links below it are not
	walkRoot := root
	if info, err := os.Lstat(root); err == nil && info.Mode()&fs.ModeSymlink != 0 {
		walkRoot = root + string(filepath.Separator)
	}

	err := filepath.WalkDir(walkRoot, func(path string, d fs.DirEntry, err error) error {
		if path == walkRoot {
			if err != nil {
				result.RootMissing = true
				record(fmt.Errorf("error accessing root %s: %w", path, err))
				return filepath.SkipDir
			}
			if !d.IsDir() {
				result.RootMissing = true
				record(fmt.Errorf("root is not a directory: %s", path))
				return filepath.SkipDir
			}
			return nil
		}

		if err != nil {
			record(fmt.Errorf("error accessing %s: %w", path, err))
			return nil // Continue walking
		}

		if d.IsDir() {
			return nil
		}

		name := d.Name()
		if !MatchSuffix(name, opts.Suffixes) {
			return nil
		}

		switch {
		case d.Type().IsRegular():
		case d.Type()&fs.ModeSymlink != 0:
			// Links to directories are not followed; dangling links are still
			// reported so the reader can record the failure.
			if info, statErr := os.Stat(path); statErr == nil && info.IsDir() {
				return nil
			}
		default:
			// Sockets, devices and named pipes
			return nil
		}

		if len(excludeMap) > 0 {
			absPath, err := filepath.Abs(path)
			if err != nil {
				record(fmt.Errorf("failed to resolve path %s: %w", path, err))
				return nil
			}
			if excludeMap[absPath] || sameAsAny(path, excludeInfos) {
				result.Excluded++
				return nil
			}
		}

		rel, err := filepath.Rel(walkRoot, path)
		if err != nil {
			record(fmt.Errorf("failed to resolve path %s: %w", path, err))
			return nil
		}

		result.Visited++
		return visit(Entry{Path: joinRoot(root, rel), Name: name})
	})
	if err != nil {
		return result, err
	}

	return result, nil
}

// joinRoot appends rel to root without cleaning root. A separator is added
// only when root does not already end in one.
func joinRoot(root, rel string) string {
	if root == "" || os.IsPathSeparator(root[len(root)-1]) {
		return root + rel
	}
	return root + string(filepath.Separator) + rel
}

// sameAsAny reports whether path names the same file as one of infos
func sameAsAny(path string, infos []fs.FileInfo) bool {
	if len(infos) == 0 {
		return false
	}
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	for _, excluded := range infos {
		if os.SameFile(info, excluded) {
			return true
		}
	}
	return false
}
