package models

import "time"

// FileOutcome describes what happened to a single matched file during a run.
type FileOutcome struct {
	Path  string     // Path as produced by the traversal (not canonicalized)
	Bytes int64      // Number of content bytes copied into the output
	Err   *ReadError // Non-nil when the file could not be read or decoded
}

// Failed reports whether the file was replaced by an error marker.
func (o FileOutcome) Failed() bool {
	return o.Err != nil
}

// BundleResult represents the aggregate result of one bundling run
type BundleResult struct {
	RunID       string        // Unique identifier of the run
	Root        string        // Root directory that was walked
	Output      string        // Output file that was written
	Matched     int           // Number of files whose name matched a suffix
	Written     int           // Number of files whose content was copied
	Failed      []FileOutcome // Matched files replaced by an error marker, in traversal order
	Bytes       int64         // Total content bytes copied (headers excluded)
	WalkErrors  int           // Non-fatal traversal errors (unreadable subdirectories etc.)
	Excluded    int           // Matching files skipped because they are the output or its lock
	RootMissing bool          // Root did not exist or could not be opened
	Duration    time.Duration // Time taken for the whole run
}

// FailedCount returns the number of matched files that could not be bundled.
func (r BundleResult) FailedCount() int {
	return len(r.Failed)
}

// RunInfo identifies a bundling run before it starts
type RunInfo struct {
	RunID    string   // Unique identifier of the run
	Root     string   // Root directory to walk
	Output   string   // Output file to write
	Suffixes []string // Name suffixes that select files
}
