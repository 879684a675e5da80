// Package bundle concatenates every matching file under a root directory into
// a single text file, one header+body block per file, in traversal order.
package bundle

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/harrison/filebundle/internal/filelock"
	"github.com/harrison/filebundle/internal/fileutil"
	"github.com/harrison/filebundle/internal/logger"
	"github.com/harrison/filebundle/internal/models"
)

// ErrOutputLocked is returned when another run holds the output lock
var ErrOutputLocked = errors.New("output file is locked by another run")

// CompletionFormat is the message printed after a finished run
const CompletionFormat = "Fertig! Alles steht in %s\n"

// Logger receives run events. Implementations must tolerate being called
// once per matched file.
type Logger interface {
	LogRunStart(info models.RunInfo)
	LogFileBundled(outcome models.FileOutcome)
	LogFileFailed(outcome models.FileOutcome)
	LogWalkError(err error)
	LogSummary(result models.BundleResult)
}

// Options configures a single Aggregate run
type Options struct {
	// Root is the directory to walk; it is not validated before the walk
	Root string
	// Output is created or truncated at the start of the run
	Output string
	// Suffixes selects files by exact, case-sensitive name suffix
	Suffixes []string
	// LockOutput holds <Output>.lock for the duration of the run
	LockOutput bool
}

// Aggregate walks opts.Root and writes one block per matching file to opts.Output.
//
// Files that cannot be read are recorded in-band with an error marker and the
// run continues. A missing root produces an empty output and a result with
// RootMissing set. Errors are returned only for systemic failures: the output
// cannot be created, locked, written or closed, or ctx is cancelled.
// The output file itself is never bundled, even when it lies under the root.
func Aggregate(ctx context.Context, opts Options, log Logger) (*models.BundleResult, error) {
	if log == nil {
		log = logger.NewNoOpLogger()
	}

	start := time.Now()
	result := &models.BundleResult{
		RunID:  uuid.NewString(),
		Root:   opts.Root,
		Output: opts.Output,
		Failed: make([]models.FileOutcome, 0),
	}

	lock := filelock.ForTarget(opts.Output)
	if opts.LockOutput {
		acquired, err := lock.TryLock()
		if err != nil {
			return nil, err
		}
		if !acquired {
			return nil, fmt.Errorf("%w: %s", ErrOutputLocked, lock.Path())
		}
		defer lock.Unlock()
	}

	out, err := os.Create(opts.Output)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}

	log.LogRunStart(models.RunInfo{
		RunID:    result.RunID,
		Root:     opts.Root,
		Output:   opts.Output,
		Suffixes: opts.Suffixes,
	})

	report := NewReportWriter(out)
	walkOpts := fileutil.WalkOptions{
		Suffixes:     opts.Suffixes,
		ExcludePaths: []string{opts.Output, lock.Path()},
		OnError:      log.LogWalkError,
	}

	walkResult, walkErr := fileutil.Walk(opts.Root, walkOpts, func(entry fileutil.Entry) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		outcome, err := report.WriteFile(entry.Path)
		if err != nil {
			return err
		}

		if outcome.Failed() {
			result.Failed = append(result.Failed, outcome)
			log.LogFileFailed(outcome)
		} else {
			result.Written++
			log.LogFileBundled(outcome)
		}
		return nil
	})

	flushErr := report.Flush()
	closeErr := out.Close()

	if walkErr != nil {
		return nil, fmt.Errorf("failed to bundle %s: %w", opts.Root, walkErr)
	}
	if flushErr != nil {
		return nil, flushErr
	}
	if closeErr != nil {
		return nil, fmt.Errorf("failed to close output file: %w", closeErr)
	}

	result.Matched = walkResult.Visited
	result.Excluded = walkResult.Excluded
	result.Bytes = report.Bytes()
	result.WalkErrors = len(walkResult.Errors)
	result.RootMissing = walkResult.RootMissing
	result.Duration = time.Since(start)

	log.LogSummary(*result)

	return result, nil
}
