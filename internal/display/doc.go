// Package display provides terminal output for bundle runs: per-file
// progress lines, the completion line and warning blocks.
//
// # Progress
//
// The walk streams, so the total is not known up front and each step is
// numbered as it arrives:
//
//	progress := display.NewProgressIndicator(os.Stderr)
//	progress.Start(root)
//	progress.Step(path)
//	progress.Complete(result)
//
// # Warnings
//
//	if len(result.Failed) > 0 {
//	    display.WarnUnreadableFiles(result.Failed).Display(os.Stderr)
//	}
//
// # ANSI Colors
//
//   - Cyan (\x1b[36m) for progress lines
//   - Green (\x1b[32m) for the completion mark
//   - Yellow (\x1b[33m) for warnings
//   - Reset (\x1b[0m) after each colored section
//
// All functions accept io.Writer so output can be captured in tests.
package display
