package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/harrison/filebundle/internal/bundle"
	"github.com/harrison/filebundle/internal/display"
	"github.com/harrison/filebundle/internal/logger"
	"github.com/spf13/cobra"
)

// NewBundleCommand creates the bundle command
func NewBundleCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bundle [root]",
		Short: "Write all matching files under root into one text file",
		Long: `Walk the root directory (default: current directory) and write every
file whose name ends with one of the suffixes (default: .dart) into the
output file (default: alle_dateien.txt).

Each file is written as:

  ===== Datei: <path> =====

  <file contents>

Files that cannot be read or are not valid UTF-8 get an error marker line
instead of their contents. The output file itself is never included.

Unless --no-lock is given, the run holds <output>.lock while it writes. The
lock file is left in place afterwards; removing it while another run waits
on it would break the lock.

Examples:
  filebundle bundle                          # .dart files under . into alle_dateien.txt
  filebundle bundle lib -o lib.txt           # Bundle lib/ into lib.txt
  filebundle bundle --suffix .go --suffix .mod
  filebundle bundle --log-dir .filebundle/logs --log-level debug
  filebundle bundle --quiet                  # Only print the completion line`,
		Args: cobra.MaximumNArgs(1),
		RunE: bundleCommand,
	}

	cmd.Flags().StringP("output", "o", "", "Output file (default: alle_dateien.txt)")
	cmd.Flags().StringArray("suffix", nil, "File name suffix to include, repeatable (default: .dart)")
	cmd.Flags().String("log-level", "", "Console log level: trace, debug, info, warn, error")
	cmd.Flags().String("log-dir", "", "Directory for run log files")
	cmd.Flags().Bool("no-lock", false, "Do not lock the output file during the run")
	cmd.Flags().BoolP("quiet", "q", false, "Do not print a progress line per file")

	return cmd
}

// bundleCommand implements the bundle command logic
func bundleCommand(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	outputFlag, _ := cmd.Flags().GetString("output")
	suffixFlag, _ := cmd.Flags().GetStringArray("suffix")
	logLevelFlag, _ := cmd.Flags().GetString("log-level")
	logDirFlag, _ := cmd.Flags().GetString("log-dir")
	quiet, _ := cmd.Flags().GetBool("quiet")

	// Build flag pointers for merge (only values given on the command line)
	var rootPtr *string
	if len(args) == 1 {
		rootPtr = &args[0]
	}

	var outputPtr *string
	if cmd.Flags().Changed("output") {
		outputPtr = &outputFlag
	}

	var suffixes []string
	if cmd.Flags().Changed("suffix") {
		suffixes = suffixFlag
	}

	var logLevelPtr *string
	if cmd.Flags().Changed("log-level") {
		logLevelPtr = &logLevelFlag
	}

	var logDirPtr *string
	if cmd.Flags().Changed("log-dir") {
		logDirPtr = &logDirFlag
	}

	var lockPtr *bool
	if cmd.Flags().Changed("no-lock") {
		noLock, _ := cmd.Flags().GetBool("no-lock")
		lock := !noLock
		lockPtr = &lock
	}

	cfg.MergeWithFlags(rootPtr, outputPtr, suffixes, logLevelPtr, logDirPtr, lockPtr)

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	consoleLog := logger.NewConsoleLogger(cmd.ErrOrStderr(), cfg.LogLevel)
	multiLog := &multiLogger{loggers: []bundle.Logger{consoleLog}}

	if cfg.LogDir != "" {
		fileLog, err := logger.NewFileLoggerWithDirAndLevel(cfg.LogDir, cfg.LogLevel)
		if err != nil {
			return fmt.Errorf("failed to create file logger: %w", err)
		}
		defer fileLog.Close()
		multiLog.loggers = append(multiLog.loggers, fileLog)
		consoleLog.LogDebug(fmt.Sprintf("Writing run log to %s", fileLog.RunFile()))
	}

	if !quiet {
		progress := display.NewProgressIndicator(cmd.OutOrStdout())
		progress.Start(cfg.Root)
		multiLog.loggers = append(multiLog.loggers, &progressLogger{progress: progress})
	}

	ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := bundle.Options{
		Root:       cfg.Root,
		Output:     cfg.Output,
		Suffixes:   cfg.Suffixes,
		LockOutput: cfg.LockOutput,
	}

	result, err := bundle.Aggregate(ctx, opts, multiLog)
	if err != nil {
		return err
	}

	if result.RootMissing {
		consoleLog.LogWarn(fmt.Sprintf("Root directory %s not found or not readable, output is empty", cfg.Root))
		display.WarnRootMissing(cfg.Root).Display(cmd.ErrOrStderr())
	}
	if result.FailedCount() > 0 {
		display.WarnUnreadableFiles(result.Failed).Display(cmd.ErrOrStderr())
	}

	fmt.Fprintf(cmd.OutOrStdout(), bundle.CompletionFormat, cfg.Output)
	return nil
}

// commandContext returns the command's context, or Background when run outside Execute
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
