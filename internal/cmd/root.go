package cmd

import (
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for filebundle
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "filebundle",
		Short: "Concatenate source files of one type into a single text file",
		Long: `Filebundle walks a directory tree and writes every file whose name ends
with one of the configured suffixes into a single text file, each preceded
by a header naming its path.

Unreadable files are recorded in the output with an error marker and the
run continues. Configuration is loaded from .filebundle/config.yaml if
present; CLI flags override configuration file settings.`,
		Version: Version,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
	}

	cmd.PersistentFlags().String("config", "", "Path to config file (default: .filebundle/config.yaml)")

	cmd.AddCommand(NewBundleCommand())
	cmd.AddCommand(NewValidateCommand())
	cmd.AddCommand(NewInitCommand())

	return cmd
}
