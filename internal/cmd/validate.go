package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// NewValidateCommand creates and returns the validate subcommand
func NewValidateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate the configuration and print the effective settings",
		Long: `Load the configuration file (or the defaults when none exists), check
every setting and print the effective configuration as YAML.

Exit code: 0 if valid, 1 if errors found`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return validateConfigWithOutput(cmd, cmd.OutOrStdout())
		},
		SilenceUsage: true,
	}

	return cmd
}

// validateConfigWithOutput validates the loaded configuration and writes it to output
func validateConfigWithOutput(cmd *cobra.Command, output io.Writer) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	data, err := cfg.Marshal()
	if err != nil {
		return err
	}

	fmt.Fprintln(output, "Configuration is valid:")
	fmt.Fprint(output, string(data))
	return nil
}
