package cmd

import (
	"errors"
	"fmt"

	"github.com/harrison/filebundle/internal/config"
	"github.com/spf13/cobra"
)

// NewInitCommand creates the init subcommand
func NewInitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration file",
		Long: `Write the default configuration to .filebundle/config.yaml (or the path
given with --config). An existing file is kept unless --force is set.`,
		Args: cobra.NoArgs,
		RunE: initCommand,
	}

	cmd.Flags().Bool("force", false, "Overwrite an existing configuration file")

	return cmd
}

func initCommand(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")

	path, err := configPath(cmd)
	if err != nil {
		return fmt.Errorf("failed to resolve config path: %w", err)
	}

	if err := config.WriteDefault(path, config.DefaultConfig(), force); err != nil {
		if errors.Is(err, config.ErrConfigExists) {
			return fmt.Errorf("%w (use --force to overwrite)", err)
		}
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote default configuration to %s\n", path)
	return nil
}
