package cmd

import (
	"fmt"

	"github.com/harrison/filebundle/internal/config"
	"github.com/spf13/cobra"
)

// configPath returns the --config value or the default config location
func configPath(cmd *cobra.Command) (string, error) {
	path, _ := cmd.Flags().GetString("config")
	if path != "" {
		return path, nil
	}
	return config.DefaultConfigPath()
}

// loadConfig loads the configuration named by --config, falling back to defaults
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, err := configPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve config path: %w", err)
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
	}
	return cfg, nil
}
