package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/harrison/filebundle/internal/filelock"
)

// DirName is the per-project directory holding config.yaml and logs
const DirName = ".filebundle"

// HomeEnv overrides the filebundle home directory
const HomeEnv = "FILEBUNDLE_HOME"

// GetHome returns the filebundle home directory
// Priority order:
//  1. FILEBUNDLE_HOME environment variable (if set)
//  2. <current working directory>/.filebundle
//
// The directory is not created.
func GetHome() (string, error) {
	if home := os.Getenv(HomeEnv); home != "" {
		return home, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	return filepath.Join(cwd, DirName), nil
}

// DefaultConfigPath returns $FILEBUNDLE_HOME/config.yaml
func DefaultConfigPath() (string, error) {
	home, err := GetHome()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, "config.yaml"), nil
}

// WriteDefault writes cfg as YAML to path. It refuses to replace an existing
// file unless force is set, returning ErrConfigExists.
func WriteDefault(path string, cfg *Config, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%w: %s", ErrConfigExists, path)
		}
	}

	data, err := cfg.Marshal()
	if err != nil {
		return err
	}

	if err := filelock.LockAndWrite(path, data); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
