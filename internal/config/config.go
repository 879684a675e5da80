package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/harrison/filebundle/internal/logger"
)

// ErrConfigExists is returned by WriteDefault when the target file is already present
var ErrConfigExists = errors.New("config file already exists")

// Config represents filebundle configuration options
type Config struct {
	// Root is the directory to walk
	Root string `yaml:"root"`

	// Output is the file the bundle is written to; truncated on every run
	Output string `yaml:"output"`

	// Suffixes selects files by exact, case-sensitive name suffix
	Suffixes []string `yaml:"suffixes"`

	// LogLevel sets the logging verbosity (trace, debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// LogDir is the directory where run logs will be written (empty = no file log)
	LogDir string `yaml:"log_dir"`

	// LockOutput takes an advisory lock on <output>.lock for the duration of a run
	LockOutput bool `yaml:"lock_output"`
}

// DefaultConfig returns a Config with sensible default values
func DefaultConfig() *Config {
	return &Config{
		Root:       ".",
		Output:     "alle_dateien.txt",
		Suffixes:   []string{".dart"},
		LogLevel:   "info",
		LogDir:     "",
		LockOutput: true,
	}
}

// LoadConfig loads configuration from the specified file path
// If the file doesn't exist, returns default configuration without error
// If the file exists but is malformed, returns an error
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var yamlCfg Config
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Apply non-zero values from file (merging with defaults)
	if yamlCfg.Root != "" {
		cfg.Root = yamlCfg.Root
	}
	if yamlCfg.Output != "" {
		cfg.Output = yamlCfg.Output
	}
	if len(yamlCfg.Suffixes) > 0 {
		cfg.Suffixes = yamlCfg.Suffixes
	}
	if yamlCfg.LogLevel != "" {
		cfg.LogLevel = yamlCfg.LogLevel
	}
	if yamlCfg.LogDir != "" {
		cfg.LogDir = yamlCfg.LogDir
	}

	// lock_output defaults to true, so an explicit false has to be detected
	var rawMap map[string]interface{}
	if err := yaml.Unmarshal(data, &rawMap); err == nil {
		if _, exists := rawMap["lock_output"]; exists {
			cfg.LockOutput = yamlCfg.LockOutput
		}
	}

	return cfg, nil
}

// MergeWithFlags merges CLI flags into the configuration
// Non-nil flag values override configuration values
// This allows CLI flags to take precedence over config file settings
func (c *Config) MergeWithFlags(root *string, output *string, suffixes []string, logLevel *string, logDir *string, lockOutput *bool) {
	if root != nil {
		c.Root = *root
	}
	if output != nil {
		c.Output = *output
	}
	if len(suffixes) > 0 {
		c.Suffixes = suffixes
	}
	if logLevel != nil {
		c.LogLevel = *logLevel
	}
	if logDir != nil {
		c.LogDir = *logDir
	}
	if lockOutput != nil {
		c.LockOutput = *lockOutput
	}
}

// Validate validates the configuration values
// Returns an error if any values are invalid
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Root) == "" {
		return fmt.Errorf("root cannot be empty")
	}

	if strings.TrimSpace(c.Output) == "" {
		return fmt.Errorf("output cannot be empty")
	}

	if len(c.Suffixes) == 0 {
		return fmt.Errorf("suffixes cannot be empty")
	}
	for i, suffix := range c.Suffixes {
		if suffix == "" {
			return fmt.Errorf("suffixes[%d] cannot be empty", i)
		}
		if strings.ContainsRune(suffix, filepath.Separator) {
			return fmt.Errorf("suffixes[%d] %q cannot contain a path separator", i, suffix)
		}
	}

	if !logger.IsValidLevel(c.LogLevel) {
		return fmt.Errorf("invalid log_level %q, must be one of: trace, debug, info, warn, error", c.LogLevel)
	}

	return nil
}

// Marshal renders the configuration as YAML
func (c *Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return data, nil
}
