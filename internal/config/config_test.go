package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, ".", cfg.Root)
	assert.Equal(t, "alle_dateien.txt", cfg.Output)
	assert.Equal(t, []string{".dart"}, cfg.Suffixes)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.LogDir)
	assert.True(t, cfg.LockOutput)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    func(t *testing.T, cfg *Config)
		wantErr bool
	}{
		{
			name: "full config",
			content: `root: /src/app/lib
output: /tmp/bundle.txt
suffixes:
  - .dart
  - .yaml
log_level: debug
log_dir: /tmp/logs
lock_output: false
`,
			want: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "/src/app/lib", cfg.Root)
				assert.Equal(t, "/tmp/bundle.txt", cfg.Output)
				assert.Equal(t, []string{".dart", ".yaml"}, cfg.Suffixes)
				assert.Equal(t, "debug", cfg.LogLevel)
				assert.Equal(t, "/tmp/logs", cfg.LogDir)
				assert.False(t, cfg.LockOutput)
			},
		},
		{
			name:    "partial config keeps defaults",
			content: "root: lib\n",
			want: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "lib", cfg.Root)
				assert.Equal(t, "alle_dateien.txt", cfg.Output)
				assert.Equal(t, []string{".dart"}, cfg.Suffixes)
				assert.Equal(t, "info", cfg.LogLevel)
				assert.True(t, cfg.LockOutput, "lock_output absent keeps the default")
			},
		},
		{
			name:    "explicit lock_output true",
			content: "lock_output: true\n",
			want: func(t *testing.T, cfg *Config) {
				assert.True(t, cfg.LockOutput)
			},
		},
		{
			name:    "empty suffix list keeps default",
			content: "suffixes: []\n",
			want: func(t *testing.T, cfg *Config) {
				assert.Equal(t, []string{".dart"}, cfg.Suffixes)
			},
		},
		{
			name:    "empty file",
			content: "",
			want: func(t *testing.T, cfg *Config) {
				assert.Equal(t, DefaultConfig(), cfg)
			},
		},
		{
			name:    "malformed yaml",
			content: "root: [unclosed\n",
			wantErr: true,
		},
		{
			name:    "wrong type",
			content: "suffixes: 42\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadConfig(writeConfig(t, tt.content))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.want(t, cfg)
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestMergeWithFlags(t *testing.T) {
	t.Run("nil flags leave config untouched", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.MergeWithFlags(nil, nil, nil, nil, nil, nil)
		assert.Equal(t, DefaultConfig(), cfg)
	})

	t.Run("flags override", func(t *testing.T) {
		cfg := DefaultConfig()
		root := "lib"
		output := "out.txt"
		level := "warn"
		logDir := "logs"
		lock := false

		cfg.MergeWithFlags(&root, &output, []string{".g.dart"}, &level, &logDir, &lock)

		assert.Equal(t, "lib", cfg.Root)
		assert.Equal(t, "out.txt", cfg.Output)
		assert.Equal(t, []string{".g.dart"}, cfg.Suffixes)
		assert.Equal(t, "warn", cfg.LogLevel)
		assert.Equal(t, "logs", cfg.LogDir)
		assert.False(t, cfg.LockOutput)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *Config)
		wantErr string
	}{
		{name: "defaults are valid", mutate: func(cfg *Config) {}},
		{name: "empty root", mutate: func(cfg *Config) { cfg.Root = " " }, wantErr: "root cannot be empty"},
		{name: "empty output", mutate: func(cfg *Config) { cfg.Output = "" }, wantErr: "output cannot be empty"},
		{name: "no suffixes", mutate: func(cfg *Config) { cfg.Suffixes = nil }, wantErr: "suffixes cannot be empty"},
		{name: "blank suffix", mutate: func(cfg *Config) { cfg.Suffixes = []string{".dart", ""} }, wantErr: "suffixes[1] cannot be empty"},
		{
			name:    "suffix with separator",
			mutate:  func(cfg *Config) { cfg.Suffixes = []string{"lib" + string(filepath.Separator) + "x.dart"} },
			wantErr: "cannot contain a path separator",
		},
		{name: "bad log level", mutate: func(cfg *Config) { cfg.LogLevel = "verbose" }, wantErr: "invalid log_level"},
		{name: "uppercase log level", mutate: func(cfg *Config) { cfg.LogLevel = "INFO" }, wantErr: "invalid log_level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Root = "lib"
	cfg.LockOutput = false

	data, err := cfg.Marshal()
	require.NoError(t, err)

	var raw map[string]interface{}
	require.NoError(t, yaml.Unmarshal(data, &raw))
	assert.Equal(t, "lib", raw["root"])
	assert.Equal(t, false, raw["lock_output"])

	path := writeConfig(t, string(data))
	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestGetHome(t *testing.T) {
	t.Run("env var wins", func(t *testing.T) {
		t.Setenv(HomeEnv, "/opt/filebundle")
		home, err := GetHome()
		require.NoError(t, err)
		assert.Equal(t, "/opt/filebundle", home)
	})

	t.Run("falls back to working directory", func(t *testing.T) {
		t.Setenv(HomeEnv, "")
		dir := t.TempDir()
		chdir(t, dir)

		home, err := GetHome()
		require.NoError(t, err)

		// Compare resolved paths, the temp dir may sit behind a symlink
		wantDir, _ := filepath.EvalSymlinks(dir)
		gotDir, _ := filepath.EvalSymlinks(filepath.Dir(home))
		assert.Equal(t, wantDir, gotDir)
		assert.Equal(t, DirName, filepath.Base(home))
		assert.NoDirExists(t, home, "GetHome must not create the directory")
	})
}

func TestDefaultConfigPath(t *testing.T) {
	t.Setenv(HomeEnv, "/opt/filebundle")
	path, err := DefaultConfigPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/opt/filebundle", "config.yaml"), path)
}

func TestWriteDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), DirName, "config.yaml")

	require.NoError(t, WriteDefault(path, DefaultConfig(), false))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), loaded)

	t.Run("refuses to overwrite", func(t *testing.T) {
		err := WriteDefault(path, DefaultConfig(), false)
		assert.True(t, errors.Is(err, ErrConfigExists), "expected ErrConfigExists, got %v", err)
	})

	t.Run("force overwrites", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Root = "lib"
		require.NoError(t, WriteDefault(path, cfg, true))

		loaded, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, "lib", loaded.Root)
	})
}
