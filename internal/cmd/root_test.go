package cmd

import (
	"bytes"
	"strings"
	"testing"
)

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	if cmd == nil {
		t.Fatal("Root command should not be nil")
	}

	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"--help"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("--help returned error: %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "filebundle") && !strings.Contains(output, "Filebundle") {
		t.Errorf("Help text should contain 'filebundle', got: %s", output)
	}
	if !strings.Contains(output, "suffixes") {
		t.Errorf("Help text should mention suffixes, got: %s", output)
	}
}

func TestRootCommandHasSubcommands(t *testing.T) {
	cmd := NewRootCommand()

	if cmd.Use != "filebundle" {
		t.Errorf("Expected Use to be 'filebundle', got '%s'", cmd.Use)
	}

	want := map[string]bool{"bundle": false, "validate": false, "init": false}
	for _, sub := range cmd.Commands() {
		if _, ok := want[sub.Name()]; ok {
			want[sub.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("Expected subcommand %q to be registered", name)
		}
	}
}

func TestVersionFlag(t *testing.T) {
	cmd := NewRootCommand()

	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"--version"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("--version returned error: %v", err)
	}

	if !strings.Contains(buf.String(), Version) {
		t.Errorf("Version output should contain %q, got: %s", Version, buf.String())
	}
}

func TestConfigFlagIsPersistent(t *testing.T) {
	cmd := NewRootCommand()

	if cmd.PersistentFlags().Lookup("config") == nil {
		t.Fatal("Expected persistent --config flag on root command")
	}
}
