package main

import (
	"bytes"
	"strings"
	"testing"
)

// TestNewRootCmd tests the root command creation.
func TestNewRootCmd(t *testing.T) {
	t.Parallel()

	cmd := NewRootCmd()

	t.Run("has correct use", func(t *testing.T) {
		t.Parallel()
		if cmd.Name() != "abuseipdb" {
			t.Errorf("expected name 'abuseipdb', got %q", cmd.Name())
		}
	})

	t.Run("has descriptions and version", func(t *testing.T) {
		t.Parallel()
		if cmd.Short == "" || cmd.Long == "" {
			t.Error("expected non-empty descriptions")
		}
		if cmd.Version == "" {
			t.Error("expected non-empty version")
		}
	})

	t.Run("has verbose flag", func(t *testing.T) {
		t.Parallel()
		flag := cmd.PersistentFlags().Lookup("verbose")
		if flag == nil {
			t.Fatal("expected verbose flag")
		}
		if flag.Shorthand != "v" {
			t.Errorf("expected shorthand 'v', got %q", flag.Shorthand)
		}
		if flag.DefValue != "false" {
			t.Errorf("expected default 'false', got %q", flag.DefValue)
		}
	})

	t.Run("has report flags", func(t *testing.T) {
		t.Parallel()
		flags := []struct {
			name      string
			shorthand string
			defValue  string
		}{
			{"config", "c", ""},
			{"timeout", "t", "10s"},
			{"proxy", "x", ""},
			{"strict", "", "false"},
			{"output", "o", "text"},
			{"json", "j", "false"},
			{"markdown", "m", "false"},
		}
		for _, f := range flags {
			flag := cmd.Flags().Lookup(f.name)
			if flag == nil {
				t.Errorf("expected %s flag", f.name)
				continue
			}
			if flag.Shorthand != f.shorthand {
				t.Errorf("%s: expected shorthand %q, got %q", f.name, f.shorthand, flag.Shorthand)
			}
			if flag.DefValue != f.defValue {
				t.Errorf("%s: expected default %q, got %q", f.name, f.defValue, flag.DefValue)
			}
		}
	})

	t.Run("has subcommands", func(t *testing.T) {
		t.Parallel()
		want := map[string]bool{"init": false, "categories": false, "version": false}
		for _, sub := range cmd.Commands() {
			if _, ok := want[sub.Name()]; ok {
				want[sub.Name()] = true
			}
		}
		for name, found := range want {
			if !found {
				t.Errorf("expected %s subcommand", name)
			}
		}
	})
}

// TestRun_Usage tests that missing arguments print usage and exit 1.
func TestRun_Usage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
	}{
		{"no arguments", nil},
		{"ip only", []string{"1.2.3.4"}},
		{"ip and categories", []string{"1.2.3.4", "18"}},
		{"flags only", []string{"--strict", "-j"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var stdout, stderr bytes.Buffer
			code := run(tt.args, &stdout, &stderr)

			if code != 1 {
				t.Errorf("expected exit code 1, got %d", code)
			}
			if stdout.String() != usageLine+"\n" {
				t.Errorf("expected usage on stdout, got %q", stdout.String())
			}
			if stderr.Len() != 0 {
				t.Errorf("expected empty stderr, got %q", stderr.String())
			}
		})
	}
}

// TestRun_Help tests that help is printed and exits 0.
func TestRun_Help(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	if code := run([]string{"--help"}, &stdout, &stderr); code != 0 {
		t.Fatalf("expected exit code 0, got %d (stderr: %s)", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "ABUSEIPDB_API_KEY") {
		t.Errorf("expected help to mention the API key variable, got %q", stdout.String())
	}
}

// TestRun_UnknownFlag tests that flag errors go to stderr with exit 1.
func TestRun_UnknownFlag(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	if code := run([]string{"--no-such-flag", "1.2.3.4", "18", "x"}, &stdout, &stderr); code != 1 {
		t.Errorf("expected exit code 1, got %d", code)
	}
	if !strings.Contains(stderr.String(), "no-such-flag") {
		t.Errorf("expected flag error on stderr, got %q", stderr.String())
	}
}
