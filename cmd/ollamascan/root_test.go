package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nao1215/ollamascan/internal/catalog"
	"github.com/nao1215/ollamascan/internal/config"
	"github.com/nao1215/ollamascan/internal/message"
	"github.com/spf13/cobra"
)

// TestNewRootCmd tests the root command creation.
func TestNewRootCmd(t *testing.T) {
	t.Parallel()

	cmd := NewRootCmd()

	t.Run("has correct use", func(t *testing.T) {
		t.Parallel()
		if cmd.Use != "ollamascan" {
			t.Errorf("expected use 'ollamascan', got %q", cmd.Use)
		}
	})

	t.Run("has short description", func(t *testing.T) {
		t.Parallel()
		if cmd.Short == "" {
			t.Error("expected non-empty short description")
		}
	})

	t.Run("has long description", func(t *testing.T) {
		t.Parallel()
		if cmd.Long == "" {
			t.Error("expected non-empty long description")
		}
	})

	t.Run("has version", func(t *testing.T) {
		t.Parallel()
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

	t.Run("has lang flag", func(t *testing.T) {
		t.Parallel()
		flag := cmd.PersistentFlags().Lookup("lang")
		if flag == nil {
			t.Fatal("expected lang flag")
		}
		if flag.Shorthand != "l" {
			t.Errorf("expected shorthand 'l', got %q", flag.Shorthand)
		}
		if flag.DefValue != config.DefaultLanguage {
			t.Errorf("expected default %q, got %q", config.DefaultLanguage, flag.DefValue)
		}
	})

	t.Run("has host flag", func(t *testing.T) {
		t.Parallel()
		flag := cmd.PersistentFlags().Lookup("host")
		if flag == nil {
			t.Fatal("expected host flag")
		}
		if flag.DefValue != config.DefaultHost {
			t.Errorf("expected default %q, got %q", config.DefaultHost, flag.DefValue)
		}
	})

	t.Run("has manager flag", func(t *testing.T) {
		t.Parallel()
		flag := cmd.PersistentFlags().Lookup("manager")
		if flag == nil {
			t.Fatal("expected manager flag")
		}
		if flag.DefValue != config.DefaultManagerAddress {
			t.Errorf("expected default %q, got %q", config.DefaultManagerAddress, flag.DefValue)
		}
	})

	t.Run("has config flag", func(t *testing.T) {
		t.Parallel()
		flag := cmd.PersistentFlags().Lookup("config")
		if flag == nil {
			t.Fatal("expected config flag")
		}
		if flag.Shorthand != "c" {
			t.Errorf("expected shorthand 'c', got %q", flag.Shorthand)
		}
	})

	t.Run("has subcommands", func(t *testing.T) {
		t.Parallel()
		want := map[string]bool{
			"search [query]":     false,
			"tags [model]":       false,
			"exists [model]":     false,
			"info [model]":       false,
			"pull [model[:tag]]": false,
			"installed":          false,
			"init":               false,
			"version":            false,
		}
		for _, sub := range cmd.Commands() {
			if _, ok := want[sub.Use]; ok {
				want[sub.Use] = true
			}
		}
		for use, found := range want {
			if !found {
				t.Errorf("expected %q subcommand", use)
			}
		}
	})

	t.Run("silences usage and errors", func(t *testing.T) {
		t.Parallel()
		if !cmd.SilenceUsage {
			t.Error("expected SilenceUsage to be true")
		}
		if !cmd.SilenceErrors {
			t.Error("expected SilenceErrors to be true")
		}
	})
}

// TestExitCode tests the error to exit code mapping.
func TestExitCode(t *testing.T) {
	t.Parallel()

	t.Run("operational errors exit 1", func(t *testing.T) {
		t.Parallel()
		if got := exitCode(errors.New("search query is required")); got != 1 {
			t.Errorf("expected exit code 1, got %d", got)
		}
	})

	t.Run("localized not-found errors exit 2", func(t *testing.T) {
		t.Parallel()
		err := &notFoundError{msg: "model not found"}
		if got := exitCode(err); got != 2 {
			t.Errorf("expected exit code 2, got %d", got)
		}
	})

	t.Run("wrapped catalog not-found errors exit 2", func(t *testing.T) {
		t.Parallel()
		err := fmt.Errorf("lookup failed: %w", catalog.ErrModelNotFound)
		if got := exitCode(err); got != 2 {
			t.Errorf("expected exit code 2, got %d", got)
		}
	})
}

// TestSetupLogger tests the logger setup.
func TestSetupLogger(t *testing.T) {
	t.Parallel()

	t.Run("creates logger for verbose mode", func(t *testing.T) {
		t.Parallel()
		logger := setupLogger(true)
		if logger == nil {
			t.Error("expected non-nil logger")
		}
	})

	t.Run("creates logger for non-verbose mode", func(t *testing.T) {
		t.Parallel()
		logger := setupLogger(false)
		if logger == nil {
			t.Error("expected non-nil logger")
		}
	})
}

// TestGetVerboseFlag tests the verbose flag retrieval.
func TestGetVerboseFlag(t *testing.T) {
	t.Run("returns false when flag not set", func(t *testing.T) {
		cmd := NewSearchCmd()
		result := getVerboseFlag(cmd)
		if result {
			t.Error("expected false when flag not set")
		}
	})

	t.Run("returns value from parent verbose flag", func(t *testing.T) {
		root := NewRootCmd()
		// Set verbose flag to true
		_ = root.PersistentFlags().Set("verbose", "true")

		// Get search subcommand
		searchCmd, _, err := root.Find([]string{"search"})
		if err != nil {
			t.Fatalf("failed to find search command: %v", err)
		}

		result := getVerboseFlag(searchCmd)
		if !result {
			t.Error("expected true from parent verbose flag")
		}
	})
}

// TestResolveMessages tests language resolution with English fallback.
func TestResolveMessages(t *testing.T) {
	t.Parallel()

	quiet := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("resolves spanish", func(t *testing.T) {
		t.Parallel()
		cfg := config.NewConfig()
		cfg.Language = "es"
		msgs := resolveMessages(cfg, quiet)
		if msgs.Language() != message.LanguageSpanish {
			t.Errorf("expected Spanish, got %v", msgs.Language())
		}
	})

	t.Run("accepts regional variants", func(t *testing.T) {
		t.Parallel()
		cfg := config.NewConfig()
		cfg.Language = "es-MX"
		msgs := resolveMessages(cfg, quiet)
		if msgs.Language() != message.LanguageSpanish {
			t.Errorf("expected Spanish for es-MX, got %v", msgs.Language())
		}
	})

	t.Run("falls back to english for unsupported codes", func(t *testing.T) {
		t.Parallel()
		cfg := config.NewConfig()
		cfg.Language = "tlh"
		msgs := resolveMessages(cfg, quiet)
		if msgs.Language() != message.LanguageEnglish {
			t.Errorf("expected English fallback, got %v", msgs.Language())
		}
	})
}

// newParsedCommand returns the named subcommand with its flag set parsed,
// the state cobra leaves it in right before RunE runs.
func newParsedCommand(t *testing.T, name string, flags ...string) *cobra.Command {
	t.Helper()

	root := NewRootCmd()
	cmd, _, err := root.Find([]string{name})
	if err != nil {
		t.Fatalf("failed to find %s command: %v", name, err)
	}
	if err := cmd.ParseFlags(flags); err != nil {
		t.Fatalf("failed to parse flags: %v", err)
	}
	return cmd
}

// TestBuildConfig tests configuration building from flags and files.
func TestBuildConfig(t *testing.T) {
	t.Run("keeps defaults with an empty configuration file", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, ".ollamascan")
		if err := os.WriteFile(configPath, []byte("# defaults only\n"), 0600); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		cmd := newParsedCommand(t, "tags", "--config", configPath)
		cfg, err := buildConfig(cmd)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Host != config.DefaultHost {
			t.Errorf("expected host %q, got %q", config.DefaultHost, cfg.Host)
		}
		if cfg.Limit != config.DefaultSearchLimit {
			t.Errorf("expected limit %d, got %d", config.DefaultSearchLimit, cfg.Limit)
		}
		if cfg.ManagerAddress != config.DefaultManagerAddress {
			t.Errorf("expected manager %q, got %q", config.DefaultManagerAddress, cfg.ManagerAddress)
		}
	})

	t.Run("applies configuration file values over flag defaults", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, ".ollamascan")
		content := []byte("host: https://mirror.example.com\nlimit: 5\n")
		if err := os.WriteFile(configPath, content, 0600); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		// The host flag carries a default, but the user did not set it,
		// so the file value must win.
		cmd := newParsedCommand(t, "tags", "--config", configPath)
		cfg, err := buildConfig(cmd)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Host != "https://mirror.example.com" {
			t.Errorf("expected the file host, got %q", cfg.Host)
		}
		if cfg.Limit != 5 {
			t.Errorf("expected limit 5, got %d", cfg.Limit)
		}
	})

	t.Run("explicitly set flags override the configuration file", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, ".ollamascan")
		content := []byte("host: https://mirror.example.com\nlanguage: es\n")
		if err := os.WriteFile(configPath, content, 0600); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		cmd := newParsedCommand(t, "tags",
			"--config", configPath,
			"--host", "https://flag.example.com",
			"--lang", "en")
		cfg, err := buildConfig(cmd)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Host != "https://flag.example.com" {
			t.Errorf("expected the flag host, got %q", cfg.Host)
		}
		if cfg.Language != "en" {
			t.Errorf("expected the flag language, got %q", cfg.Language)
		}
	})

	t.Run("returns error when an explicit config file does not exist", func(t *testing.T) {
		cmd := newParsedCommand(t, "tags", "--config", "/nonexistent/path/.ollamascan")
		_, err := buildConfig(cmd)
		if err == nil {
			t.Fatal("expected error for missing config file")
		}
		if !strings.Contains(err.Error(), "configuration file not found") {
			t.Errorf("expected 'configuration file not found' error, got %v", err)
		}
	})

	t.Run("returns error for invalid config file", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "invalid.yaml")
		if err := os.WriteFile(configPath, []byte("{invalid yaml"), 0600); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		cmd := newParsedCommand(t, "tags", "--config", configPath)
		if _, err := buildConfig(cmd); err == nil {
			t.Fatal("expected error for invalid config file")
		}
	})

	t.Run("builds config with manager flag", func(t *testing.T) {
		cmd := newParsedCommand(t, "installed", "--manager", "http://127.0.0.1:9999")
		cfg, err := buildConfig(cmd)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.ManagerAddress != "http://127.0.0.1:9999" {
			t.Errorf("expected manager 'http://127.0.0.1:9999', got %q", cfg.ManagerAddress)
		}
	})

	t.Run("builds config with verbose flag", func(t *testing.T) {
		cmd := newParsedCommand(t, "tags", "--verbose")
		cfg, err := buildConfig(cmd)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !cfg.Verbose {
			t.Error("expected Verbose to be true")
		}
	})
}
