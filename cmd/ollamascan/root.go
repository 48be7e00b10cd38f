// Package main provides the entry point for the ollamascan CLI.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/nao1215/ollamascan/internal/catalog"
	"github.com/nao1215/ollamascan/internal/config"
	"github.com/nao1215/ollamascan/internal/log"
	"github.com/nao1215/ollamascan/internal/manager"
	"github.com/nao1215/ollamascan/internal/message"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for ollamascan.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ollamascan",
		Short: "Search and inspect models in the Ollama catalog",
		Long: `ollamascan searches the Ollama model catalog from the command line.

It fetches the public library pages, extracts model names, tags, parameter
counts, and download sizes, and renders them as an aligned table, JSON, or
Markdown. The pull and installed commands delegate to a local Ollama daemon.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringP("lang", "l", config.DefaultLanguage,
		"Message language (en or es)")
	cmd.PersistentFlags().String("host", config.DefaultHost,
		"Base URL of the model catalog")
	cmd.PersistentFlags().String("manager", config.DefaultManagerAddress,
		"Address of the local model manager API")
	cmd.PersistentFlags().StringP("config", "c", "",
		"Configuration file path (default: .ollamascan in current, XDG config, or home directory)")

	// Add subcommands
	cmd.AddCommand(NewSearchCmd())
	cmd.AddCommand(NewTagsCmd())
	cmd.AddCommand(NewExistsCmd())
	cmd.AddCommand(NewInfoCmd())
	cmd.AddCommand(NewPullCmd())
	cmd.AddCommand(NewInstalledCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// notFoundError marks an error whose message is already localized and
// whose meaning is "the requested model does not exist in the catalog".
// Execute maps it to exit code 2 so scripts can tell an absent model
// apart from an operational failure.
type notFoundError struct {
	msg string
}

// Error returns the localized message.
func (e *notFoundError) Error() string {
	return e.msg
}

// exitCode maps a command error to the process exit code.
// Missing or invalid input and operational failures exit 1; a model that
// does not exist in the catalog exits 2.
func exitCode(err error) int {
	var notFound *notFoundError
	if errors.As(err, &notFound) || errors.Is(err, catalog.ErrModelNotFound) {
		return 2
	}
	return 1
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

// buildConfig creates a Config from the configuration file and cobra flags.
//
// Precedence, lowest to highest: built-in defaults, the configuration
// file, flags the user explicitly set. The Changed guards keep flag
// default values from stomping file settings.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()

	var err error

	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	// If the user explicitly specified a config file path, error if not found.
	// If no path specified, silently keep defaults when no file exists.
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)

	if configPath != "" {
		file, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		file.ApplyTo(cfg)
	} else if explicitConfigPath {
		// User explicitly specified a config file that doesn't exist
		return nil, fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
	}

	if cmd.Flags().Changed("host") {
		cfg.Host, err = cmd.Flags().GetString("host")
		if err != nil {
			return nil, err
		}
	}

	if cmd.Flags().Changed("manager") {
		cfg.ManagerAddress, err = cmd.Flags().GetString("manager")
		if err != nil {
			return nil, err
		}
	}

	if cmd.Flags().Changed("lang") {
		cfg.Language, err = cmd.Flags().GetString("lang")
		if err != nil {
			return nil, err
		}
	}

	cfg.Verbose = getVerboseFlag(cmd)

	return cfg, nil
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// setupLogger creates a structured logger based on verbosity setting.
// The secure handler masks credentials from custom catalog headers so a
// verbose run does not leak them into terminal scrollback.
func setupLogger(verbose bool) *slog.Logger {
	return log.NewSecureLogger(os.Stderr, verbose)
}

// resolveMessages builds the localized message formatter for cfg.Language.
// An unsupported code falls back to English with a warning rather than
// aborting; the message language is never worth failing a command over.
func resolveMessages(cfg *config.Config, logger *slog.Logger) *message.Messages {
	lang, err := message.ParseLanguage(cfg.Language)
	if err != nil {
		logger.Warn("unsupported language, falling back to English", "language", cfg.Language)
	}
	return message.NewMessages(lang)
}

// newCatalogClient wires a catalog client from the configuration.
func newCatalogClient(cfg *config.Config, logger *slog.Logger) *catalog.Client {
	fetcher := catalog.NewFetcher(
		&http.Client{Timeout: cfg.Timeout},
		catalog.WithUserAgent(cfg.UserAgent),
		catalog.WithMaxBodySize(cfg.MaxBodySize),
		catalog.WithHeaders(cfg.Headers),
	)
	extractor := catalog.NewRegexExtractor(
		catalog.WithContextLines(cfg.TagContextLines),
		catalog.WithExtractorLogger(logger),
	)
	return catalog.NewClient(fetcher,
		catalog.WithHost(cfg.Host),
		catalog.WithExtractor(extractor),
		catalog.WithConcurrency(cfg.Concurrency),
		catalog.WithLogger(logger),
	)
}

// newManager wires the local model manager client from the configuration.
func newManager(cfg *config.Config) manager.Manager {
	return manager.NewOllama(
		&http.Client{Timeout: cfg.Timeout},
		manager.WithAddress(cfg.ManagerAddress),
	)
}

// commandContext returns a context cancelled by SIGINT or SIGTERM so that
// an interrupted search stops its in-flight detail fetches.
func commandContext(logger *slog.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal, cancelling...")
		cancel()
	}()

	return ctx, cancel
}
