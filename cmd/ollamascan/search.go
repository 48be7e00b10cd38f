package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/nao1215/ollamascan/internal/config"
	"github.com/nao1215/ollamascan/internal/model"
	"github.com/nao1215/ollamascan/internal/report"
	"github.com/spf13/cobra"
)

// NewSearchCmd creates the search command.
func NewSearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search the catalog and list matching models with tag details",
		Long: `Search fetches the catalog listing, filters model names by case-insensitive
substring match, and fetches the detail page of each match to recover its
tags, parameter counts, and download sizes.

Filtering always happens locally against the full listing, so results stay
consistent regardless of what the catalog's own search box would return.
Attributes that cannot be recovered from a page are reported as N/A.

Examples:
  # Search for llama models
  ollamascan search llama

  # Fetch details for the first 5 matches only
  ollamascan search llama --limit 5

  # Output JSON instead of the aligned table
  ollamascan search llama --json

  # Write Markdown to a file (an aligned table is still echoed to stdout)
  ollamascan search llama --markdown -o results.md

  # Spanish messages
  ollamascan search llama --lang es`,
		Args: cobra.ArbitraryArgs,
		RunE: runSearchCmd,
	}

	cmd.Flags().IntP("limit", "n", config.DefaultSearchLimit,
		"Maximum number of matched models to fetch details for")
	cmd.Flags().BoolP("json", "j", false,
		"Output results as JSON (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output results as Markdown (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write results to specified file path (creates directories if needed)")

	return cmd
}

// runSearchCmd executes the search command.
func runSearchCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	if err := applySearchFlags(cmd, cfg); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(cfg.Verbose)
	slog.SetDefault(logger)
	msgs := resolveMessages(cfg, logger)

	if len(args) == 0 {
		_ = cmd.Usage() //nolint:errcheck // Usage output is best effort
		return errors.New(msgs.MissingQuery())
	}

	ctx, cancel := commandContext(logger)
	defer cancel()

	client := newCatalogClient(cfg, logger)
	results, err := client.Search(ctx, args[0], cfg.Limit)
	if err != nil {
		return err
	}

	return writeResults(cfg, cmd.OutOrStdout(), results)
}

// applySearchFlags folds the search command's local flags into cfg.
// The limit flag is Changed-guarded because the configuration file can
// set it too; the format flags exist only on the command line.
func applySearchFlags(cmd *cobra.Command, cfg *config.Config) error {
	var err error

	if cmd.Flags().Changed("limit") {
		cfg.Limit, err = cmd.Flags().GetInt("limit")
		if err != nil {
			return err
		}
	}

	cfg.JSONOutput, err = cmd.Flags().GetBool("json")
	if err != nil {
		return err
	}

	cfg.MarkdownOutput, err = cmd.Flags().GetBool("markdown")
	if err != nil {
		return err
	}

	cfg.OutputFile, err = cmd.Flags().GetString("output")
	if err != nil {
		return err
	}

	return nil
}

// writeResults renders the result set in the configured format.
// When an output file is configured the formatted results go to the file
// and an aligned table is echoed to stdout, so the command still shows
// what it found. An empty result set produces no output in any format
// except JSON, which renders an empty array.
func writeResults(cfg *config.Config, stdout io.Writer, results model.ResultSet) error {
	output := stdout
	if cfg.OutputFile != "" {
		// Create directories if they don't exist
		dir := filepath.Dir(cfg.OutputFile)
		if dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0750); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
		}

		// Create/overwrite the output file with owner-only permissions
		f, err := os.OpenFile(cfg.OutputFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		output = f
	}

	var writer report.Writer
	switch {
	case cfg.JSONOutput:
		writer = report.NewJSONWriter(output, report.WithPrettyPrint())
	case cfg.MarkdownOutput:
		writer = report.NewMarkdownWriter(output)
	default:
		writer = report.NewTableWriter(output)
	}

	if cfg.OutputFile != "" {
		writer = report.NewMultiWriter(writer, report.NewTableWriter(stdout))
	}

	_, err := writer.Write(results)
	return err
}
