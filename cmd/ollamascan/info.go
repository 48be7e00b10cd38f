package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/nao1215/ollamascan/internal/catalog"
	"github.com/nao1215/ollamascan/internal/model"
	"github.com/nao1215/ollamascan/internal/report"
	"github.com/spf13/cobra"
)

// NewInfoCmd creates the info command.
func NewInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info [model]",
		Short: "Show a model's page metadata and tag details",
		Long: `Info fetches the model's detail page and prints its title and
description followed by an aligned table of its tags.

Examples:
  # Show details for llama3.1
  ollamascan info llama3.1`,
		Args: cobra.ArbitraryArgs,
		RunE: runInfoCmd,
	}
}

// runInfoCmd executes the info command.
func runInfoCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
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
		return errors.New(msgs.MissingModel())
	}

	ctx, cancel := commandContext(logger)
	defer cancel()

	client := newCatalogClient(cfg, logger)
	info, err := client.Info(ctx, args[0])
	if err != nil {
		if errors.Is(err, catalog.ErrModelNotFound) {
			return &notFoundError{msg: msgs.ModelNotFound(args[0], client.LibraryURL())}
		}
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Model: %s\n", info.Name)
	if info.Meta.Title != "" {
		fmt.Fprintf(out, "Title: %s\n", info.Meta.Title)
	}
	if info.Meta.Description != "" {
		fmt.Fprintf(out, "Description: %s\n", info.Meta.Description)
	}
	fmt.Fprintln(out)

	_, err = report.NewTableWriter(out).Write(model.ResultSet(info.Tags))
	return err
}
