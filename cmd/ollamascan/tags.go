package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/nao1215/ollamascan/internal/catalog"
	"github.com/spf13/cobra"
)

// NewTagsCmd creates the tags command.
func NewTagsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tags [model]",
		Short: "List the tags of a catalog model",
		Long: `Tags fetches the model's detail page and prints one tag per line,
sorted ascending. A model published without explicit tags prints the
implicit latest tag.

Examples:
  # List tags for llama3.1
  ollamascan tags llama3.1`,
		Args: cobra.ArbitraryArgs,
		RunE: runTagsCmd,
	}
}

// runTagsCmd executes the tags command.
func runTagsCmd(cmd *cobra.Command, args []string) error {
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
	tags, err := client.Tags(ctx, args[0])
	if err != nil {
		if errors.Is(err, catalog.ErrModelNotFound) {
			return &notFoundError{msg: msgs.ModelNotFound(args[0], client.LibraryURL())}
		}
		return err
	}

	for _, tag := range tags {
		fmt.Fprintln(cmd.OutOrStdout(), tag)
	}
	return nil
}
