package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
)

// NewExistsCmd creates the exists command.
func NewExistsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "exists [model]",
		Short: "Check whether a model is published in the catalog",
		Long: `Exists probes the model's detail page and prints "yes" or "no".

The answer is the printed word, not the exit code: the command exits 0
either way so shell pipelines can capture the output without guarding
against failures. A catalog that cannot be reached prints "no", because
an unreachable catalog cannot prove a model exists.

Examples:
  # Check whether llama3.1 is published
  ollamascan exists llama3.1`,
		Args: cobra.ArbitraryArgs,
		RunE: runExistsCmd,
	}
}

// runExistsCmd executes the exists command.
func runExistsCmd(cmd *cobra.Command, args []string) error {
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
	exists, err := client.Exists(ctx, args[0])
	if err != nil {
		logger.Debug("existence probe failed, reporting no",
			"model", args[0],
			"error", err)
		exists = false
	}

	if exists {
		fmt.Fprintln(cmd.OutOrStdout(), "yes")
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), "no")
	}
	return nil
}
