package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/nao1215/ollamascan/internal/catalog"
	"github.com/nao1215/ollamascan/internal/manager"
	"github.com/nao1215/ollamascan/internal/message"
	"github.com/nao1215/ollamascan/internal/model"
	"github.com/spf13/cobra"
)

// NewPullCmd creates the pull command.
func NewPullCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pull [model[:tag]]",
		Short: "Pull a catalog model via the local model manager",
		Long: `Pull confirms the model exists in the catalog, checks whether the
requested variant is already installed locally, and otherwise delegates
the download to the local model manager.

A bare model name pulls the latest tag. Models absent from the catalog
are rejected before the manager is contacted.

Examples:
  # Pull the latest tag
  ollamascan pull tinyllama

  # Pull a specific tag
  ollamascan pull llama3.1:8b`,
		Args: cobra.ArbitraryArgs,
		RunE: runPullCmd,
	}
}

// runPullCmd executes the pull command.
func runPullCmd(cmd *cobra.Command, args []string) error {
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

	return runPull(ctx, newCatalogClient(cfg, logger), newManager(cfg), msgs, cmd.OutOrStdout(), args[0])
}

// runPull checks the catalog and the local manager before delegating.
// The flow: confirm the base model exists remotely, skip the download
// when the exact variant is already installed, otherwise hand off to the
// manager and block until it settles.
func runPull(ctx context.Context, client *catalog.Client, mgr manager.Manager, msgs *message.Messages, out io.Writer, rawRef string) error {
	ref, err := model.NewModelRef(rawRef)
	if err != nil {
		return err
	}

	// Existence is checked against the base name; tags are not probed
	// separately because the catalog serves one page per model.
	exists, err := client.Exists(ctx, ref.Name())
	if err != nil || !exists {
		return &notFoundError{msg: msgs.ModelNotFound(ref.Name(), client.LibraryURL())}
	}

	installed, err := mgr.ListInstalled(ctx)
	if err != nil {
		return err
	}
	for _, name := range installed {
		have, err := model.NewModelRef(name)
		if err != nil {
			// The manager may list refs with digests or registry prefixes
			// this parser does not accept; they cannot match anyway.
			continue
		}
		if have.Equals(ref) {
			fmt.Fprintln(out, msgs.AlreadyInstalled(ref.Normalized()))
			return nil
		}
	}

	fmt.Fprintln(out, msgs.Pulling(ref.Normalized()))
	if err := mgr.Pull(ctx, ref.Normalized()); err != nil {
		return err
	}
	fmt.Fprintln(out, msgs.PullComplete(ref.Normalized()))
	return nil
}
