package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/nao1215/ollamascan/internal/manager"
	"github.com/spf13/cobra"
)

// NewInstalledCmd creates the installed command.
func NewInstalledCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "installed",
		Short: "List models installed in the local model manager",
		Long: `Installed asks the local model manager for its installed models and
prints one reference per line, in the order the manager reports them.
The catalog is never contacted.

Examples:
  # List locally installed models
  ollamascan installed`,
		RunE: runInstalledCmd,
	}
}

// runInstalledCmd executes the installed command.
func runInstalledCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(cfg.Verbose)
	slog.SetDefault(logger)

	ctx, cancel := commandContext(logger)
	defer cancel()

	return runInstalled(ctx, newManager(cfg), cmd.OutOrStdout())
}

// runInstalled prints the manager's installed models, one per line.
func runInstalled(ctx context.Context, mgr manager.Manager, out io.Writer) error {
	installed, err := mgr.ListInstalled(ctx)
	if err != nil {
		return err
	}
	for _, name := range installed {
		fmt.Fprintln(out, name)
	}
	return nil
}
