package cli

import (
	"fmt"

	"github.com/leapstack-labs/lsa/internal/cli/config"
	"github.com/leapstack-labs/lsa/internal/cli/output"
	"github.com/leapstack-labs/lsa/internal/report"
	"github.com/leapstack-labs/lsa/internal/source"
	"github.com/leapstack-labs/lsa/pkg/listing"
	"github.com/spf13/cobra"
)

// newSource picks where listing lines come from.
func newSource(cmd *cobra.Command, cfg *config.Config, dir string) source.Source {
	if cfg.Input != "" {
		return &source.File{Path: cfg.Input, Stdin: cmd.InOrStdin()}
	}
	return &source.Command{
		Name:   cfg.LSCommand,
		Args:   cfg.LSArgs,
		Dir:    dir,
		Logger: config.GetLogger(cmd.Context()),
	}
}

func runList(cmd *cobra.Command, dir string) error {
	ctx := cmd.Context()
	cfg := GetConfig(ctx)
	logger := config.GetLogger(ctx)

	mode, err := cfg.SortMode()
	if err != nil {
		return err
	}
	colorMode, err := cfg.ColorMode()
	if err != nil {
		return err
	}

	lines, err := newSource(cmd, cfg, dir).Lines(ctx)
	if err != nil {
		return err
	}

	entries := listing.NewParser(logger).Parse(lines)
	listing.Sort(entries, mode)
	logger.Debug("sorted entries", "count", len(entries), "mode", mode)

	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), colorMode)
	if err := report.New(r).Render(entries, displayRoot(dir)); err != nil {
		return fmt.Errorf("failed to render listing: %w", err)
	}
	return nil
}
