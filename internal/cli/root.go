// Package cli provides the command-line interface for lsa.
package cli

import (
	"context"
	"errors"
	"os"
	"strings"

	"github.com/leapstack-labs/lsa/internal/cli/config"
	"github.com/leapstack-labs/lsa/internal/cli/output"
	"github.com/leapstack-labs/lsa/internal/source"
	"github.com/leapstack-labs/lsa/pkg/listing"
	"github.com/spf13/cobra"
)

var cfgFile string

// Version is set at build time.
var Version = "1.0.0"

// configKey is used to store config in context.
type configKey struct{}

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "lsa [flags] [DIRECTORY]",
		Short: "lsa - Enhanced Directory Listing Tool",
		Long: `lsa runs "ls -alsh" and prints the result as an aligned, colorized table.

Entries are grouped as ".", "..", directories, hidden files and other files.
Within each group they are ordered by the selected sort mode. Each row shows
the name, its age relative to now, the size, owner and permissions, and the
footer totals the size of every non-directory entry.

If no directory is specified, the current directory is used.`,
		Example: `  # List the current directory
  lsa

  # Largest files last
  lsa -s ~/Downloads

  # Format a listing captured earlier
  ls -alsh /var/log > listing.txt
  lsa --input listing.txt /var/log`,
		Version: Version,
		Args:    cobra.MaximumNArgs(1),
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadConfig(cfgFile, cmd.Flags())
			if err != nil {
				return err
			}

			logger := config.NewLogger(cmd.ErrOrStderr(), cfg.Verbose)
			ctx := context.WithValue(cmd.Context(), configKey{}, cfg)
			ctx = config.WithLogger(ctx, logger)
			cmd.SetContext(ctx)

			if configFile := config.GetConfigFileUsed(); configFile != "" {
				logger.Debug("using config file", "path", configFile)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			var dir string
			if len(args) > 0 {
				dir = args[0]
			}
			return runList(cmd, dir)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(`{{.Name}} version {{.Version}}
Enhanced Directory Listing Tool
`)

	flags := rootCmd.Flags()
	flags.StringVar(&cfgFile, "config", "", "config file (default: ./lsa.yaml)")
	addSortFlags(flags)
	flags.String("color", config.DefaultColor, "Color output (auto|always|never)")
	flags.String("input", "", `Read a captured "ls -alsh" listing from a file ("-" for stdin) instead of running ls`)
	flags.BoolP("verbose", "v", false, "Verbose output")

	_ = rootCmd.RegisterFlagCompletionFunc("sort", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return listing.SortModeNames(), cobra.ShellCompDirectiveNoFileComp
	})
	_ = rootCmd.RegisterFlagCompletionFunc("color", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		modes := make([]string, len(output.Modes))
		for i, m := range output.Modes {
			modes[i] = string(m)
		}
		return modes, cobra.ShellCompDirectiveNoFileComp
	})
	rootCmd.ValidArgsFunction = func(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		return nil, cobra.ShellCompDirectiveFilterDirs
	}

	return rootCmd
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	rootCmd := NewRootCmd()
	err := rootCmd.Execute()
	if err != nil {
		r := output.NewRenderer(rootCmd.OutOrStdout(), rootCmd.ErrOrStderr(), output.ModeNever)
		r.Errorf("Error: %v\n", err)
	}
	return ExitCode(err)
}

// ExitCode maps an error from the root command to a process exit status.
// A failed ls keeps its own status.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *source.ExitError
	if errors.As(err, &exitErr) && exitErr.Code > 0 {
		return exitErr.Code
	}
	return 1
}

// GetConfig retrieves the config from the command context.
func GetConfig(ctx context.Context) *config.Config {
	if c, ok := ctx.Value(configKey{}).(*config.Config); ok {
		return c
	}
	// Return default config if none in context
	return config.Default()
}

// displayRoot is the label shown in the table header.
func displayRoot(dir string) string {
	if strings.TrimSpace(dir) != "" {
		return dir
	}
	if cwd, err := os.Getwd(); err == nil {
		return cwd
	}
	return "."
}
